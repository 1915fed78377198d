package engine

import (
	"context"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Level returns the current level
func (o *Owner) Level() int {
	return o.level
}

// XP returns the accumulated experience
func (o *Owner) XP() int {
	return o.xp
}

// XPScale returns the leveling rate taken from the "lvl" rule
func (o *Owner) XPScale() float64 {
	return o.xpScale
}

// SetLevel sets the level
func (o *Owner) SetLevel(level int) error {
	if level < 1 {
		return errors.InvalidArgumentf("level must be at least 1, got %d", level)
	}
	o.level = level
	return nil
}

// SetLevelFloat sets the level from a float, truncating toward zero
func (o *Owner) SetLevelFloat(level float64) error {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return errors.InvalidTypef("level must be a finite number, got %v", level)
	}
	return o.SetLevel(int(math.Trunc(level)))
}

// NextLevelTarget returns the experience total that raises the current level:
// trunc(level * 100 * (100*xpScale)^(level/MaxLevel)).
func (o *Owner) NextLevelTarget() int {
	l := float64(o.level)
	return int(math.Trunc(l * 100 * math.Pow(100*o.xpScale, l/MaxLevel)))
}

// XPToNextLevel returns how much experience is missing to the next level
func (o *Owner) XPToNextLevel() int {
	return o.NextLevelTarget() - o.xp
}

// AwardXP adds experience and raises the level by one when the total reaches
// the next level target. A single award never raises more than one level,
// however large. An EventLevelUp event is published when the level rises and
// an event bus is configured.
func (o *Owner) AwardXP(ctx context.Context, amount int) (bool, error) {
	if amount < 0 {
		return false, errors.InvalidArgumentf("xp amount must not be negative, got %d", amount)
	}

	o.xp += amount
	if o.xp < o.NextLevelTarget() {
		return false, nil
	}

	o.level++
	o.logger.Info("stats owner leveled up",
		"owner_id", o.id,
		"level", o.level,
		"xp", o.xp)

	if o.bus == nil {
		return true, nil
	}
	if err := o.bus.Publish(ctx, events.NewGameEvent(EventLevelUp, o, nil)); err != nil {
		return true, errors.Wrapf(err, "failed to publish %s for owner %s", EventLevelUp, o.id)
	}

	return true, nil
}
