// Package simulation runs an owner through encounters with rolled experience
// and records how its stats grow level by level.
package simulation

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

// DefaultMaxEncounters bounds a run whose input sets no limit
const DefaultMaxEncounters = 100000

var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Service runs progression simulations
type Service interface {
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the simulator
type Config struct {
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	Logger *slog.Logger
}

type simulator struct {
	roller dice.Roller
	logger *slog.Logger
}

// NewSimulator creates a simulator
func NewSimulator(cfg *Config) (Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	s := &simulator{
		roller: cfg.Roller,
		logger: cfg.Logger,
	}
	if s.roller == nil {
		s.roller = dice.DefaultRoller
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

func (s *simulator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if input.Rules == nil {
		vb.RequiredField("rules")
	}
	if input.TargetLevel < 1 {
		vb.InvalidField("target_level", "must be at least 1")
	}
	count, size, err := parseDiceNotation(input.XPDice)
	if err != nil {
		vb.InvalidField("xp_dice", err.Error())
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	maxEncounters := input.MaxEncounters
	if maxEncounters <= 0 {
		maxEncounters = DefaultMaxEncounters
	}

	owner, err := engine.NewOwner(&engine.OwnerConfig{
		ID:     "simulation",
		Rules:  input.Rules,
		Logger: s.logger,
	})
	if err != nil {
		return nil, err
	}

	stats := make([]*engine.Stat, len(input.Stats))
	for i, st := range input.Stats {
		stats[i] = engine.NewStat(st.Name, st.Base)
	}
	if err := owner.Add(stats...); err != nil {
		return nil, err
	}

	out := &RunOutput{}

	row, err := record(owner, 0)
	if err != nil {
		return nil, err
	}
	out.Rows = append(out.Rows, row)

	encounters := 0
	for owner.Level() < input.TargetLevel {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "simulation cancelled")
		}
		if out.TotalEncounters >= maxEncounters {
			return nil, errors.FailedPreconditionf(
				"level %d not reached within %d encounters", input.TargetLevel, maxEncounters)
		}

		rolls, err := s.roller.RollN(count, size)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", input.XPDice)
		}

		encounters++
		out.TotalEncounters++

		leveled, err := owner.AwardXP(ctx, sumInts(rolls))
		if err != nil {
			return nil, err
		}
		if !leveled {
			continue
		}

		row, err := record(owner, encounters)
		if err != nil {
			return nil, err
		}
		out.Rows = append(out.Rows, row)
		encounters = 0
	}

	s.logger.Debug("simulation finished",
		"target_level", input.TargetLevel,
		"encounters", out.TotalEncounters)

	return out, nil
}

func record(owner *engine.Owner, encounters int) (LevelRow, error) {
	if err := owner.UpdateAll(); err != nil {
		return LevelRow{}, err
	}

	row := LevelRow{
		Level:           owner.Level(),
		Encounters:      encounters,
		XP:              owner.XP(),
		NextLevelTarget: owner.NextLevelTarget(),
	}
	for _, st := range owner.Stats() {
		row.Stats = append(row.Stats, StatValue{
			Name:     st.Name(),
			Value:    st.Value(false),
			Expected: expected(st, owner.Level()),
		})
	}

	return row, nil
}

func expected(st *engine.Stat, level int) *float64 {
	var v float64
	switch {
	case st.ScaleMethod() == engine.ScaleExponentialByLevel:
		v = engine.ExponentialByLevel(st.Value(true), level, st.ScaleAmount())
	case st.ScaleMethod() == engine.ScaleFlatByLevelOrStat && st.ReferenceStat() == rules.LevelSection:
		v = engine.FlatByLevel(st.Value(true), level, st.ScaleAmount())
	default:
		return nil
	}
	return &v
}

// parseDiceNotation parses simple dice notation like "4d10"
func parseDiceNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %q (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}
	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, size, nil
}

func sumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
