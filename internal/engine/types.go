package engine

import "fmt"

const (
	// MaxLevel is the level at which level based curves reach their full scale
	MaxLevel = 80

	// DefaultScaleAmount is the scale amount of a stat no rule has configured
	DefaultScaleAmount = 1.0

	// DefaultCap is the cap of a stat no rule has configured
	DefaultCap = 10000

	// EntityType is what an Owner reports as its core.Entity type
	EntityType = "stats_owner"

	// EventLevelUp is published with the Owner as source whenever it gains a level
	EventLevelUp = "stats.level_up"
)

// ScaleMethod selects the formula a Stat uses to scale its base value
type ScaleMethod int

const (
	// ScaleExponentialByLevel is base * (10*amount)^(level/MaxLevel)
	ScaleExponentialByLevel ScaleMethod = iota
	// ScaleFlatByLevelOrStat is base + (level-1)*amount when the reference is
	// the level, otherwise base + reference.Value*amount
	ScaleFlatByLevelOrStat
	// ScaleStatRelativeExponential is
	// max(base * (10*amount)^(reference.Value/reference.Cap), cap)
	ScaleStatRelativeExponential
)

func (m ScaleMethod) String() string {
	switch m {
	case ScaleExponentialByLevel:
		return "exponential_by_level"
	case ScaleFlatByLevelOrStat:
		return "flat_by_level_or_stat"
	case ScaleStatRelativeExponential:
		return "stat_relative_exponential"
	default:
		return fmt.Sprintf("ScaleMethod(%d)", int(m))
	}
}
