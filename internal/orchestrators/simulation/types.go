package simulation

import "github.com/KirkDiggler/rpg-stats/internal/rules"

// StatInput describes a stat to track during a run
type StatInput struct {
	Name string
	Base int
}

// RunInput defines a progression run
type RunInput struct {
	Rules rules.Table
	Stats []StatInput
	// TargetLevel is the level the run stops at
	TargetLevel int
	// XPDice is the experience rolled per encounter, as "NdM"
	XPDice string
	// MaxEncounters bounds the run; defaults to DefaultMaxEncounters
	MaxEncounters int
}

// StatValue is one stat at one level
type StatValue struct {
	Name  string
	Value int
	// Expected is the unmodified level curve for stats scaling by level,
	// nil for stats scaling off another stat
	Expected *float64
}

// LevelRow records the state on reaching a level
type LevelRow struct {
	Level int
	// Encounters it took to get here from the previous level
	Encounters      int
	XP              int
	NextLevelTarget int
	Stats           []StatValue
}

// RunOutput holds one row per level, starting at the initial level
type RunOutput struct {
	Rows            []LevelRow
	TotalEncounters int
}
