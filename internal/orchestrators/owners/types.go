package owners

// StatInput describes a stat to add to an owner
type StatInput struct {
	Name string
	Base int
}

// StatSnapshot is the state of one stat
type StatSnapshot struct {
	Name   string
	Base   int
	Value  int
	Method string
}

// OwnerSnapshot is the state of an owner and its stats, in insertion order
type OwnerSnapshot struct {
	OwnerID       string
	Ruleset       string
	Level         int
	XP            int
	XPToNextLevel int
	Stats         []StatSnapshot
	Diagnostics   []string
}

// CreateOwnerInput defines the request for creating an owner
type CreateOwnerInput struct {
	// Ruleset names the stored rule set to bind; empty uses the default rule set
	Ruleset string
	// Level defaults to 1
	Level int
}

// CreateOwnerOutput defines the response for creating an owner
type CreateOwnerOutput struct {
	Owner *OwnerSnapshot
}

// AddStatsInput defines the request for adding stats to an owner
type AddStatsInput struct {
	OwnerID string
	Stats   []StatInput
}

// AddStatsOutput defines the response for adding stats
type AddStatsOutput struct {
	Owner *OwnerSnapshot
}

// UpdateStatsInput defines the request for recomputing every stat of an owner
type UpdateStatsInput struct {
	OwnerID string
}

// UpdateStatsOutput defines the response for recomputing stats
type UpdateStatsOutput struct {
	Owner *OwnerSnapshot
}

// GetStatInput defines the request for reading a stat
type GetStatInput struct {
	OwnerID string
	Name    string
	// Raw returns the base value instead of the computed one
	Raw bool
}

// GetStatOutput defines the response for reading a stat
type GetStatOutput struct {
	Name  string
	Value int
}

// SetLevelInput defines the request for setting an owner level
type SetLevelInput struct {
	OwnerID string
	Level   int
}

// SetLevelOutput defines the response for setting an owner level
type SetLevelOutput struct {
	Owner *OwnerSnapshot
}

// AwardXPInput defines the request for awarding experience
type AwardXPInput struct {
	OwnerID string
	Amount  int
}

// AwardXPOutput defines the response for awarding experience
type AwardXPOutput struct {
	Owner     *OwnerSnapshot
	LeveledUp bool
}

// DeleteOwnerInput defines the request for discarding an owner
type DeleteOwnerInput struct {
	OwnerID string
}

// DeleteOwnerOutput defines the response for discarding an owner
type DeleteOwnerOutput struct{}
