// Package rulesets stores named stat rule sets so every server instance
// binds owners to the same rules.
package rulesets

//go:generate mockgen -destination=mock/mock_repository.go -package=rulesetsmock github.com/KirkDiggler/rpg-stats/internal/repositories/rulesets Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

// Repository defines rule set persistence. Rule sets are stored raw, as
// loaded from a rule file, and are parsed by whoever reads them.
type Repository interface {
	// Get retrieves a rule set by name
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound with reason RULE_NOT_FOUND if no rule set has that name
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put creates or replaces a rule set. The rules must parse.
	// Returns errors.InvalidArgument for an empty name or missing rules
	// Returns errors.InvalidArgument with reason RULE_VALIDATION for rules that do not parse
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)

	// Delete removes a rule set
	// Returns errors.NotFound with reason RULE_NOT_FOUND if no rule set has that name
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns the names of every stored rule set, sorted
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// RuleSet is a stored rule set
type RuleSet struct {
	Name      string
	Rules     rules.Raw
	UpdatedAt time.Time
}

// GetInput defines the input for getting a rule set
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a rule set
type GetOutput struct {
	RuleSet *RuleSet
}

// PutInput defines the input for storing a rule set
type PutInput struct {
	Name  string
	Rules rules.Raw
}

// PutOutput defines the output for storing a rule set
type PutOutput struct {
	RuleSet *RuleSet
	// Diagnostics raised while checking the rules
	Diagnostics rules.Diagnostics
}

// DeleteInput defines the input for deleting a rule set
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a rule set
type DeleteOutput struct{}

// ListInput defines the input for listing rule sets
type ListInput struct{}

// ListOutput defines the output for listing rule sets
type ListOutput struct {
	Names []string
}
