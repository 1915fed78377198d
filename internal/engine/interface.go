// Package engine computes derived stats for game entities.
//
// A Stat scales its base value by the level of the Owner that claimed it, or
// by the current value of another stat of the same Owner. Owners bind parsed
// rules (see package rules) to stats as they are added, supply flat and
// scalar modifiers through a ModifierSource, and track experience and level.
//
// Owners and their stats hold no locks. Callers sharing an Owner between
// goroutines must serialize access to it.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-stats/internal/engine ModifierSource,EventPublisher

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// ModifierSource supplies the active modifiers for a stat.
//
// Flat modifiers are summed and added to the scaled value. Scalar modifiers
// are fractions (0.1 is +10%) summed and applied once to the post-flat value.
type ModifierSource interface {
	FlatModifiers(stat string) []float64
	ScalarModifiers(stat string) []float64
}

// EventPublisher is the part of events.EventBus an Owner needs
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
