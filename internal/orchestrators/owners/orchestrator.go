// Package owners keeps the stat owners served over gRPC. The engine does no
// locking of its own, so every owner is guarded by its own mutex here.
package owners

//go:generate mockgen -destination=mock/mock_service.go -package=ownersmock github.com/KirkDiggler/rpg-stats/internal/orchestrators/owners Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-stats/internal/engine"
	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-stats/internal/repositories/rulesets"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

const errOwnerIDEmpty = "owner ID cannot be empty"

// Service defines the owner operations exposed by the stats API
type Service interface {
	CreateOwner(ctx context.Context, input *CreateOwnerInput) (*CreateOwnerOutput, error)
	AddStats(ctx context.Context, input *AddStatsInput) (*AddStatsOutput, error)
	UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error)
	GetStat(ctx context.Context, input *GetStatInput) (*GetStatOutput, error)
	SetLevel(ctx context.Context, input *SetLevelInput) (*SetLevelOutput, error)
	AwardXP(ctx context.Context, input *AwardXPInput) (*AwardXPOutput, error)
	DeleteOwner(ctx context.Context, input *DeleteOwnerInput) (*DeleteOwnerOutput, error)
}

// Config holds the dependencies for the owners orchestrator
type Config struct {
	RuleSetRepo rulesets.Repository
	IDGenerator idgen.Generator
	// EventBus carries level up events; a private bus is created when nil
	EventBus events.EventBus
	// DefaultRuleset is bound when CreateOwner names none. Empty means
	// such owners have no rules.
	DefaultRuleset string
	Logger         *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RuleSetRepo == nil {
		vb.RequiredField("RuleSetRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type session struct {
	mu      sync.Mutex
	owner   *engine.Owner
	ruleset string
}

type orchestrator struct {
	ruleSetRepo    rulesets.Repository
	idGen          idgen.Generator
	bus            events.EventBus
	defaultRuleset string
	logger         *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewOrchestrator creates a new owners orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		ruleSetRepo:    cfg.RuleSetRepo,
		idGen:          cfg.IDGenerator,
		bus:            cfg.EventBus,
		defaultRuleset: cfg.DefaultRuleset,
		logger:         cfg.Logger,
		sessions:       make(map[string]*session),
	}
	if o.bus == nil {
		o.bus = events.NewBus()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	o.bus.SubscribeFunc(engine.EventLevelUp, 0, o.onLevelUp)

	return o, nil
}

func (o *orchestrator) onLevelUp(_ context.Context, event events.Event) error {
	owner, ok := event.Source().(*engine.Owner)
	if !ok {
		return nil
	}

	o.logger.Info("owner reached new level",
		"owner_id", owner.ID(),
		"level", owner.Level(),
		"xp_to_next_level", owner.XPToNextLevel())

	return nil
}

func (o *orchestrator) CreateOwner(ctx context.Context, input *CreateOwnerInput) (*CreateOwnerOutput, error) {
	if input == nil {
		input = &CreateOwnerInput{}
	}

	vb := errors.NewValidationBuilder()
	if input.Level < 0 {
		vb.InvalidField("level", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	name := input.Ruleset
	if name == "" {
		name = o.defaultRuleset
	}

	var table rules.Table
	if name != "" {
		var err error
		table, err = o.loadRuleset(ctx, name)
		switch {
		case err == nil:
		case input.Ruleset == "" && errors.IsRuleNotFound(err):
			// an unseeded default leaves the owner without rules
			o.logger.Warn("default rule set not stored, creating owner without rules",
				"ruleset", name)
			name = ""
		default:
			return nil, err
		}
	}

	owner, err := engine.NewOwner(&engine.OwnerConfig{
		ID:       o.idGen.Generate(),
		Level:    input.Level,
		Rules:    table,
		EventBus: o.bus,
		Logger:   o.logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create owner")
	}

	s := &session{owner: owner, ruleset: name}

	o.mu.Lock()
	o.sessions[owner.ID()] = s
	o.mu.Unlock()

	o.logger.Info("created stats owner",
		"owner_id", owner.ID(),
		"ruleset", name,
		"level", owner.Level())

	return &CreateOwnerOutput{Owner: snapshot(s)}, nil
}

func (o *orchestrator) loadRuleset(ctx context.Context, name string) (rules.Table, error) {
	out, err := o.ruleSetRepo.Get(ctx, &rulesets.GetInput{Name: name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rule set %s", name)
	}

	table, diags, err := rules.Parse(out.RuleSet.Rules)
	if err != nil {
		return nil, errors.Wrapf(err, "stored rule set %s is invalid", name)
	}
	for _, d := range diags {
		o.logger.Warn("rule set diagnostic", "ruleset", name, "diagnostic", d.String())
	}

	return table, nil
}

func (o *orchestrator) AddStats(_ context.Context, input *AddStatsInput) (*AddStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if len(input.Stats) == 0 {
		vb.RequiredField("stats")
	}
	for i, st := range input.Stats {
		if st.Name == "" {
			vb.Fieldf("stats", "stat %d has no name", i+1)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var out *AddStatsOutput
	err := o.withOwner(input.OwnerID, func(s *session) error {
		stats := make([]*engine.Stat, len(input.Stats))
		for i, st := range input.Stats {
			stats[i] = engine.NewStat(st.Name, st.Base)
		}
		if err := s.owner.Add(stats...); err != nil {
			return err
		}
		out = &AddStatsOutput{Owner: snapshot(s)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (o *orchestrator) UpdateStats(_ context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	var out *UpdateStatsOutput
	err := o.withOwner(input.OwnerID, func(s *session) error {
		if err := s.owner.UpdateAll(); err != nil {
			return err
		}
		out = &UpdateStatsOutput{Owner: snapshot(s)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (o *orchestrator) GetStat(_ context.Context, input *GetStatInput) (*GetStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("stat name cannot be empty")
	}

	var out *GetStatOutput
	err := o.withOwner(input.OwnerID, func(s *session) error {
		stat, err := s.owner.Get(input.Name)
		if err != nil {
			return err
		}
		out = &GetStatOutput{Name: stat.Name(), Value: stat.Value(input.Raw)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (o *orchestrator) SetLevel(_ context.Context, input *SetLevelInput) (*SetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	var out *SetLevelOutput
	err := o.withOwner(input.OwnerID, func(s *session) error {
		if err := s.owner.SetLevel(input.Level); err != nil {
			return err
		}
		out = &SetLevelOutput{Owner: snapshot(s)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (o *orchestrator) AwardXP(ctx context.Context, input *AwardXPInput) (*AwardXPOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	var out *AwardXPOutput
	err := o.withOwner(input.OwnerID, func(s *session) error {
		leveled, err := s.owner.AwardXP(ctx, input.Amount)
		if err != nil {
			return err
		}
		out = &AwardXPOutput{Owner: snapshot(s), LeveledUp: leveled}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (o *orchestrator) DeleteOwner(_ context.Context, input *DeleteOwnerInput) (*DeleteOwnerOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.sessions[input.OwnerID]; !ok {
		return nil, errors.NotFoundf("owner %s not found", input.OwnerID)
	}
	delete(o.sessions, input.OwnerID)

	return &DeleteOwnerOutput{}, nil
}

// withOwner runs fn while holding the owner's lock
func (o *orchestrator) withOwner(ownerID string, fn func(*session) error) error {
	if ownerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}

	o.mu.RLock()
	s, ok := o.sessions[ownerID]
	o.mu.RUnlock()
	if !ok {
		return errors.NotFoundf("owner %s not found", ownerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s)
}

func snapshot(s *session) *OwnerSnapshot {
	owner := s.owner

	stats := owner.Stats()
	out := &OwnerSnapshot{
		OwnerID:       owner.ID(),
		Ruleset:       s.ruleset,
		Level:         owner.Level(),
		XP:            owner.XP(),
		XPToNextLevel: owner.XPToNextLevel(),
		Stats:         make([]StatSnapshot, 0, len(stats)),
		Diagnostics:   owner.Diagnostics().Strings(),
	}
	for _, st := range stats {
		out.Stats = append(out.Stats, StatSnapshot{
			Name:   st.Name(),
			Base:   st.Value(true),
			Value:  st.Value(false),
			Method: st.ScaleMethod().String(),
		})
	}

	return out
}
