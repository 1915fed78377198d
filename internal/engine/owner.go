package engine

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

// OwnerConfig configures a new Owner. Every field is optional.
type OwnerConfig struct {
	// ID defaults to a generated "owner_<uuid>"
	ID string
	// Level defaults to 1
	Level int
	// Rules are loaded with LoadRules when set
	Rules rules.Table
	// Modifiers defaults to a source with no modifiers
	Modifiers ModifierSource
	// EventBus receives EventLevelUp events; nil disables publishing
	EventBus EventPublisher
	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Validate validates the config
func (cfg *OwnerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Level < 0 {
		vb.InvalidField("Level", "must not be negative")
	}

	return vb.Build()
}

// Owner holds a set of uniquely named stats along with the level, experience
// and rules they scale by.
type Owner struct {
	id string

	stats map[string]*Stat
	order []string

	level   int
	xp      int
	xpScale float64

	rules rules.Table
	diags rules.Diagnostics

	modifiers ModifierSource
	bus       EventPublisher
	logger    *slog.Logger
}

// NewOwner creates an owner at level 1 (or cfg.Level) with no experience
func NewOwner(cfg *OwnerConfig) (*Owner, error) {
	if cfg == nil {
		cfg = &OwnerConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid owner config")
	}

	o := &Owner{
		id:        cfg.ID,
		stats:     make(map[string]*Stat),
		level:     1,
		xpScale:   DefaultScaleAmount,
		modifiers: cfg.Modifiers,
		bus:       cfg.EventBus,
		logger:    cfg.Logger,
	}
	if o.id == "" {
		o.id = idgen.NewUUID("owner").Generate()
	}
	if cfg.Level > 0 {
		o.level = cfg.Level
	}
	if o.modifiers == nil {
		o.modifiers = noModifiers{}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	if cfg.Rules != nil {
		if err := o.LoadRules(cfg.Rules); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// ID returns the owner ID
func (o *Owner) ID() string {
	return o.id
}

// GetID implements core.Entity
func (o *Owner) GetID() string {
	return o.id
}

// GetType implements core.Entity
func (o *Owner) GetType() string {
	return EntityType
}

// LoadRules stores table and derives the experience scale from the
// scale_amount of its "lvl" section. Stats added earlier keep the
// configuration they were bound with.
func (o *Owner) LoadRules(table rules.Table) error {
	if table == nil {
		return errors.InvalidTypef("rules must be a section mapping, got nil")
	}

	lvl, ok := table.Section(rules.LevelSection)
	if !ok || lvl == nil {
		return errors.RuleNotFoundf("rules have no %q section", rules.LevelSection)
	}
	if lvl.ScaleAmount == nil {
		return errors.RuleValidationf("rule section %q must set %s", rules.LevelSection, rules.KeyScaleAmount).
			WithMeta("field", rules.LevelSection+"."+rules.KeyScaleAmount)
	}

	o.rules = table
	o.xpScale = lvl.ScaleAmount.Float64()

	o.logger.Debug("loaded stat rules",
		"owner_id", o.id,
		"sections", len(table),
		"xp_scale", o.xpScale)

	return nil
}

// Rules returns the loaded rule table, nil until LoadRules
func (o *Owner) Rules() rules.Table {
	return o.rules
}

// Diagnostics returns every notice raised while binding rules to added stats
func (o *Owner) Diagnostics() rules.Diagnostics {
	return append(rules.Diagnostics(nil), o.diags...)
}

// Get returns the named stat
func (o *Owner) Get(name string) (*Stat, error) {
	s, ok := o.stats[name]
	if !ok {
		return nil, errors.StatNotFoundf("no such stat: %q", name).WithMeta("stat", name)
	}
	return s, nil
}

// Claim makes o the owner of each stat without registering it. Nothing is
// claimed when any argument is nil.
func (o *Owner) Claim(stats ...*Stat) error {
	if err := checkStats(stats); err != nil {
		return err
	}
	for _, s := range stats {
		s.owner = o
	}
	return nil
}

// Add claims the stats, binds the loaded rules to each of them and registers
// them by name. A stat replaces any registered stat of the same name.
//
// When a stat has no rule section, Add fails and registers none of the
// stats, though they remain claimed.
func (o *Owner) Add(stats ...*Stat) error {
	if err := o.Claim(stats...); err != nil {
		return err
	}

	if o.rules != nil {
		var diags rules.Diagnostics
		for _, s := range stats {
			d, err := s.ApplyRules(o.rules)
			if err != nil {
				return err
			}
			diags = append(diags, d...)
		}

		for _, d := range diags {
			o.logger.Warn("stat rule diagnostic",
				"owner_id", o.id,
				"section", d.Section,
				"key", d.Key,
				"message", d.Message)
		}
		o.diags = append(o.diags, diags...)
	}

	for _, s := range stats {
		if _, exists := o.stats[s.name]; !exists {
			o.order = append(o.order, s.name)
		}
		o.stats[s.name] = s
	}

	return nil
}

// Stats returns the registered stats in the order their names were first added
func (o *Owner) Stats() []*Stat {
	out := make([]*Stat, 0, len(o.order))
	for _, name := range o.order {
		out = append(out, o.stats[name])
	}
	return out
}

// UpdateAll updates every registered stat in order. A stat scaling off
// another stat sees the value that stat had when its own turn came.
func (o *Owner) UpdateAll() error {
	for _, s := range o.Stats() {
		if err := s.Update(); err != nil {
			return errors.Wrapf(err, "failed to update stat %q", s.name)
		}
	}
	return nil
}

// FlatModifiers returns the flat modifiers currently active on the named stat
func (o *Owner) FlatModifiers(name string) []float64 {
	return o.modifiers.FlatModifiers(name)
}

// ScalarModifiers returns the scalar modifiers currently active on the named stat
func (o *Owner) ScalarModifiers(name string) []float64 {
	return o.modifiers.ScalarModifiers(name)
}

func checkStats(stats []*Stat) error {
	for i, s := range stats {
		if s == nil {
			return errors.InvalidTypef("stat %d of %d is nil", i+1, len(stats))
		}
	}
	return nil
}

var _ core.Entity = (*Owner)(nil)
