package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

// Stat is a named attribute whose value is derived from a base value, the
// level of its owner and optionally another stat of that owner.
type Stat struct {
	name  string
	owner *Owner

	base  int
	value int

	method      ScaleMethod
	scaleAmount float64
	scaleStat   []string
	cap         int
}

// NewStat creates an unowned stat. Its value equals base until the first Update.
func NewStat(name string, base int) *Stat {
	return &Stat{
		name:        name,
		base:        base,
		value:       base,
		method:      ScaleExponentialByLevel,
		scaleAmount: DefaultScaleAmount,
		cap:         DefaultCap,
	}
}

// Name returns the stat name
func (s *Stat) Name() string {
	return s.name
}

// Owner returns the owner that claimed s, or nil
func (s *Stat) Owner() *Owner {
	return s.owner
}

// Value returns the base value when raw is set, otherwise the value computed
// by the last Update.
func (s *Stat) Value(raw bool) int {
	if raw {
		return s.base
	}
	return s.value
}

// SetValue overwrites the computed value until the next Update
func (s *Stat) SetValue(v int) {
	s.value = v
}

// ScaleMethod returns the bound scale method
func (s *Stat) ScaleMethod() ScaleMethod {
	return s.method
}

// SetScaleMethod binds a scale method directly. This is the only way to
// select ScaleStatRelativeExponential.
func (s *Stat) SetScaleMethod(m ScaleMethod) {
	s.method = m
}

// ScaleAmount returns the scale amount
func (s *Stat) ScaleAmount() float64 {
	return s.scaleAmount
}

// SetScaleAmount sets the scale amount
func (s *Stat) SetScaleAmount(amount float64) {
	s.scaleAmount = amount
}

// ScaleStat returns a copy of the configured reference stat names
func (s *Stat) ScaleStat() []string {
	return append([]string(nil), s.scaleStat...)
}

// SetScaleStat sets the reference stat names. The first one is the
// reference; rules.LevelSection refers to the owner level.
func (s *Stat) SetScaleStat(names ...string) {
	s.scaleStat = append([]string(nil), names...)
}

// ReferenceStat returns the first scale stat name, or "" when none is set
func (s *Stat) ReferenceStat() string {
	if len(s.scaleStat) == 0 {
		return ""
	}
	return s.scaleStat[0]
}

// Cap returns the cap
func (s *Stat) Cap() int {
	return s.cap
}

// SetCap sets the cap
func (s *Stat) SetCap(c int) {
	s.cap = c
}

// ApplyRules binds the scaling configuration of the rule section named after s.
//
// A flat rule binds ScaleFlatByLevelOrStat and exp binds
// ScaleExponentialByLevel. log and custom_dps have no behavior of their own
// and fall back to exponential-by-level with a diagnostic. Options the
// section leaves unset keep their current values.
func (s *Stat) ApplyRules(table rules.Table) (rules.Diagnostics, error) {
	if table == nil {
		return nil, errors.InvalidTypef("rules for stat %q must be a section mapping, got nil", s.name)
	}

	section, ok := table.Section(s.name)
	if !ok || section == nil {
		return nil, errors.RuleNotFoundf("no rule section for stat %q", s.name).
			WithMeta("stat", s.name)
	}

	var diags rules.Diagnostics

	method, implemented := methodFor(section.ScaleMethod)
	if !implemented {
		diags = append(diags, rules.Diagnostic{
			Section: s.name,
			Key:     rules.KeyScaleMethod,
			Message: "scale method " + section.ScaleMethod.String() +
				" is not implemented, using exponential by level",
		})
	}
	s.method = method

	if section.ScaleAmount != nil {
		s.scaleAmount = section.ScaleAmount.Float64()
	}
	if len(section.ScaleStat) > 0 {
		s.SetScaleStat(section.ScaleStat...)
	}
	if section.Cap != nil {
		s.cap = *section.Cap
	}

	return diags, nil
}

// Update recomputes the value: the scaled value, plus the sum of the flat
// modifiers, plus that result times the sum of the scalar modifiers, rounded
// half to even. The base value is never changed.
func (s *Stat) Update() error {
	if s.owner == nil {
		return errors.OrphanStatf("no owner for stat %q", s.name).WithMeta("stat", s.name)
	}

	v, err := s.scale()
	if err != nil {
		return err
	}

	v += sum(s.owner.FlatModifiers(s.name))
	v += v * sum(s.owner.ScalarModifiers(s.name))

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.FailedPreconditionf("stat %q scaled to a non finite value", s.name)
	}

	s.value = int(math.RoundToEven(v))
	return nil
}
