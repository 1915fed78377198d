package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

// ExponentialByLevel is the exponential-by-level curve on its own, without an
// owner or modifiers: base * (10*amount)^(level/MaxLevel).
func ExponentialByLevel(base, level int, amount float64) float64 {
	return float64(base) * math.Pow(10*amount, float64(level)/MaxLevel)
}

// FlatByLevel is the flat-by-level curve on its own: base + (level-1)*amount
func FlatByLevel(base, level int, amount float64) float64 {
	return float64(base) + float64(level-1)*amount
}

// scale computes the unmodified value of s with its configured method.
// s must be owned.
func (s *Stat) scale() (float64, error) {
	switch s.method {
	case ScaleExponentialByLevel:
		return ExponentialByLevel(s.base, s.owner.level, s.scaleAmount), nil
	case ScaleFlatByLevelOrStat:
		return s.scaleFlat()
	case ScaleStatRelativeExponential:
		return s.scaleStatRelative()
	default:
		return 0, errors.Internalf("stat %q has unknown scale method %s", s.name, s.method)
	}
}

func (s *Stat) scaleFlat() (float64, error) {
	ref := s.ReferenceStat()
	if ref == rules.LevelSection {
		return FlatByLevel(s.base, s.owner.level, s.scaleAmount), nil
	}

	other, err := s.owner.Get(ref)
	if err != nil {
		return 0, err
	}
	return float64(s.base) + float64(other.Value(false))*s.scaleAmount, nil
}

// scaleStatRelative clamps with max rather than min, so the result is never
// below the cap. Callers relying on it as an upper bound get the cap back.
func (s *Stat) scaleStatRelative() (float64, error) {
	other, err := s.owner.Get(s.ReferenceStat())
	if err != nil {
		return 0, err
	}
	if other.cap == 0 {
		return 0, errors.FailedPreconditionf("reference stat %q of %q has a zero cap", other.name, s.name)
	}

	v := float64(s.base) * math.Pow(10*s.scaleAmount, float64(other.Value(false))/float64(other.cap))
	return math.Max(v, float64(s.cap)), nil
}

// methodFor maps a rule's scale method to the behavior a stat binds.
// ok is false for accepted methods that fall back to exponential-by-level.
func methodFor(m rules.Method) (method ScaleMethod, ok bool) {
	switch m {
	case rules.MethodFlat:
		return ScaleFlatByLevelOrStat, true
	case rules.MethodExp, "":
		return ScaleExponentialByLevel, true
	default:
		return ScaleExponentialByLevel, false
	}
}
