// Package rules turns section-based stat configuration into a typed rule table.
//
// A rule set maps a section name (a stat name, or "lvl" for leveling) to
// string options. Parse validates and types the recognized options:
//
//	scale_stat    comma separated stat names ("lvl" refers to the owner level)
//	scale_method  one of exp, log, flat, custom_dps
//	scale_amount  integer, or float when it contains a decimal point
//	cap           integer
//
// Unrecognized options are kept verbatim and reported as diagnostics.
package rules

import (
	"fmt"
	"strconv"
)

// Option keys recognized by Parse
const (
	KeyScaleStat   = "scale_stat"
	KeyScaleMethod = "scale_method"
	KeyScaleAmount = "scale_amount"
	KeyCap         = "cap"
)

// LevelSection is the section holding the leveling rule, and the scale_stat
// name that refers to the owner level instead of another stat.
const LevelSection = "lvl"

// Method is an enumerated scale method name
type Method string

// Scale methods accepted in rule files
const (
	MethodExp       Method = "exp"
	MethodLog       Method = "log"
	MethodFlat      Method = "flat"
	MethodCustomDPS Method = "custom_dps"
)

// Methods lists every accepted scale method in declaration order
var Methods = []Method{MethodExp, MethodLog, MethodFlat, MethodCustomDPS}

// Valid reports whether m is one of the accepted scale methods
func (m Method) Valid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// Implemented reports whether m has a scaling behavior of its own.
// log and custom_dps are accepted tokens that fall back to exp.
func (m Method) Implemented() bool {
	return m == MethodExp || m == MethodFlat
}

func (m Method) String() string {
	return string(m)
}

// Amount is a scale_amount value that remembers whether it was written as
// an integer or as a decimal.
type Amount struct {
	value   float64
	isFloat bool
}

// IntAmount returns an integral amount
func IntAmount(v int64) Amount {
	return Amount{value: float64(v)}
}

// FloatAmount returns a floating point amount
func FloatAmount(v float64) Amount {
	return Amount{value: v, isFloat: true}
}

// Float64 returns the amount as a float64
func (a Amount) Float64() float64 {
	return a.value
}

// Int returns the amount truncated to an integer
func (a Amount) Int() int64 {
	return int64(a.value)
}

// IsFloat reports whether the amount was written with a decimal point
func (a Amount) IsFloat() bool {
	return a.isFloat
}

func (a Amount) String() string {
	if a.isFloat {
		return strconv.FormatFloat(a.value, 'f', -1, 64)
	}
	return strconv.FormatInt(int64(a.value), 10)
}

// Section is the typed option set of one rule section. Optional options are
// nil (or empty) when the section does not set them.
type Section struct {
	ScaleStat   []string
	ScaleMethod Method
	ScaleAmount *Amount
	Cap         *int
	// Extra holds unrecognized options verbatim
	Extra map[string]string
}

// ReferenceStat returns the first scale_stat entry, or "" when unset
func (s *Section) ReferenceStat() string {
	if s == nil || len(s.ScaleStat) == 0 {
		return ""
	}
	return s.ScaleStat[0]
}

// Table is a parsed rule set keyed by section name
type Table map[string]*Section

// Section returns the named section
func (t Table) Section(name string) (*Section, bool) {
	s, ok := t[name]
	return s, ok
}

// Raw is the untyped section -> option -> value form produced by loaders
type Raw map[string]map[string]string

// Diagnostic is a non-fatal notice about a rule, such as an unrecognized key
type Diagnostic struct {
	Section string
	Key     string
	Message string
}

func (d Diagnostic) String() string {
	if d.Key == "" {
		return fmt.Sprintf("[%s] %s", d.Section, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Section, d.Key, d.Message)
}

// Diagnostics is an ordered list of notices
type Diagnostics []Diagnostic

// Strings renders every diagnostic
func (ds Diagnostics) Strings() []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}
