package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

// RulesRaw returns the standard rule set used across tests, in raw form.
// It matches configs/rules.cfg with the DEFAULT section merged in.
//
//	lvl   xp scale 1.5
//	sta   flat by level, +2 per level
//	hp    flat by sta, +10 per point
//	dmg   exponential by level, amount 1.2
//	crit  log (falls back to exponential), references dmg
func RulesRaw() rules.Raw {
	return rules.Raw{
		"lvl": {
			"scale_stat":   "lvl",
			"scale_method": "exp",
			"scale_amount": "1.5",
			"cap":          "10000",
		},
		"sta": {
			"scale_stat":   "lvl",
			"scale_method": "flat",
			"scale_amount": "2",
			"cap":          "10000",
		},
		"hp": {
			"scale_stat":   "sta",
			"scale_method": "flat",
			"scale_amount": "10",
			"cap":          "10000",
		},
		"dmg": {
			"scale_stat":   "lvl",
			"scale_method": "exp",
			"scale_amount": "1.2",
			"cap":          "10000",
		},
		"crit": {
			"scale_stat":   "dmg,crit,aspd",
			"scale_method": "log",
			"scale_amount": "1",
			"cap":          "10000",
		},
	}
}

// RulesTable parses RulesRaw, failing the test on error
func RulesTable(t *testing.T) rules.Table {
	t.Helper()

	table, _, err := rules.Parse(RulesRaw())
	require.NoError(t, err, "failed to parse test rules")

	return table
}
