package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/handlers/stats/v1alpha1"
)

var getStatRaw bool

var addStatsCmd = &cobra.Command{
	Use:   "add-stats [owner-id] [name=base...]",
	Short: "Add stats to an owner",
	Long: `Add stats to an owner; each binds the matching rule section. Example:

  add-stats owner_123 sta=10 hp=100 dmg=10`,
	Args: cobra.MinimumNArgs(2),
	RunE: addStats,
}

var updateStatsCmd = &cobra.Command{
	Use:   "update-stats [owner-id]",
	Short: "Recompute every stat of an owner",
	Args:  cobra.ExactArgs(1),
	RunE:  updateStats,
}

var getStatCmd = &cobra.Command{
	Use:   "get-stat [owner-id] [name]",
	Short: "Read one stat value",
	Args:  cobra.ExactArgs(2),
	RunE:  getStat,
}

func init() {
	getStatCmd.Flags().BoolVar(&getStatRaw, "raw", false, "return the base value")
}

func addStats(cmd *cobra.Command, args []string) error {
	stats := make([]any, 0, len(args)-1)
	for _, arg := range args[1:] {
		name, base, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return fmt.Errorf("stat %q must be name=base", arg)
		}
		n, err := strconv.Atoi(base)
		if err != nil {
			return fmt.Errorf("stat %q: base must be a whole number", arg)
		}
		stats = append(stats, map[string]any{
			v1alpha1.FieldName: name,
			v1alpha1.FieldBase: n,
		})
	}

	return call(cmd, "add stats", map[string]any{
		v1alpha1.FieldOwnerID: args[0],
		v1alpha1.FieldStats:   stats,
	}, func(c v1alpha1.StatsServiceClient) callFunc {
		return c.AddStats
	})
}

func updateStats(cmd *cobra.Command, args []string) error {
	return call(cmd, "update stats", map[string]any{
		v1alpha1.FieldOwnerID: args[0],
	}, func(c v1alpha1.StatsServiceClient) callFunc {
		return c.UpdateStats
	})
}

func getStat(cmd *cobra.Command, args []string) error {
	return call(cmd, "get stat", map[string]any{
		v1alpha1.FieldOwnerID: args[0],
		v1alpha1.FieldName:    args[1],
		v1alpha1.FieldRaw:     getStatRaw,
	}, func(c v1alpha1.StatsServiceClient) callFunc {
		return c.GetStat
	})
}
