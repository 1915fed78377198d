package client

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-stats/internal/handlers/stats/v1alpha1"
)

var (
	createRuleset string
	createLevel   int
)

var createOwnerCmd = &cobra.Command{
	Use:   "create-owner",
	Short: "Create a stats owner",
	Long: `Create an owner bound to a stored rule set. Examples:

  create-owner
  create-owner --ruleset hardcore --level 5`,
	Args: cobra.NoArgs,
	RunE: createOwner,
}

var deleteOwnerCmd = &cobra.Command{
	Use:   "delete-owner [owner-id]",
	Short: "Discard a stats owner",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteOwner,
}

var setLevelCmd = &cobra.Command{
	Use:   "set-level [owner-id] [level]",
	Short: "Set the level of an owner",
	Args:  cobra.ExactArgs(2),
	RunE:  setLevel,
}

var awardXPCmd = &cobra.Command{
	Use:   "award-xp [owner-id] [amount]",
	Short: "Award experience to an owner",
	Args:  cobra.ExactArgs(2),
	RunE:  awardXP,
}

func init() {
	createOwnerCmd.Flags().StringVar(&createRuleset, "ruleset", "", "stored rule set name (server default when empty)")
	createOwnerCmd.Flags().IntVar(&createLevel, "level", 0, "starting level")
}

func createOwner(cmd *cobra.Command, _ []string) error {
	fields := map[string]any{}
	if createRuleset != "" {
		fields[v1alpha1.FieldRuleset] = createRuleset
	}
	if createLevel != 0 {
		fields[v1alpha1.FieldLevel] = createLevel
	}

	return call(cmd, "create owner", fields, func(c v1alpha1.StatsServiceClient) callFunc {
		return c.CreateOwner
	})
}

func deleteOwner(cmd *cobra.Command, args []string) error {
	return call(cmd, "delete owner", map[string]any{v1alpha1.FieldOwnerID: args[0]}, func(c v1alpha1.StatsServiceClient) callFunc {
		return c.DeleteOwner
	})
}

func setLevel(cmd *cobra.Command, args []string) error {
	level, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}

	return call(cmd, "set level", map[string]any{
		v1alpha1.FieldOwnerID: args[0],
		v1alpha1.FieldLevel:   level,
	}, func(c v1alpha1.StatsServiceClient) callFunc {
		return c.SetLevel
	})
}

func awardXP(cmd *cobra.Command, args []string) error {
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}

	return call(cmd, "award xp", map[string]any{
		v1alpha1.FieldOwnerID: args[0],
		v1alpha1.FieldAmount:  amount,
	}, func(c v1alpha1.StatsServiceClient) callFunc {
		return c.AwardXP
	})
}
