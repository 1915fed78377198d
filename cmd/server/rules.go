package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-stats/internal/repositories/rulesets"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

var requireKeys []string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Validate and manage stored rule sets",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse a rule file and report problems",
	Long: `Parse a YAML or INI rule file. Fails on any invalid option and prints
non-fatal diagnostics such as unknown keys. Examples:

  rules validate configs/rules.cfg
  rules validate configs/rules.yaml --require scale_method,scale_amount`,
	Args: cobra.ExactArgs(1),
	RunE: validateRules,
}

var rulesPushCmd = &cobra.Command{
	Use:   "push [name] [file]",
	Short: "Store a rule file in Redis under a name",
	Args:  cobra.ExactArgs(2),
	RunE:  pushRules,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a stored rule set as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  showRules,
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored rule set names",
	Args:  cobra.NoArgs,
	RunE:  listRules,
}

var rulesDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Remove a stored rule set",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteRules,
}

func init() {
	rulesValidateCmd.Flags().StringSliceVar(&requireKeys, "require", nil, "keys every section must set")

	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesPushCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesDeleteCmd)
}

func validateRules(cmd *cobra.Command, args []string) error {
	raw, err := rules.LoadFile(args[0])
	if err != nil {
		return err
	}
	if len(requireKeys) > 0 {
		if err := rules.RequireKeys(raw, requireKeys...); err != nil {
			return err
		}
	}

	table, diags, err := rules.Parse(raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printDiagnostics(out, diags)
	fmt.Fprintf(out, "%s: %d sections OK\n", args[0], len(table))
	return nil
}

func pushRules(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]

	raw, err := rules.LoadFile(path)
	if err != nil {
		return err
	}

	return withRuleSets(func(ctx context.Context, repo rulesets.Repository) error {
		out, err := repo.Put(ctx, &rulesets.PutInput{Name: name, Rules: raw})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		printDiagnostics(w, out.Diagnostics)
		fmt.Fprintf(w, "stored rule set %q (%d sections)\n", name, len(raw))
		return nil
	})
}

func showRules(cmd *cobra.Command, args []string) error {
	return withRuleSets(func(ctx context.Context, repo rulesets.Repository) error {
		out, err := repo.Get(ctx, &rulesets.GetInput{Name: args[0]})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# %s, updated %s\n", out.RuleSet.Name, out.RuleSet.UpdatedAt.Format(time.RFC3339))

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out.RuleSet.Rules); err != nil {
			return fmt.Errorf("failed to encode rules: %w", err)
		}
		return enc.Close()
	})
}

func listRules(cmd *cobra.Command, _ []string) error {
	return withRuleSets(func(ctx context.Context, repo rulesets.Repository) error {
		out, err := repo.List(ctx, &rulesets.ListInput{})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(out.Names) == 0 {
			fmt.Fprintln(w, "no rule sets stored")
			return nil
		}
		fmt.Fprintln(w, strings.Join(out.Names, "\n"))
		return nil
	})
}

func deleteRules(cmd *cobra.Command, args []string) error {
	return withRuleSets(func(ctx context.Context, repo rulesets.Repository) error {
		if _, err := repo.Delete(ctx, &rulesets.DeleteInput{Name: args[0]}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted rule set %q\n", args[0])
		return nil
	})
}

func withRuleSets(fn func(ctx context.Context, repo rulesets.Repository) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, cleanup, err := openRuleSets(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, repo)
}

func printDiagnostics(w io.Writer, diags rules.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintf(w, "warning: %s\n", d)
	}
}
