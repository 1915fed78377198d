package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/simulation"
	"github.com/KirkDiggler/rpg-stats/internal/pkg/logging"
	"github.com/KirkDiggler/rpg-stats/internal/rules"
)

var (
	simRulesFile     string
	simStats         []string
	simLevels        int
	simXPDice        string
	simMaxEncounters int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Level an owner with random encounters and print the stat curve",
	Long: `Simulate leveling offline. Every encounter awards the sum of an XP dice
roll; a row is printed each time the owner levels up. Example:

  simulate --rules configs/rules.cfg --stat sta=10 --stat hp=100 --stat dmg=10 --levels 20`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simRulesFile, "rules", "", "rule file to simulate (required)")
	simulateCmd.Flags().StringArrayVar(&simStats, "stat", nil, "stat as name=base, repeatable")
	simulateCmd.Flags().IntVar(&simLevels, "levels", 10, "level to stop at")
	simulateCmd.Flags().StringVar(&simXPDice, "xp-dice", "4d10", "XP awarded per encounter, as NdM")
	simulateCmd.Flags().IntVar(&simMaxEncounters, "max-encounters", simulation.DefaultMaxEncounters, "encounter limit")
	_ = simulateCmd.MarkFlagRequired("rules") // nolint:errcheck // flag is defined above
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	table, diags, err := rules.LoadAndParse(simRulesFile)
	if err != nil {
		return err
	}
	printDiagnostics(cmd.ErrOrStderr(), diags)

	stats, err := parseStatFlags(simStats)
	if err != nil {
		return err
	}

	level := logLevel
	if level == "" {
		level = "warn"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, logging.FormatText)
	if err != nil {
		return err
	}

	sim, err := simulation.NewSimulator(&simulation.Config{Logger: logger})
	if err != nil {
		return err
	}

	out, err := sim.Run(ctx, &simulation.RunInput{
		Rules:         table,
		Stats:         stats,
		TargetLevel:   simLevels,
		XPDice:        simXPDice,
		MaxEncounters: simMaxEncounters,
	})
	if err != nil {
		return err
	}

	return printSimulation(cmd.OutOrStdout(), out)
}

func parseStatFlags(values []string) ([]simulation.StatInput, error) {
	stats := make([]simulation.StatInput, 0, len(values))
	for _, v := range values {
		name, base, ok := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("stat %q must be name=base", v)
		}
		n, err := strconv.Atoi(strings.TrimSpace(base))
		if err != nil {
			return nil, fmt.Errorf("stat %q: base must be a whole number", v)
		}
		stats = append(stats, simulation.StatInput{Name: name, Base: n})
	}
	return stats, nil
}

func printSimulation(w io.Writer, out *simulation.RunOutput) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	header := []string{"level", "encounters", "xp", "next"}
	if len(out.Rows) > 0 {
		for _, st := range out.Rows[0].Stats {
			header = append(header, st.Name)
		}
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, row := range out.Rows {
		cells := []string{
			p.Sprintf("%d", row.Level),
			p.Sprintf("%d", row.Encounters),
			p.Sprintf("%d", row.XP),
			p.Sprintf("%d", row.NextLevelTarget),
		}
		for _, st := range row.Stats {
			if st.Expected != nil {
				cells = append(cells, p.Sprintf("%d (%.1f)", st.Value, *st.Expected))
				continue
			}
			cells = append(cells, p.Sprintf("%d", st.Value))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	p.Fprintf(w, "\n%d encounters in total\n", out.TotalEncounters)
	return nil
}
