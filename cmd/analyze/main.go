package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"litigation-strategy-lab/internal/config"
	"litigation-strategy-lab/internal/domain"
	"litigation-strategy-lab/internal/engine"
	"litigation-strategy-lab/internal/reporting"
)

func main() {
	// Optional local overrides; a missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var (
		conservative float64
		recommended  float64
		aggressive   float64
		caseStrength int

		settlementRate float64
		rateKnown      bool

		trials     int
		workers    int
		seed       int64
		seedSet    bool
		keepTrials bool

		output   string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Rank litigation scenarios and simulate outcome distributions",
		Long: "analyze turns a quantified claim (damages range, case strength, opponent\n" +
			"behavior) into a ranked strategy recommendation backed by a Monte Carlo\n" +
			"outcome distribution.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}

			damages, err := domain.NewDamagesRange(conservative, recommended, aggressive)
			if err != nil {
				return err
			}

			req := engine.Request{
				Damages:      damages,
				CaseStrength: caseStrength,
				Trials:       trials,
				Workers:      workers,
				KeepTrials:   keepTrials,
			}
			if rateKnown = cmd.Flags().Changed("settlement-rate"); rateKnown {
				req.OpponentSettlementRate = &settlementRate
			}
			if seedSet = cmd.Flags().Changed("seed"); seedSet {
				req.Seed = &seed
			}

			analysis, err := engine.New(logger).AnalyzeDetailed(context.Background(), req)
			if err != nil {
				return err
			}

			report := reporting.Build(analysis)
			switch strings.ToLower(output) {
			case "markdown":
				fmt.Fprint(cmd.OutOrStdout(), reporting.RenderMarkdown(report))
			case "csv":
				fmt.Fprint(cmd.OutOrStdout(), reporting.RenderRankingCSV(report.Ranking))
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis.Recommendation)
			default:
				return fmt.Errorf("unknown output format %q (markdown, csv, json)", output)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&conservative, "conservative", 0, "conservative damages estimate, USD (required)")
	cmd.Flags().Float64Var(&recommended, "recommended", 0, "recommended damages estimate, USD (required)")
	cmd.Flags().Float64Var(&aggressive, "aggressive", 0, "aggressive damages estimate, USD (required)")
	cmd.Flags().IntVar(&caseStrength, "case-strength", 5, "case strength 0-10")
	cmd.Flags().Float64Var(&settlementRate, "settlement-rate", 0.5, "opponent historical settlement rate in [0,1]")
	cmd.Flags().IntVar(&trials, "trials", cfg.Trials, "Monte Carlo trial count")
	cmd.Flags().IntVar(&workers, "workers", cfg.Workers, "parallel trial workers")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible runs")
	cmd.Flags().BoolVar(&keepTrials, "keep-trials", cfg.KeepTrials, "retain per-trial records in memory")
	cmd.Flags().StringVar(&output, "output", cfg.Output, "output format: markdown, csv, json")
	cmd.Flags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	_ = cmd.MarkFlagRequired("conservative")
	_ = cmd.MarkFlagRequired("recommended")
	_ = cmd.MarkFlagRequired("aggressive")

	return cmd
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}
