package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/derekprior/seasonsim/internal/config"
	"github.com/derekprior/seasonsim/internal/excel"
	"github.com/derekprior/seasonsim/internal/league"
	"github.com/derekprior/seasonsim/internal/logging"
	"github.com/derekprior/seasonsim/internal/random"
	"github.com/derekprior/seasonsim/internal/schedule"
	"github.com/derekprior/seasonsim/internal/sim"
	"github.com/derekprior/seasonsim/internal/strategy"
	"github.com/derekprior/seasonsim/internal/validator"
)

const defaultConfigFile = "config.yaml"

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory or pass --config", defaultConfigFile)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "seasonsim",
		Short: "Football season schedule generator and simulator",
	}

	var configFile string
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: config.yaml in current directory)")

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter config.yaml with the 32-team league",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and validate schedules",
	}

	var outputFile string
	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a schedule from a config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runGenerate(configPath, outputFile)
		},
	}
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "schedule.xlsx", "Output Excel file path")

	validateCmd := &cobra.Command{
		Use:          "validate <schedule.xlsx>",
		Short:        "Validate a schedule workbook against the league",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runValidate(configPath, args[0])
		},
	}

	seasonCmd := &cobra.Command{
		Use:   "season",
		Short: "Simulate seasons",
	}

	var seasonOutput string
	simulateCmd := &cobra.Command{
		Use:          "simulate",
		Short:        "Generate a schedule, play it out and run the playoffs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runSimulate(configPath, seasonOutput)
		},
	}
	simulateCmd.Flags().StringVarP(&seasonOutput, "output", "o", "season.xlsx", "Output Excel file path")

	scheduleCmd.AddCommand(generateCmd, validateCmd)
	seasonCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(initCmd, scheduleCmd, seasonCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(config.Template), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("✓ Created %s\n", outputPath)
	return nil
}

// setup loads the config and environment and returns the league, logger and
// random source every command works from.
func setup(configPath string) (*config.Config, *league.Registry, *logrus.Logger, *rand.Rand, error) {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	e, err := config.LoadEnv()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	e.Apply(cfg)
	log := logging.New(e.LogLevel, e.LogFormat, os.Stderr)

	seed := cfg.Season.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	log.WithField("seed", seed).Debug("Random source seeded")

	reg, err := league.FromConfig(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return cfg, reg, log, rand.New(rand.NewSource(seed)), nil
}

func buildSchedule(cfg *config.Config, reg *league.Registry, log *logrus.Logger, rng *rand.Rand) (*schedule.Result, error) {
	strat, err := strategy.Get(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Scheduling %d teams over %d weeks...\n", reg.Len(), cfg.Season.Weeks)
	gen := schedule.NewGenerator(schedule.SeasonFromConfig(cfg), strat, rng, log)
	return gen.Generate(reg)
}

func printTeamMetrics(reg *league.Registry) {
	fmt.Println("\nPer Team Metrics:")
	fmt.Printf("  %-22s %6s %5s %5s %4s\n", "Team", "Games", "Home", "Away", "Bye")
	for _, team := range reg.Teams() {
		home, away := 0, 0
		for _, e := range team.Schedule {
			switch e.Location {
			case league.Home:
				home++
			case league.Away:
				away++
			}
		}
		bye := "-"
		if w, ok := team.ByeWeek(); ok {
			bye = fmt.Sprintf("%d", w)
		}
		fmt.Printf("  %-22s %6d %5d %5d %4s\n", team.Name, team.Games(), home, away, bye)
	}
}

func printViolations(violations []validator.Violation) int {
	errs := 0
	warnings := 0
	for _, v := range violations {
		switch v.Type {
		case "error":
			errs++
			fmt.Printf("✗ Rule violation: %s\n", v.Message)
		case "warning":
			warnings++
			fmt.Printf("⚠ Shortfall: %s\n", v.Message)
		}
	}
	if errs == 0 && warnings == 0 {
		fmt.Println("✓ No violations")
	}
	return errs
}

func runGenerate(configPath, outputPath string) error {
	cfg, reg, log, rng, err := setup(configPath)
	if err != nil {
		return err
	}

	result, schedErr := buildSchedule(cfg, reg, log, rng)
	if schedErr != nil && !errors.Is(schedErr, schedule.ErrConflictsPersist) {
		return schedErr
	}

	if schedErr != nil {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", schedErr)
		fmt.Fprintf(os.Stderr, "\nGenerating partial schedule...\n")
	} else {
		fmt.Printf("✓ %d games scheduled in %d attempt(s)\n", result.Matchups.Total(), result.Attempts)
	}

	printTeamMetrics(reg)
	fmt.Println()
	printViolations(result.Violations)

	f, err := excel.Generate(reg, cfg.Season.Weeks, nil)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Printf("\n✓ Schedule saved to %s\n", outputPath)
	if schedErr != nil {
		return fmt.Errorf("schedule is incomplete: %w", schedErr)
	}
	return nil
}

func runValidate(configPath, schedulePath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	violations, err := validator.Validate(cfg, schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errs := printViolations(violations)
	fmt.Printf("\nValidation complete: %d rule violations, %d shortfalls\n", errs, len(violations)-errs)

	if errs > 0 {
		return fmt.Errorf("%d constraint violations found", errs)
	}
	return nil
}

func runSimulate(configPath, outputPath string) error {
	cfg, reg, log, rng, err := setup(configPath)
	if err != nil {
		return err
	}

	result, err := buildSchedule(cfg, reg, log, rng)
	if err != nil {
		return fmt.Errorf("cannot simulate: %w", err)
	}
	fmt.Printf("✓ %d games scheduled in %d attempt(s)\n", result.Matchups.Total(), result.Attempts)

	s := sim.New(rng, cfg.Simulation.RatingBoost, log)
	weeks, err := s.PlaySeason(reg, result.Matchups)
	if err != nil {
		return fmt.Errorf("simulating season: %w", err)
	}
	season := &sim.Season{Weeks: weeks}

	for _, wr := range weeks {
		fmt.Printf("\nWeek %d\n", wr.Week)
		for _, g := range wr.Games {
			fmt.Printf("  %s @ %s: %s win\n", g.Away, g.Home, g.Winner)
		}
	}

	conferences := cfg.Conferences()
	seeds, err := sim.SeedPlayoffs(reg.Teams(), conferences, cfg.Simulation.PlayoffSeeds)
	if err != nil {
		return err
	}
	season.Standings = sim.Standings(reg.Teams())
	season.Seeds = seeds

	fmt.Println("\nStandings:")
	for i, t := range season.Standings {
		marker := " "
		if t.Playoffs {
			marker = "*"
		}
		fmt.Printf("  %2d. %-22s %2d-%-2d %s\n", i+1, t.Name, t.Wins, t.Losses, marker)
	}

	if len(conferences) == 2 && cfg.Simulation.PlayoffSeeds == sim.BracketSeeds {
		bracket, err := s.PlayBracket(conferences, seeds)
		if err != nil {
			return fmt.Errorf("playing bracket: %w", err)
		}
		season.Bracket = bracket

		for _, r := range bracket.Rounds {
			fmt.Printf("\n%s\n", r.Name)
			for _, g := range r.Games {
				fmt.Printf("  %s vs %s: %s advance\n", g.Home, g.Away, g.Winner)
			}
		}
		fmt.Printf("\n✓ Champion: %s\n", bracket.Champion.Name)
	} else {
		fmt.Printf("\n⚠ Bracket needs 2 conferences and %d seeds; skipping playoffs\n", sim.BracketSeeds)
	}

	f, err := excel.Generate(reg, cfg.Season.Weeks, season)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Printf("\n✓ Season saved to %s\n", outputPath)
	return nil
}
