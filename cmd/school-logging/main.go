package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vertok/school-logging/logging"
)

func main() {
	root := &cobra.Command{
		Use:   "school-logging",
		Short: "Colored console logging with a shared file archive",
		Long: "school-logging demonstrates the logging package: records are color-coded\n" +
			"on the console by severity, duplicated into a per-process file under logs/,\n" +
			"and tunable per logger name. CRITICAL records end the process with status 1.",
	}

	root.AddCommand(
		demoCmd(),
		levelsCmd(),
		initCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --- school-logging demo ---

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit sample records at every severity",
		RunE:  runDemo,
	}

	cmd.Flags().String("verbose", "INFO", "Console verbosity: DEBUG, INFO, WARNING, ERROR or CRITICAL (case-insensitive)")
	cmd.Flags().String("config", "", "Path to a TOML logging config")
	cmd.Flags().String("color", "always", "Console color: always, auto or never")
	cmd.Flags().Bool("fatal", false, "End the demo with a CRITICAL record (exits 1)")
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetString("verbose")
	configPath, _ := cmd.Flags().GetString("config")
	colorFlag, _ := cmd.Flags().GetString("color")
	fatal, _ := cmd.Flags().GetBool("fatal")

	cfg := logging.DefaultConfig()
	if configPath != "" {
		loaded, err := logging.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	// Explicit flags win over the config file.
	if cmd.Flags().Changed("color") {
		cfg.Color = colorFlag
	}
	if !cmd.Flags().Changed("verbose") {
		verbose = cfg.Level
	}

	reg := logging.NewRegistry(cfg.Options()...)
	defer reg.Close()
	if err := cfg.Apply(reg); err != nil {
		return err
	}

	app, err := reg.GetLogger("school.app", verbose)
	if err != nil {
		return err
	}
	db, err := reg.GetLogger("school.db", verbose)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	app.Debug("verbose level was set to %s", logging.ParseSeverity(verbose))
	app.Debug("demo run %s starting", runID[:8])

	app.Info("enrolment sync started for %d students", 412)
	db.Debug("opening connection to the grade store")
	db.Warning("student table is missing an index, scans will be slow")
	app.Error("report generation failed for class %s", "7B")

	fmt.Printf("\nRecords written to %s\n", reg.LogPath())

	if fatal {
		// Flushes to console and file, then exits 1. Close is never reached.
		app.Critical("demo requested a fatal stop")
	}
	return nil
}

// --- school-logging levels ---

func levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the five severities with their console colors",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Severities, quietest first. Pass one to --verbose:")
			fmt.Println()
			for _, s := range []logging.Severity{
				logging.DebugLevel,
				logging.InfoLevel,
				logging.WarningLevel,
				logging.ErrorLevel,
				logging.CriticalLevel,
			} {
				fmt.Printf("  %s%s%s\n", logging.ColorFor(s), s, logging.ColorReset)
			}
			fmt.Println()
			fmt.Println("Any other value falls back to INFO.")
		},
	}
}

// --- school-logging init ---

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter logging config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "logging.toml"
			if len(args) == 1 {
				path = args[0]
			}

			cfg := logging.DefaultConfig()
			cfg.Levels = map[string]string{"school.db": "WARNING"}
			cfg.Silence = map[string]string{"urllib3": "WARNING"}
			if err := cfg.Save(path); err != nil {
				return err
			}

			fmt.Printf("Config created at %s\n", path)
			fmt.Printf("Edit the [levels] and [silence] tables, then run: school-logging demo --config %s\n", path)
			return nil
		},
	}
}
