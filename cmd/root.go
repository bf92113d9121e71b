package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/CodeMonkeyCybersecurity/remember/internal/config"
	"github.com/CodeMonkeyCybersecurity/remember/internal/history"
	"github.com/CodeMonkeyCybersecurity/remember/internal/logger"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

// Execute runs the root command and reports any failure on stderr.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// printError writes the diagnostic, in red only when w itself is a terminal.
func printError(w io.Writer, err error) {
	c := color.New(color.FgRed)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintf(w, "Error: %v\n", err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRootCmd builds the remember command with its own viper instance, so
// each invocation (and each test) starts from a clean configuration.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	var (
		cfg *config.Config
		log *logger.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "remember [file]",
		Short: "Keep a most-recently-used list for launcher menus",
		Long: `remember reads one item from STDIN, moves it to the top of a recent file
(deduplicated, capped at --count entries) and prints it back on STDOUT.

The file defaults to $HOME/.dmenu.recent and holds one entry per line,
most recent first. A missing file is treated as an empty history.

USAGE:
  cat ~/.dmenu.recent - <(dmenu_path) | dmenu | remember | sh
  echo firefox | remember -c 10 --no-output ~/.cache/launcher.recent`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(v, args)
			if err != nil {
				return err
			}

			log, err = logger.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() {
				if err := log.Sync(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to sync logger: %v\n", err)
				}
			}()

			ctx := logger.WithLogger(cmd.Context(), log)
			item, err := history.Remember(ctx, cmd.InOrStdin(), cfg.History)
			if err != nil {
				return err
			}

			if !cfg.History.NoOutput {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}

	bindFlags(rootCmd, v)
	return rootCmd
}

func bindFlags(rootCmd *cobra.Command, v *viper.Viper) {
	flags := rootCmd.Flags()
	flags.StringP("count", "c", strconv.Itoa(config.DefaultCount), "The number of items to remember")
	flags.Bool("no-output", false, "Do not output anything after adding to the recent file")
	flags.Bool("atomic", false, "Replace the recent file through a temp file and rename")
	v.BindPFlag("history.count", flags.Lookup("count"))
	v.BindPFlag("history.no_output", flags.Lookup("no-output"))
	v.BindPFlag("history.atomic", flags.Lookup("atomic"))
	v.BindEnv("history.count", "REMEMBER_COUNT")
	v.BindEnv("history.file", "REMEMBER_FILE")
	v.BindEnv("history.atomic", "REMEMBER_ATOMIC")

	// Logging configuration
	rootCmd.PersistentFlags().String("log-level", "error", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (json, console)")
	v.BindPFlag("logger.level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("logger.format", rootCmd.PersistentFlags().Lookup("log-format"))
	v.BindEnv("logger.level", "REMEMBER_LOG_LEVEL")
	v.BindEnv("logger.format", "REMEMBER_LOG_FORMAT")

	v.SetDefault("logger.output_paths", []string{"stderr"})
}

// loadConfig resolves flags and environment into a validated Config. It runs
// before any file or stdin I/O so bad arguments fail fast.
func loadConfig(v *viper.Viper, args []string) (*config.Config, error) {
	raw := strings.TrimSpace(v.GetString("history.count"))
	count, err := strconv.ParseUint(raw, 10, 31)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidCount, raw)
	}
	v.Set("history.count", int(count))

	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(args) == 1 {
		cfg.History.File = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
