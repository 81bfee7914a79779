package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/tuinput/input"
	"github.com/zjrosen/tuinput/internal/app"
	"github.com/zjrosen/tuinput/internal/config"
	"github.com/zjrosen/tuinput/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "tuinput",
	Short: "A single-line text field for the terminal",
	Long: `Run an interactive single-line text field and print the submitted value.

The field supports readline-style editing (word jumps, word deletes, line
kill), wide and combining characters, and mouse clicks. With --state the
value and cursor are restored on start and saved on exit.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  startLogging,
	PersistentPostRunE: stopLogging,
	RunE:               runField,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/tuinput/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false,
		"write a debug log (also enabled by TUINPUT_DEBUG=1)")
	rootCmd.Flags().StringP("backend", "b", "",
		`terminal backend: "tea" or "tcell"`)
	rootCmd.Flags().StringP("state", "s", "",
		"snapshot file restored on start and saved on exit")
	rootCmd.Flags().String("value", "",
		"initial text, overrides a restored snapshot")
	rootCmd.Flags().IntP("width", "w", 0,
		"field width in columns")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("backend", rootCmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("state_file", rootCmd.Flags().Lookup("state"))
	_ = viper.BindPFlag("input.width", rootCmd.Flags().Lookup("width"))
}

func initConfig() {
	configErr = nil

	defaults := config.Defaults()
	viper.SetDefault("backend", defaults.Backend)
	viper.SetDefault("state_file", defaults.StateFile)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_path", defaults.LogPath)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("input.width", defaults.Input.Width)
	viper.SetDefault("input.placeholder", defaults.Input.Placeholder)
	viper.SetDefault("input.prompt", defaults.Input.Prompt)
	viper.SetDefault("input.char_limit", defaults.Input.CharLimit)
	viper.SetDefault("theme.cursor", defaults.Theme.Cursor)
	viper.SetDefault("theme.placeholder", defaults.Theme.Placeholder)

	// TUINPUT_DEBUG, TUINPUT_BACKEND, TUINPUT_INPUT_WIDTH, ...
	viper.SetEnvPrefix("tuinput")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .tuinput/config.yaml (current directory)
		// 2. ~/.config/tuinput/config.yaml (user config)
		if _, err := os.Stat(".tuinput/config.yaml"); err == nil {
			viper.SetConfigFile(".tuinput/config.yaml")
		} else {
			viper.AddConfigPath(filepath.Dir(config.DefaultConfigPath()))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Reported once logging is up; defaults still apply.
			configErr = err
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// configErr holds a config file that exists but failed to parse.
var configErr error

func startLogging(cmd *cobra.Command, _ []string) error {
	if cfg.Debug {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid configuration: log_level: %w", err)
		}
		cleanup, err := log.InitWithTeaLog(cfg.LogPath, "tuinput", level)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatCLI, "Starting", "command", cmd.CommandPath(), "version", version, "config", viper.ConfigFileUsed())
	}
	if configErr != nil {
		log.ErrorErr(log.CatConfig, "Failed to read config", configErr, "path", viper.ConfigFileUsed())
		return fmt.Errorf("reading config: %w", configErr)
	}
	return nil
}

func stopLogging(cmd *cobra.Command, _ []string) error {
	if logCleanup != nil {
		log.Info(log.CatCLI, "Exiting", "command", cmd.CommandPath())
		logCleanup()
		logCleanup = nil
	}
	return nil
}

func runField(cmd *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	in, err := initialInput(cmd)
	if err != nil {
		return err
	}

	var res app.Result
	switch cfg.Backend {
	case config.BackendTcell:
		res, err = runTcell(in)
	default:
		res, err = runTea(cmd, in)
	}
	if err != nil {
		return err
	}

	if cfg.StateFile != "" {
		if err := config.SaveState(cfg.StateFile, res.Input); err != nil {
			return fmt.Errorf("saving state: %w", err)
		}
	}
	if res.Submitted {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Value())
	}
	return nil
}

// initialInput restores the configured snapshot, then applies --value.
func initialInput(cmd *cobra.Command) (*input.Input, error) {
	in := input.New()
	if cfg.StateFile != "" {
		restored, err := config.LoadState(cfg.StateFile)
		if err != nil {
			return nil, fmt.Errorf("loading state: %w", err)
		}
		in = restored
	}
	if cmd.Flags().Changed("value") {
		value, _ := cmd.Flags().GetString("value")
		in = input.FromString(value)
	}
	return in, nil
}

func runTea(cmd *cobra.Command, in *input.Input) (app.Result, error) {
	zone.NewGlobal()
	defer zone.Close()

	// The UI goes to stderr so stdout carries only the submitted value.
	p := tea.NewProgram(
		app.New(cfg, in),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	final, err := p.Run()
	if err != nil {
		return app.Result{}, fmt.Errorf("running program: %w", err)
	}
	return final.(app.Model).Result(), nil
}

func runTcell(in *input.Input) (app.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return app.Result{}, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return app.Result{}, fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.EnablePaste()

	return app.NewTcellRunner(screen, cfg, in).Run(), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
