package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/playground/internal/config"
	"github.com/leighmacdonald/playground/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "playground",
		Short: "Animation playground",
		Long:  `playground - A gallery of small interactive screens for the terminal`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about playground",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	configCmd = &cobra.Command{
		Use:               "config",
		Short:             "Print the effective configuration",
		Long:              "Print the configuration after defaults, the config file and the environment are applied",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              printConfig,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file path, defaults to searching "+path.Join(xdg.ConfigHome, config.ConfigDirName))
	rootCmd.AddCommand(versionCmd, configCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("playground - Terminal animation playground\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)                  //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)                   //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                     //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)              //nolint:forbidigo
}

func newLoader(changes chan<- config.Config) *config.Loader {
	return config.NewLoader(changes, cfgFile, path.Join(xdg.ConfigHome, config.ConfigDirName), ".")
}

func printConfig(cmd *cobra.Command, _ []string) error {
	userConfig, errConfig := newLoader(nil).Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	defer func() {
		if err := encoder.Close(); err != nil {
			slog.Error("Failed to close encoder", slog.String("error", err.Error()))
		}
	}()

	if err := encoder.Encode(userConfig); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

// run is the main entry point of playground.
func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & log home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	loader := newLoader(configUpdates)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	level, errLevel := config.ParseLevel(userConfig.LogLevel)
	if errLevel != nil {
		return errors.Join(errLevel, errApp)
	}

	if userConfig.Debug {
		level = slog.LevelDebug
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting playground", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("config", loader.Path()))

	// Only watch a file that was actually found.
	if loader.Path() != "" {
		loader.Watch()
	}

	build := ui.BuildInfo{Version: BuildVersion, Commit: BuildCommit, Date: BuildDate}
	app := NewApp(userConfig, configUpdates)

	if err := app.Start(ctx, build, loader.Path(), config.Path(config.DefaultLogName)); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
