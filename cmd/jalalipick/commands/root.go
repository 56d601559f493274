// Package commands implements the jalalipick command tree.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tartampluch/go-jalalipick/internal/config"
	"github.com/tartampluch/go-jalalipick/locale"
)

// ErrUsage marks command line problems so main can map them to the usage
// exit code.
var ErrUsage = errors.New("usage")

var (
	cfgFile   string
	debugMode bool
	langFlag  string
)

// Execute builds the command tree and runs it under the given context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   config.CLIName,
		Short: "Jalali calendar date picker toolkit",
		Long: config.AppName + " converts between Jalali and Gregorian dates, renders\n" +
			"month grids with holiday and selection marks, and exports picked days\n" +
			"as iCalendar events.",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(debugMode)
			if err := initConfig(); err != nil {
				return err
			}
			logStartupInfo()
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName, config.Version, runtime.GOOS, runtime.GOARCH))
	root.Flags().Bool(config.FlagVersion, false, config.FlagDescVersion)

	root.PersistentFlags().BoolVar(&debugMode, config.FlagDebug, false, config.FlagDescDebug)
	root.PersistentFlags().StringVar(&cfgFile, config.FlagConfig, "", config.FlagDescConfig)
	root.PersistentFlags().StringVar(&langFlag, config.FlagLang, "", config.FlagDescLang)
	_ = viper.BindPFlag(config.PrefLanguage, root.PersistentFlags().Lookup(config.FlagLang))

	root.AddCommand(todayCmd(), convertCmd(), calCmd(), exportCmd())
	return root
}

// initConfig wires viper to the config file, environment and defaults.
func initConfig() error {
	viper.SetDefault(config.PrefLanguage, config.DefaultLanguage)
	viper.SetDefault(config.PrefHolidays, "")

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType(config.ConfigType)
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, config.ConfigDirName))
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			slog.Debug(config.MsgConfigMissing,
				config.LogKeyComponent, config.CompCLI,
			)
			return nil
		}
		return err
	}

	slog.Debug(config.MsgConfigLoaded,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyFile, viper.ConfigFileUsed(),
	)
	return nil
}

// newCatalog builds the display catalog for the configured language.
func newCatalog() (*locale.Catalog, error) {
	return locale.New(viper.GetString(config.PrefLanguage))
}

// setupLogging configures the default slog logger. Logs go to stderr so
// command output stays pipeable; default verbosity only surfaces problems.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
