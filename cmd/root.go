/*
Copyright © 2026 Guismus
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Guismus/DanjonBot/internal/combat"
	"github.com/Guismus/DanjonBot/internal/data"
	"github.com/Guismus/DanjonBot/internal/dice"
	"github.com/Guismus/DanjonBot/internal/session"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "danjon",
	Short: "Combat resolution for the Danjon role-play",
	Long: `danjon resolves attack exchanges between adventurers: it derives their
combat statistics, applies weapons and rolls the speed and power stages.

It can be driven from the command line or serve a Telegram chat.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.danjon.yaml)")
	pf.String("adventurers", "", "adventurer records file (json or yaml)")
	pf.String("races", "", "race baselines file (json or yaml)")
	pf.String("thresholds", "", "threshold set file (json or yaml)")
	pf.String("locale", "fr", "reply language")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")

	cobra.CheckErr(viper.BindPFlag("adventurers_file", pf.Lookup("adventurers")))
	cobra.CheckErr(viper.BindPFlag("races_file", pf.Lookup("races")))
	cobra.CheckErr(viper.BindPFlag("thresholds_file", pf.Lookup("thresholds")))
	cobra.CheckErr(viper.BindPFlag("locale", pf.Lookup("locale")))
	cobra.CheckErr(viper.BindPFlag("log_level", pf.Lookup("log-level")))
}

// envBindings keeps the variable names the bot has always been deployed with.
var envBindings = map[string]string{
	"adventurers_file": "ADVENTURER_JSON",
	"races_file":       "STATS_RACE_JSON",
	"thresholds_file":  "DIFF_STATS",
	"telegram_token":   "TELEGRAM_TOKEN",
	"telegram_chat_id": "TELEGRAM_CHAT_ID",
	"locale":           "DANJON_LOCALE",
	"log_level":        "DANJON_LOG_LEVEL",
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".danjon")
	}

	for key, env := range envBindings {
		cobra.CheckErr(viper.BindEnv(key, env))
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func newLoader(logger *zap.Logger) *data.Loader {
	return data.NewLoader(data.Paths{
		Adventurers: viper.GetString("adventurers_file"),
		Races:       viper.GetString("races_file"),
		Thresholds:  viper.GetString("thresholds_file"),
	}, logger)
}

// app bundles what every command needs.
type app struct {
	logger   *zap.Logger
	loader   *data.Loader
	resolver *combat.Resolver
	session  *session.Session
}

func newApp(rng dice.RandomSource) (*app, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	loader := newLoader(logger)

	opts := []combat.Option{combat.WithLogger(logger)}
	if rng != nil {
		opts = append(opts, combat.WithRandomSource(rng))
	}
	resolver, err := combat.NewResolver(loader, loader, loader, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build resolver: %w", err)
	}

	return &app{
		logger:   logger,
		loader:   loader,
		resolver: resolver,
		session:  session.New(resolver, loader, viper.GetString("locale"), logger),
	}, nil
}

func (a *app) close() { _ = a.logger.Sync() }

func viperLocale() string { return viper.GetString("locale") }
