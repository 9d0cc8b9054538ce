package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-loadout/internal/config"
	"github.com/KirkDiggler/rpg-loadout/internal/presenter"
)

// globalFlags override the LOADOUT_* environment when set
type globalFlags struct {
	profile     string
	format      string
	catalogPath string
	rulesPath   string
	redisAddr   string
	stateDir    string
}

type cli struct {
	flags globalFlags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "loadout",
		Short: "Random build roller",
		Long: `loadout rolls random builds: a character from the active roster, a movement
item, five highlight items and a 25 level skill order.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.flags.profile, "profile", "", "selection profile (env LOADOUT_PROFILE)")
	pf.StringVar(&c.flags.format, "format", string(presenter.FormatText), "output format: text or json")
	pf.StringVar(&c.flags.catalogPath, "catalog", "", "catalog file (env LOADOUT_CATALOG_PATH)")
	pf.StringVar(&c.flags.rulesPath, "rules", "", "skill rules file (env LOADOUT_RULES_PATH)")
	pf.StringVar(&c.flags.redisAddr, "redis", "", "redis address for selections (env LOADOUT_REDIS_ADDR)")
	pf.StringVar(&c.flags.stateDir, "state-dir", "", "directory for selections without redis (env LOADOUT_STATE_DIR)")

	rootCmd.AddCommand(c.rollCmd())
	rootCmd.AddCommand(c.selectCmd())
	rootCmd.AddCommand(c.catalogCmd())

	return rootCmd
}

func (c *cli) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = c.flags.profile
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = c.flags.catalogPath
	}
	if flags.Changed("rules") {
		cfg.RulesPath = c.flags.rulesPath
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = c.flags.redisAddr
	}
	if flags.Changed("state-dir") {
		cfg.StateDir = c.flags.stateDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	c.cfg = cfg
	return nil
}
