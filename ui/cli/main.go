// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Rutero using the Cobra
// library. It defines the root command, the service bootstrap shared by
// all subcommands (config, store, API client, session manager) and the
// version/backup/restore plumbing.

package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rutero-app/rutero/buildvars"
	"github.com/rutero-app/rutero/internal/api"
	"github.com/rutero-app/rutero/internal/config"
	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/logging"
	"github.com/rutero-app/rutero/internal/session"
	"github.com/rutero-app/rutero/internal/store"
	"github.com/rutero-app/rutero/internal/tui"
)

var version = buildvars.VersionOrDefault("dev")
var gitCommit = buildvars.Commit
var buildDate = buildvars.Date

var cfgFile string
var verbose bool

var appConfig config.Config
var kvStore store.Store
var kvCache *store.Cache
var apiClient *api.Client
var sessionMgr *session.Manager

// setupDefaultServices loads the configuration and wires the store, the
// API client and the session manager. It runs as PersistentPreRunE so
// every subcommand sees the same services.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// First run: persist a default config file so users have something to edit.
	if config.ConfigFileUsed() == "" && configPath == nil {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		}
	}

	logging.SetDebug(verbose || appConfig.Verbose)
	i18n.Init(appConfig.Language)

	kvStore, err = store.NewStoreFromDSN(appConfig.Database.Type, appConfig.Database.DSN)
	if err != nil {
		return fmt.Errorf("error opening session store: %w", err)
	}
	kvCache = store.NewCache(kvStore)

	// The gateway reads the token through this accessor at dispatch time;
	// the session manager writes through the same cache, so both always
	// converge on one current value.
	tokens := func() string {
		v, _ := kvCache.Value(context.Background(), store.KeySession)
		return v
	}
	apiClient = api.New(appConfig.Host, tokens,
		api.WithTimeout(time.Duration(appConfig.Timeout)*time.Second),
		api.WithUserAgent("rutero/"+version),
	)
	sessionMgr = session.New(kvCache, apiClient)

	return nil
}

// getConfigPathFromCli returns the --config value when the user set it.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// Execute runs the CLI entrypoint. The root main package calls this and
// handles process exit.
func Execute() error {
	rootCmd := NewRootCmd()

	defer func() {
		if kvStore != nil {
			if err := kvStore.Close(); err != nil {
				logging.Errorf("error closing session store: %v", err)
			}
		}
	}()

	return rootCmd.Execute()
}

// NewRootCmd creates and configures a new root cobra command. Tests use
// it to build fresh, isolated instances.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rutero",
		Short: "Rutero is a terminal companion for discovering tourist spots and planning routes.",
		Long: `Rutero browses the tourism-discovery service from the terminal: search
spots, read reviews, and assemble personal multi-day routes either by
hand or from the server's automatically generated plan.

Your session is kept in a local store, so signing in once is enough
until the token expires.

Running without a subcommand launches the interactive browser.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionMgr.Rehydrate(cmd.Context())
			return tui.Run(sessionMgr, apiClient)
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("host", "", "Base URL of the tourism API")
	cmd.PersistentFlags().String("language", "", `Language for messages ("en", "es")`)
	cmd.PersistentFlags().String("database.type", "", "Session store type (sqlite, mysql, postgres)")
	cmd.PersistentFlags().String("database.dsn", "", "Session store connection string (DSN)")

	cmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newSessionCmd(),
		newProfileCmd(),
		newSpotsCmd(),
		newActivitiesCmd(),
		newLocationsCmd(),
		newReviewsCmd(),
		newRoutesCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newVersionCmd(),
		newTuiCmd(),
	)

	return cmd
}

// compositeVersion folds the commit and build date into one string.
func compositeVersion() string {
	v := version
	if gitCommit != "" && gitCommit != "dev" {
		v += " (" + gitCommit + ")"
	}
	if buildDate != "" {
		v += " built: " + buildDate
	}
	return v
}

// newVersionCmd prints detailed build info, falling back to whatever the
// Go toolchain stamped into the binary.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			resolvedVersion := version
			resolvedCommit := gitCommit
			resolvedDate := buildDate
			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" && info.Main.Version != "(devel)" {
					resolvedVersion = info.Main.Version
				}
				for _, s := range info.Settings {
					switch s.Key {
					case "vcs.revision":
						if s.Value != "" {
							resolvedCommit = s.Value
						}
					case "vcs.time":
						if s.Value != "" {
							resolvedDate = s.Value
						}
					}
				}
			}

			fmt.Printf("version: %s\n", resolvedVersion)
			fmt.Printf("commit: %s\n", resolvedCommit)
			if resolvedDate != "" {
				fmt.Printf("built: %s\n", resolvedDate)
			}
		},
	}
}

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionMgr.Rehydrate(cmd.Context())
			return tui.Run(sessionMgr, apiClient)
		},
	}
}

// requireSession rehydrates the session and fails with a localized
// message when no token is held.
func requireSession(cmd *cobra.Command) error {
	sessionMgr.Rehydrate(cmd.Context())
	if sessionMgr.Token() == "" {
		return fmt.Errorf("%s", i18n.T("error.not_signed_in"))
	}
	return nil
}

// truncate shortens s for single-line list output. It counts runes, not
// bytes, so accented text is never cut mid-character.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
