package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/janisto/widget-playground/internal/app"
	"github.com/janisto/widget-playground/internal/config"
	applog "github.com/janisto/widget-playground/internal/platform/logging"
	"github.com/janisto/widget-playground/internal/storage"
)

// cli carries flags and the opened store between the root and its subcommands.
type cli struct {
	envFile   string
	backend   string
	namespace string
	dbPath    string
	verbose   bool

	store      storage.Store
	closeStore func() error
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "widgetctl",
		Short: "Inspect and edit persisted widget state",
		Long: `widgetctl drives the counter, user-data and note widgets against the
same storage the server uses. It defaults to a local SQLite file.`,
		SilenceUsage:       true,
		PersistentPreRunE:  c.open,
		PersistentPostRunE: c.close,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.StringVar(&c.backend, "backend", config.BackendSQLite, "store backend: memory, firestore, redis or sqlite")
	flags.StringVar(&c.namespace, "namespace", "", "storage namespace (default STORE_NAMESPACE)")
	flags.StringVar(&c.dbPath, "db", "", "SQLite file (default SQLITE_PATH)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log to stdout")

	root.AddCommand(newCounterCmd(c), newUserDataCmd(c), newNoteCmd(c))
	return root
}

func (c *cli) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.envFile)
	if err != nil {
		return err
	}
	cfg.Backend = c.backend
	if c.namespace != "" {
		cfg.Namespace = c.namespace
	}
	if c.dbPath != "" {
		cfg.SQLitePath = c.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := zap.NewNop()
	if c.verbose {
		logger = applog.Logger()
	}
	ctx := applog.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	c.store, c.closeStore, err = app.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	app.LogStore(ctx, cfg)
	return nil
}

func (c *cli) close(_ *cobra.Command, _ []string) error {
	if c.closeStore == nil {
		return nil
	}
	return c.closeStore()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
