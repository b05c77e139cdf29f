package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"iapstore/internal/app"
	"iapstore/internal/config"
)

// RootOptions holds global flags and the wiring built from them.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Flags      config.Config

	wire *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	opts := &RootOptions{}
	return opts.execute(newRootCommand(opts))
}

// NewRootCommand creates the root command for the iapstore CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

// execute runs cmd and releases the wiring on every exit path. Cobra skips
// post-run hooks when RunE fails.
func (o *RootOptions) execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if cerr := o.wire.Close(); err == nil {
		err = cerr
	}
	return err
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "iapstore",
		Short:        "Inspect and edit encrypted in-app-purchase caches",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			cfg.Overlay(opts.Flags)
			if err := cfg.ResolveHome(); err != nil {
				return err
			}
			w, err := app.NewWire(cfg, newLogger(cmd.ErrOrStderr(), opts.Verbose))
			if err != nil {
				return err
			}
			opts.wire = w
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	f.StringVar(&opts.Flags.Home, "home", "", "data dir (default ~/.iapstore)")
	f.StringVar(&opts.Flags.Backend, "backend", "", "storage backend (file|sqlite|memory)")
	f.StringVar(&opts.Flags.Cipher, "cipher", "", "cipher (aes-gcm|chacha20poly1305)")
	f.StringVar(&opts.Flags.CacheID, "cache", "", "cache id (default "+config.DefaultCacheID+")")
	f.StringVarP(&opts.Flags.PrivateKey, "private-key", "k", "", "private key used to derive the cache key")
	f.StringVar(&opts.Flags.DeviceID, "device", "", "device id salt")
	f.StringVar(&opts.Flags.AccountID, "account", "", "account id salt")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(
		offsetCmd(opts),
		entitleCmd(opts),
		pendingCmd(opts),
		inspectCmd(opts),
		fingerprintCmd(opts),
		resetCmd(opts),
	)
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// persisted surfaces a write-through failure from the last mutation.
func (o *RootOptions) persisted() error {
	if err := o.wire.Store.LastPersistError(); err != nil {
		return fmt.Errorf("change kept in memory only: %w", err)
	}
	return nil
}
