package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/haukened/zswapstat/internal/zswap/common/log"
	"github.com/haukened/zswapstat/internal/zswap/common/system"
	"github.com/haukened/zswapstat/internal/zswap/config"
	"github.com/haukened/zswapstat/internal/zswap/domain"
	"github.com/haukened/zswapstat/internal/zswap/repos/debugfs"
	"github.com/haukened/zswapstat/internal/zswap/services/report"
)

const (
	version = "0.1.0-dev"
	appName = "zswapstat"
)

// Application holds the collaborators one run of the report needs.
type Application struct {
	// Dir is the zswap debug directory.
	Dir string
	// Open enters Dir and returns its contents.
	Open func(dir string) (fs.FS, error)
	// PageSizer converts stored pages to bytes.
	PageSizer system.PageSizer
}

func defaultApplication() *Application {
	return &Application{
		Dir:       debugfs.ZswapDir,
		Open:      debugfs.Open,
		PageSizer: system.HostPageSizer{},
	}
}

func main() {
	os.Exit(execute(defaultApplication(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code.
func execute(app *Application, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fail(stderr, err)
		return 1
	}
	return 0
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"block-size": "block_size",
	"si":         "si",
}

func newRootCmd(app *Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Report zswap compression statistics",
		Long: `zswapstat reads the counters the kernel exposes under ` + debugfs.ZswapDir + `
and prints them together with the compressed size, the uncompressed size and
the space saved by compression.

Reading the debug filesystem usually requires root.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := map[string]any{}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if key, ok := flagKeys[f.Name]; ok {
					overrides[key] = f.Value.String()
				}
			})

			cfg, err := config.Load(overrides)
			if err != nil {
				return err
			}
			return app.Run(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringP("block-size", "B", config.DEFAULT_APP_CONFIG.BlockSize,
		"Unit for scaling calculated values ("+strings.Join(domain.UnitCodes(), ", ")+")")
	cmd.Flags().Bool("si", config.DEFAULT_APP_CONFIG.SI,
		"Use SI units for size scaling (base-10 instead of base-2)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.UsageError{Msg: err.Error(), Err: err}
	})

	return cmd
}

// Run collects the zswap entries and writes the report to w.
func (app *Application) Run(w io.Writer, cfg *config.AppConfig) error {
	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		return fmt.Errorf("logging configuration error: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info(map[string]any{
		"version":    version,
		"env":        cfg.Env,
		"log_level":  cfg.LogLevel,
		"block_size": cfg.BlockSize,
		"si":         cfg.SI,
		"dir":        app.Dir,
	}, "Starting zswapstat")

	fsys, err := app.Open(app.Dir)
	if err != nil {
		return err
	}

	entries, counters, err := debugfs.Collect(fsys)
	if err != nil {
		return err
	}

	pageSize := app.PageSizer.PageSize()
	derived := report.Derive(counters, pageSize)

	log.Debug(map[string]any{
		"entries":      len(entries),
		"page_size":    pageSize,
		"compressed":   derived.Compressed,
		"uncompressed": derived.Uncompressed,
		"savings":      derived.Savings,
	}, "Derived compression figures")

	lines := report.Build(entries, derived, cfg.Unit(), cfg.Base())
	return report.Render(w, lines)
}

// fail prints err as a fatal message, followed by a remedy when one is known.
func fail(w io.Writer, err error) {
	fmt.Fprintf(w, "fatal: %s\n", err)

	var dirErr *domain.DirError
	var usageErr *config.UsageError
	switch {
	case errors.As(err, &dirErr):
		if hint := dirErr.Hint(); hint != "" {
			fmt.Fprintln(w, hint)
		}
	case errors.As(err, &usageErr):
		fmt.Fprintf(w, "run '%s --help' for usage\n", appName)
	}
}
