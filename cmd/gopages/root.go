package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/gopages"
)

type rootOptions struct {
	configPath string
	itemsPath  string
	target     string
	factor     int
	route      string
	debug      bool
}

// newRootCmd creates the gopages command.
func newRootCmd() *cobra.Command {
	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:   "gopages",
		Short: "Compute page records for an ordered list of items",
		Long: `Reads a JSON array of items and prints one output record per page,
with first/prev/curr/next/last links and the index range of the page.

Flags override the values loaded from --config.`,
		Example: `  # Paginate using a config file
  gopages --config pages.yaml --items notes.json

  # Paginate without a config file
  gopages --items notes.json --target notes --factor 5 --route "notes/{n}/index.html"`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&opts.itemsPath, "items", "i", "", "path to a JSON array of items (\"-\" for stdin)")
	flags.StringVar(&opts.target, "target", "", "name of the paginated collection")
	flags.IntVar(&opts.factor, "factor", gopages.DefaultFactor, "maximum number of items per page")
	flags.StringVar(&opts.route, "route", "", "output path template containing "+gopages.RoutePlaceholder)
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("items")

	return cmd
}

func runRoot(cmd *cobra.Command, opts rootOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.debug)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	paginator, err := cfg.Paginator()
	if err != nil {
		return err
	}
	paginator = paginator.WithLogger(logger)

	items, err := readItems(cmd.InOrStdin(), opts.itemsPath)
	if err != nil {
		return err
	}

	var outputs gopages.Outputs
	deps := gopages.Deps{cfg.Target: gopages.Collection[json.RawMessage](items)}
	if err = paginator.Handle(deps, &outputs); err != nil {
		return err
	}

	logger.Info().
		Str("target", cfg.Target).
		Int("items", len(items)).
		Int("pages", len(outputs)).
		Msg("pagination complete")

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err = enc.Encode(outputsOrEmpty(outputs)); err != nil {
		return fmt.Errorf("cannot write outputs: %w", err)
	}

	return nil
}

// resolveConfig loads --config when given and applies explicitly set flags
// on top of it.
func resolveConfig(cmd *cobra.Command, opts rootOptions) (gopages.Config, error) {
	cfg := gopages.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = gopages.ReadConfigFile(opts.configPath); err != nil {
			return gopages.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("target") {
		cfg.Target = opts.target
	}
	if flags.Changed("factor") {
		cfg.Factor = opts.factor
	}
	if flags.Changed("route") {
		cfg.Route = opts.route
	}

	return cfg, nil
}

func readItems(stdin io.Reader, path string) ([]json.RawMessage, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open items: %w", err)
		}
		defer f.Close()
		r = f
	}

	var items []json.RawMessage
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("cannot decode items: %w", err)
	}

	return items, nil
}

func outputsOrEmpty(outputs gopages.Outputs) gopages.Outputs {
	if outputs == nil {
		return gopages.Outputs{}
	}

	return outputs
}

// newLogger returns a console logger writing to w. Debug level is enabled
// by --debug, info otherwise.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("component", "cli").
		Logger()
}
