// Package main provides the CLI entrypoint for crs-translator.
//
// crs-translator converts bookings between a reservation system's encoding
// and the canonical adapter booking:
//   - map: CRS booking on stdin -> adapter booking (YAML) on stdout
//   - reduce: adapter booking on stdin -> CRS booking on stdout, optionally
//     merged into an existing CRS booking given with -crs
//
// The translated booking is always written. Error diagnostics, such as an
// unreadable traveller association, make the command exit non-zero.
//
// Settings come from the environment (CRS_META, CRS_FORMAT, CRS_LOG_LEVEL)
// and can be overridden with flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"crs-translator/internal/diagnostic"
	"crs-translator/internal/mapper"
	"crs-translator/internal/meta"
	"crs-translator/internal/reducer"
)

// Config holds the CLI settings.
type Config struct {
	Meta     string `env:"CRS_META" env-description:"path of the data definition YAML"`
	Format   string `env:"CRS_FORMAT" env-default:"yaml" env-description:"CRS booking format: yaml, dotted or letters"`
	LogLevel string `env:"CRS_LOG_LEVEL" env-default:"info" env-description:"log level: debug, info, warn, error"`
}

var errUsage = errors.New("usage: crs-translator map|reduce [-meta file] [-format yaml|dotted|letters] [-crs file]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	command := args[0]

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.StringVar(&cfg.Meta, "meta", cfg.Meta, "path of the data definition YAML")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "CRS booking format: yaml, dotted or letters")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	crsPath := fs.String("crs", "", "existing CRS booking to reduce into (reduce only)")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if cfg.Meta == "" {
		return errors.New("missing data definition: set -meta or CRS_META")
	}

	logger := newLogger(cfg.LogLevel)

	def, err := meta.LoadFile(cfg.Meta)
	if err != nil {
		return err
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var diags diagnostic.Diagnostics

	switch command {
	case "map":
		diags, err = runMap(input, cfg.Format, def, logger, stdout)
	case "reduce":
		diags, err = runReduce(input, *crsPath, cfg.Format, def, logger, stdout)
	default:
		return errUsage
	}

	for _, w := range diags.Warnings {
		logger.Debug("diagnostic", "detail", w.String())
	}

	for _, i := range diags.Infos {
		logger.Debug("diagnostic", "detail", i.String())
	}

	return errors.Join(err, diags.Error())
}

func runMap(
	input []byte, format string, def meta.DataDefinition, logger *slog.Logger, stdout io.Writer,
) (diagnostic.Diagnostics, error) {
	crs, err := decodeCrs(input, format)
	if err != nil {
		return diagnostic.Diagnostics{}, err
	}

	adapter, diags := mapper.New(mapper.WithLogger(logger)).MapToAdapterData(crs, def)

	return diags, writeYAML(stdout, adapter)
}

func runReduce(
	input []byte, crsPath, format string, def meta.DataDefinition, logger *slog.Logger, stdout io.Writer,
) (diagnostic.Diagnostics, error) {
	adapter, err := decodeAdapter(input)
	if err != nil {
		return diagnostic.Diagnostics{}, err
	}

	crs, err := loadCrs(crsPath, format)
	if err != nil {
		return diagnostic.Diagnostics{}, err
	}

	diags := reducer.New(reducer.WithLogger(logger)).ReduceIntoCrsData(adapter, crs, def)

	return diags, encodeCrs(stdout, crs, format)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
