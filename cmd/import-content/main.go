// Package main provides the converter binary: it reads a legacy world or
// player directory and writes one normalized document per zone or player.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/mudconvert/internal/config"
	"github.com/cory-johannsen/mudconvert/internal/importer"
	"github.com/cory-johannsen/mudconvert/internal/importer/legacy"
	"github.com/cory-johannsen/mudconvert/internal/importer/playerfile"
	"github.com/cory-johannsen/mudconvert/internal/importer/schema"
	"github.com/cory-johannsen/mudconvert/internal/legacy/values"
	"github.com/cory-johannsen/mudconvert/internal/lifecycle"
	"github.com/cory-johannsen/mudconvert/internal/observability"
	"github.com/cory-johannsen/mudconvert/internal/scripting"
	"github.com/cory-johannsen/mudconvert/internal/storage/manifest"
	"github.com/cory-johannsen/mudconvert/internal/storage/postgres"
	"github.com/cory-johannsen/mudconvert/internal/storage/sqlite"
)

// zoneList collects repeated -zone flags.
type zoneList []int

func (z *zoneList) String() string {
	parts := make([]string, len(*z))
	for i, n := range *z {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (z *zoneList) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("zone must be a non-negative integer, got %q", s)
	}
	*z = append(*z, n)
	return nil
}

func main() {
	configPath := flag.String("config", "", "optional path to a YAML configuration file")
	format := flag.String("format", "legacy", "input format: legacy (world files) or player (player saves)")
	sourceDir := flag.String("source", "", "input directory; defaults to import.source_dir or import.player_dir")
	outputDir := flag.String("output", "", "output directory for the file sink; defaults to output.dir")
	outputFormat := flag.String("output-format", "", "document format: json or yaml; defaults to output.format")
	sinkKind := flag.String("sink", "", "sink: file, postgres or sqlite; defaults to sink.kind")
	var zones zoneList
	flag.Var(&zones, "zone", "zone number to convert (repeatable); defaults to import.zones")
	flag.Parse()

	v := config.NewViper()
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("reading config: %v", err)
		}
	}
	if *outputDir != "" {
		v.Set("output.dir", *outputDir)
	}
	if *outputFormat != "" {
		v.Set("output.format", *outputFormat)
	}
	if *sinkKind != "" {
		v.Set("sink.kind", *sinkKind)
	}
	if len(zones) > 0 {
		v.Set("import.zones", []int(zones))
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	root := *sourceDir
	if root == "" {
		root = cfg.Import.SourceDir
		if *format == "player" {
			root = cfg.Import.PlayerDir
		}
	}

	lc := lifecycle.New(logger)
	var res importer.Result
	err = lc.Run(context.Background(), func(ctx context.Context) error {
		imp, err := build(ctx, cfg, *format, lc, logger)
		if err != nil {
			return err
		}
		res, err = imp.Run(ctx, root)
		return err
	})
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("run %s: %d units, %d written, %d skipped, %d failed; %s in %s\n",
		res.RunID, res.Units, res.Written, res.Skipped, res.Failed, res.Summary,
		res.Elapsed.Round(time.Millisecond))
	if !res.OK() {
		os.Exit(1)
	}
}

// build wires the source, sink and optional validator, manifest and filter
// described by cfg. Every opened resource is registered with lc.
func build(ctx context.Context, cfg config.Config, format string, lc *lifecycle.Lifecycle, logger *zap.Logger) (*importer.Importer, error) {
	enc, err := importer.ParseEncoding(cfg.Import.Encoding)
	if err != nil {
		return nil, err
	}
	layout, err := values.LayoutByName(cfg.Import.ValueLayout)
	if err != nil {
		return nil, err
	}
	outFmt, err := importer.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	var (
		filter       importer.Filter = importer.KeepAll{}
		filterDigest string
	)
	if cfg.Scripting.Dir != "" {
		f, err := scripting.LoadFilter(cfg.Scripting.Dir, cfg.Scripting.InstructionLimit, logger)
		if err != nil {
			return nil, err
		}
		lc.Add("record filter", lifecycle.FuncResource(func() error { f.Close(); return nil }))
		filter, filterDigest = f, f.Digest()
	}

	var src importer.Source
	switch format {
	case "legacy":
		src = legacy.NewSource(legacy.Options{Encoding: enc, Layout: layout, Zones: cfg.Import.Zones, Filter: filter})
	case "player":
		src = playerfile.NewSource(playerfile.Options{Encoding: enc, Layout: layout, Filter: filter})
	default:
		return nil, fmt.Errorf("unknown input format %q (supported: legacy, player)", format)
	}

	sink, err := openSink(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Add("sink", sink)

	opts := []importer.Option{
		importer.WithLogger(logger),
		importer.WithFormat(outFmt),
		importer.WithWorkers(cfg.Import.Workers),
	}
	if cfg.Output.Validate {
		v, err := schema.New()
		if err != nil {
			return nil, err
		}
		opts = append(opts, importer.WithValidator(v))
	}
	if cfg.Manifest.Enabled {
		m, err := manifest.Open(cfg.Manifest.Path)
		if err != nil {
			return nil, err
		}
		lc.Add("manifest", m)
		// Anything that changes the bytes written must invalidate the manifest.
		settings := strings.Join([]string{
			format, string(enc), layout.Name, string(outFmt), cfg.Sink.Kind,
			strconv.FormatBool(cfg.Output.Compress), filterDigest, strconv.Itoa(cfg.Scripting.InstructionLimit),
		}, "|")
		opts = append(opts, importer.WithManifest(m, settings))
	}

	logger.Info("conversion configured",
		zap.String("format", format),
		zap.String("sink", cfg.Sink.Kind),
		zap.String("output_format", string(outFmt)),
		zap.String("value_layout", layout.Name),
		zap.Int("workers", cfg.Import.Workers),
		zap.Bool("validate", cfg.Output.Validate),
		zap.Bool("manifest", cfg.Manifest.Enabled),
	)
	return importer.New(src, sink, opts...), nil
}

func openSink(ctx context.Context, cfg config.Config, logger *zap.Logger) (importer.Sink, error) {
	switch cfg.Sink.Kind {
	case "postgres":
		dbStart := time.Now()
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := postgres.CheckSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		return &pooledSink{DocumentRepository: postgres.NewDocumentRepository(pool), close: pool.Close}, nil
	case "sqlite":
		return sqlite.Open(cfg.Sink.SQLitePath)
	default:
		return importer.NewFileSink(cfg.Output.Dir, cfg.Output.Compress)
	}
}

// pooledSink closes the pool it was opened with.
type pooledSink struct {
	*postgres.DocumentRepository
	close func()
}

func (s *pooledSink) Close() error {
	s.close()
	return nil
}
