// Package importer runs a conversion: it discovers units of legacy input,
// converts them concurrently, validates and serializes the resulting
// documents, and hands them to a Sink.
package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/observability"
)

// Validator checks an encoded document against its output schema.
type Validator interface {
	Validate(kind string, doc []byte) error
}

// Importer orchestrates content import from a Source to a Sink.
type Importer struct {
	source    Source
	sink      Sink
	logger    *zap.Logger
	format    Format
	workers   int
	validator Validator
	manifest  Manifest
	settings  string
	runID     uuid.UUID
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger; the default discards output.
func WithLogger(l *zap.Logger) Option { return func(imp *Importer) { imp.logger = l } }

// WithFormat sets the output format; the default is FormatJSON.
func WithFormat(f Format) Option { return func(imp *Importer) { imp.format = f } }

// WithWorkers bounds the number of units converted at once.
func WithWorkers(n int) Option { return func(imp *Importer) { imp.workers = n } }

// WithValidator enables schema validation of every document before writing.
func WithValidator(v Validator) Option { return func(imp *Importer) { imp.validator = v } }

// WithManifest enables skipping of units whose input is unchanged. settings
// must describe every option that affects output, so a change to any of them
// invalidates the recorded digests.
func WithManifest(m Manifest, settings string) Option {
	return func(imp *Importer) {
		imp.manifest = m
		imp.settings = settings
	}
}

// WithRunID fixes the run id instead of generating one.
func WithRunID(id uuid.UUID) Option { return func(imp *Importer) { imp.runID = id } }

// New constructs an Importer backed by the given Source and Sink.
//
// Precondition: source and sink must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source, sink Sink, opts ...Option) *Importer {
	imp := &Importer{
		source:  source,
		sink:    sink,
		logger:  zap.NewNop(),
		format:  FormatJSON,
		workers: 1,
		runID:   uuid.New(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	if imp.workers < 1 {
		imp.workers = 1
	}
	return imp
}

// Result summarizes a run.
type Result struct {
	RunID   uuid.UUID
	Units   int
	Written int
	Skipped int
	// Failed counts units with at least one fatal error. Their surviving
	// records are still written unless the unit could not be read or failed
	// schema validation.
	Failed  int
	Summary diag.Summary
	Elapsed time.Duration
}

// OK reports whether the run finished without any fatal error.
func (r Result) OK() bool { return r.Failed == 0 && r.Summary.OK() }

type unitOutcome int

const (
	outcomeWritten unitOutcome = iota
	outcomeSkipped
	outcomeRejected
)

type unitResult struct {
	outcome unitOutcome
	report  *diag.Report
	elapsed time.Duration
}

// Run discovers units under root and converts each one.
//
// Units are converted by up to the configured number of workers. Results are
// collected by unit index, so logging and counting happen in discovery order
// regardless of completion order.
//
// Precondition: root must satisfy the source's layout requirements.
// Postcondition: returns the run Result; a non-nil error means the run was
// aborted by discovery, a sink failure or cancellation.
func (imp *Importer) Run(ctx context.Context, root string) (Result, error) {
	start := time.Now()
	res := Result{RunID: imp.runID}

	units, err := imp.source.Discover(root)
	if err != nil {
		return res, fmt.Errorf("discovering units in %s: %w", root, err)
	}
	res.Units = len(units)
	imp.logger.Info("discovered units",
		zap.String("root", root),
		zap.Int("units", len(units)),
		zap.Stringer("run_id", imp.runID),
	)

	results := make([]unitResult, len(units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(imp.workers)
	for i, u := range units {
		g.Go(func() error {
			r, err := imp.convert(gctx, u)
			if err != nil {
				return fmt.Errorf("%s %s: %w", u.Kind, u.Key, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		res.Elapsed = time.Since(start)
		return res, err
	}

	for i, r := range results {
		u := units[i]
		unit := u.Kind + " " + u.Key
		observability.LogReport(imp.logger, unit, r.report)
		res.Summary.Add(r.report)
		if r.report != nil && r.report.HasFatal() {
			res.Failed++
		}
		switch r.outcome {
		case outcomeWritten:
			res.Written++
			imp.logger.Debug("converted unit", zap.String("unit", unit), zap.Duration("elapsed", r.elapsed))
		case outcomeSkipped:
			res.Skipped++
			imp.logger.Debug("unchanged unit skipped", zap.String("unit", unit))
		}
	}

	res.Elapsed = time.Since(start)
	imp.logger.Info("run complete",
		zap.Stringer("run_id", imp.runID),
		zap.Int("written", res.Written),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed),
		zap.Int("warnings", res.Summary.Warnings),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// convert handles one unit end to end. Problems local to the unit are
// recorded on its report; only sink and cancellation errors are returned.
func (imp *Importer) convert(ctx context.Context, u Unit) (unitResult, error) {
	t0 := time.Now()
	if err := ctx.Err(); err != nil {
		return unitResult{}, err
	}

	var digest string
	if imp.manifest != nil {
		d, err := InputDigest(u, imp.settings)
		if err != nil {
			return imp.reject(u, err), nil
		}
		digest = d
		prev, ok, err := imp.manifest.Lookup(ctx, u.Kind, u.Key)
		if err != nil {
			return unitResult{}, fmt.Errorf("reading manifest: %w", err)
		}
		if ok && prev.InputDigest == digest {
			return unitResult{outcome: outcomeSkipped, report: diag.NewReport(unitFile(u))}, nil
		}
	}

	doc, err := imp.source.Convert(ctx, u)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return unitResult{}, err
		}
		return imp.reject(u, err), nil
	}
	if doc.Report == nil {
		doc.Report = diag.NewReport(unitFile(u))
	}

	enc, err := Encode(doc, imp.format, imp.runID)
	if err != nil {
		doc.Report.Fatal(err)
		return unitResult{outcome: outcomeRejected, report: doc.Report}, nil
	}
	if imp.validator != nil {
		if err := imp.validator.Validate(doc.Kind, enc.JSON); err != nil {
			doc.Report.Fatal(fmt.Errorf("%s %s failed schema validation: %w", doc.Kind, doc.Key, err))
			return unitResult{outcome: outcomeRejected, report: doc.Report}, nil
		}
	}
	if err := imp.sink.Write(ctx, enc); err != nil {
		return unitResult{}, fmt.Errorf("writing: %w", err)
	}

	// A unit with fatal errors is written but not recorded, so the next
	// run retries it.
	if imp.manifest != nil && !doc.Report.HasFatal() {
		entry := ManifestEntry{
			InputDigest:  digest,
			OutputDigest: enc.Digest,
			RunID:        imp.runID,
			UpdatedAt:    time.Now().UTC(),
		}
		if err := imp.manifest.Record(ctx, u.Kind, u.Key, entry); err != nil {
			return unitResult{}, fmt.Errorf("recording manifest entry: %w", err)
		}
	}
	return unitResult{outcome: outcomeWritten, report: doc.Report, elapsed: time.Since(t0)}, nil
}

func (imp *Importer) reject(u Unit, err error) unitResult {
	rep := diag.NewReport(unitFile(u))
	rep.Fatal(err)
	return unitResult{outcome: outcomeRejected, report: rep}
}

func unitFile(u Unit) string {
	if len(u.Files) > 0 {
		return u.Files[0]
	}
	return u.Key
}
