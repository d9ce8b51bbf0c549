package roundtrip

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/matzehuels/roundtrip/pkg/observability"
	"github.com/matzehuels/roundtrip/pkg/record"
	"github.com/matzehuels/roundtrip/pkg/store"
)

// Result summarizes one round trip.
type Result struct {
	ID     string // random run identifier, also attached to log lines
	Path   string
	Format string

	// Default is the default record generated at the start of the run. It is
	// kept even when a loaded record replaced it.
	Default *record.Record

	// Record is the record that was serialized: the loaded one if Loaded,
	// otherwise Default.
	Record  *record.Record
	Loaded  bool
	LoadErr error

	Written []byte
	SaveErr error

	// Reloaded is nil if the reload failed or the file was empty.
	Reloaded  *record.Record
	ReloadErr error

	// Consistent reports whether Reloaded equals Record at the codec's
	// timestamp precision.
	Consistent bool

	Duration time.Duration
}

// Failed reports whether any stage failed.
func (r *Result) Failed() bool {
	return r.LoadErr != nil || r.SaveErr != nil || r.ReloadErr != nil
}

// Runner performs round trips against a single store.
//
// The Runner holds no state between calls other than its collaborators.
type Runner struct {
	Store    *store.Store
	Reporter Reporter
	Logger   *log.Logger

	// Now stamps default records. Defaults to time.Now.
	Now func() time.Time
}

// NewRunner creates a runner.
// If s is nil, a YAML store on the OS filesystem is used.
// If rep is nil, reports are printed as plain text to stdout.
// If logger is nil, log.Default() is used.
func NewRunner(s *store.Store, rep Reporter, logger *log.Logger) *Runner {
	if s == nil {
		s = store.NewOS(nil)
	}
	if rep == nil {
		rep = NewTextReporter(os.Stdout)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Store:    s,
		Reporter: rep,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Execute validates opts, builds a store on fs, and runs a round trip.
// The returned error is non-nil only for invalid options; stage failures are
// reported and recorded in the Result.
func Execute(ctx context.Context, fs afero.Fs, opts Options, rep Reporter, logger *log.Logger) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	s, err := opts.NewStore(fs)
	if err != nil {
		return nil, err
	}
	return NewRunner(s, rep, logger).Run(ctx, opts.Path, opts.Fresh), nil
}

// Run performs load-or-default, serialize and reload on path. If fresh is
// set the load stage is skipped and the default record is written.
func (r *Runner) Run(ctx context.Context, path string, fresh bool) *Result {
	start := time.Now()
	res := &Result{
		ID:     uuid.NewString(),
		Path:   path,
		Format: r.Store.Codec().Name(),
	}
	logger := r.Logger.With("run", res.ID[:8])
	ctx = withRunLogger(ctx, logger)

	logger.Debug("starting round trip", "path", path, "format", res.Format, "fresh", fresh)

	res.Default = record.Default(r.now())
	if fresh {
		if r.Store.Exists(path) {
			logger.Debug("ignoring existing file", "path", path)
		}
		res.Record = res.Default.Clone()
		r.Reporter.Defaulted(path, res.Record, nil)
	} else {
		res.Record, res.Loaded, res.LoadErr = r.loadOrDefault(ctx, path, res.Default)
	}

	res.Written, res.SaveErr = r.Serialize(ctx, res.Record, path)

	res.Reloaded, res.ReloadErr = r.reload(ctx, path)
	res.Consistent = res.Reloaded != nil && res.Record.Equal(res.Reloaded, r.Store.Codec().Precision())
	res.Duration = time.Since(start)

	if res.Reloaded != nil && !res.Consistent {
		logger.Warn("reloaded record differs from written record", "written", res.Record, "reloaded", res.Reloaded)
	}
	logger.Info("round trip finished",
		"path", path,
		"loaded", res.Loaded,
		"consistent", res.Consistent,
		"duration", res.Duration.Round(time.Millisecond))
	observability.RoundTrip().OnRunComplete(ctx, path, res.Consistent, res.Duration)

	return res
}

// LoadOrDefault parses path and returns its record. If the file is missing,
// empty, or does not parse, the default record stamped with the runner's
// clock is returned instead and the failure is reported. The result is never
// nil.
func (r *Runner) LoadOrDefault(ctx context.Context, path string) *record.Record {
	rec, _, _ := r.loadOrDefault(ctx, path, record.Default(r.now()))
	return rec
}

func (r *Runner) loadOrDefault(ctx context.Context, path string, def *record.Record) (*record.Record, bool, error) {
	logger := runLogger(ctx, r.Logger)

	rec, err := r.load(ctx, observability.StageLoad, path)
	switch {
	case err != nil:
		r.Reporter.Failed(observability.StageLoad, path, err)
	case rec == nil:
		r.Reporter.Empty(observability.StageLoad, path)
	default:
		logger.Debug("loaded record replaces default", "path", path, "discarded", def.A.Format(time.RFC3339Nano))
		r.Reporter.Loaded(path, rec)
		return rec, true, nil
	}

	out := def.Clone()
	r.Reporter.Defaulted(path, out, err)
	return out, false, err
}

// Serialize writes rec to path, replacing the file's content, and returns
// the bytes written. Failures are reported as well as returned.
func (r *Runner) Serialize(ctx context.Context, rec *record.Record, path string) ([]byte, error) {
	logger := runLogger(ctx, r.Logger)
	hooks := observability.RoundTrip()
	hooks.OnStageStart(ctx, observability.StageSave, path)
	start := time.Now()

	data, err := r.Store.Save(path, rec)
	hooks.OnStageComplete(ctx, observability.StageSave, path, len(data), time.Since(start), err)
	if err != nil {
		logger.Debug("save failed", "path", path, "err", err)
		r.Reporter.Failed(observability.StageSave, path, err)
		return nil, err
	}

	logger.Debug("saved record", "path", path, "bytes", len(data))
	r.Reporter.Written(path, data)
	return data, nil
}

// Reload parses path again. It returns nil, after reporting, if the file
// cannot be read, does not parse, or is empty.
func (r *Runner) Reload(ctx context.Context, path string) *record.Record {
	rec, _ := r.reload(ctx, path)
	return rec
}

func (r *Runner) reload(ctx context.Context, path string) (*record.Record, error) {
	rec, err := r.load(ctx, observability.StageReload, path)
	switch {
	case err != nil:
		r.Reporter.Failed(observability.StageReload, path, err)
		return nil, err
	case rec == nil:
		r.Reporter.Empty(observability.StageReload, path)
		return nil, nil
	}
	r.Reporter.Reloaded(path, rec)
	return rec, nil
}

// load reads path through the store and fires stage hooks around it.
func (r *Runner) load(ctx context.Context, stage, path string) (*record.Record, error) {
	logger := runLogger(ctx, r.Logger)
	hooks := observability.RoundTrip()
	hooks.OnStageStart(ctx, stage, path)
	start := time.Now()

	rec, err := r.Store.Load(path)
	hooks.OnStageComplete(ctx, stage, path, 0, time.Since(start), err)
	if err != nil {
		logger.Debug(stage+" failed", "path", path, "err", err)
		return nil, err
	}
	return rec, nil
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// runLoggerKey is the context key for the per-run logger.
type runLoggerKey struct{}

func withRunLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, runLoggerKey{}, l)
}

// runLogger returns the per-run logger from ctx, or fallback when the
// stage is called outside Run.
func runLogger(ctx context.Context, fallback *log.Logger) *log.Logger {
	if l, ok := ctx.Value(runLoggerKey{}).(*log.Logger); ok {
		return l
	}
	return fallback
}
