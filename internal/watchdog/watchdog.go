// Package watchdog implements the best-effort liveness and session recovery
// heuristics for clients that silently lose their rendering surface or their
// authentication state.
package watchdog

import (
	"context"
	"log/slog"
	"time"

	"laundrify/config"
	"laundrify/internal/errors"
	"laundrify/internal/util"

	"go.uber.org/fx"
)

// Probe decides whether the client surface is still alive. Implementations
// are heuristic predicates; an error means "looks dead".
type Probe interface {
	Name() string
	Check(ctx context.Context) error
}

// RecoveryAction is one rung of the escalation ladder.
type RecoveryAction int

const (
	// ActionSoftRefresh asks the client to re-render without losing state.
	ActionSoftRefresh RecoveryAction = iota
	// ActionCachePurge clears cached assets and derived state.
	ActionCachePurge
	// ActionReload forces a full reload. A state snapshot is taken first.
	ActionReload
)

// String returns the action name for logs.
func (a RecoveryAction) String() string {
	switch a {
	case ActionSoftRefresh:
		return "soft_refresh"
	case ActionCachePurge:
		return "cache_purge"
	case ActionReload:
		return "reload"
	default:
		return "unknown"
	}
}

// ladder is the fixed escalation order.
var ladder = []RecoveryAction{ActionSoftRefresh, ActionCachePurge, ActionReload}

// Recoverer executes recovery actions on the client surface.
type Recoverer interface {
	Recover(ctx context.Context, action RecoveryAction) error
}

// SnapshotFunc persists a state snapshot before destructive recovery.
type SnapshotFunc func(ctx context.Context) error

// Watchdog polls the probe and walks the recovery ladder after enough
// consecutive failures. A successful probe resets both counters.
type Watchdog struct {
	probe     Probe
	recoverer Recoverer
	snapshot  SnapshotFunc
	interval  time.Duration
	threshold int
	logger    *slog.Logger

	failures  int
	rung      int
	downSince time.Time
}

// Params holds dependencies for the watchdog, injected by Fx
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Probe     Probe        `optional:"true"`
	Recoverer Recoverer    `optional:"true"`
	Snapshot  SnapshotFunc `optional:"true"`
}

// New creates a watchdog from configuration. Returns nil when disabled or
// when no probe is wired.
func New(params Params) *Watchdog {
	cfg := params.Config.Watchdog
	if !cfg.Enabled || params.Probe == nil || params.Recoverer == nil {
		return nil
	}

	return &Watchdog{
		probe:     params.Probe,
		recoverer: params.Recoverer,
		snapshot:  params.Snapshot,
		interval:  cfg.Interval,
		threshold: cfg.FailureThreshold,
		logger:    params.Logger,
	}
}

// NewWatchdog creates a watchdog with explicit dependencies.
func NewWatchdog(probe Probe, recoverer Recoverer, snapshot SnapshotFunc, interval time.Duration, threshold int, logger *slog.Logger) *Watchdog {
	return &Watchdog{
		probe:     probe,
		recoverer: recoverer,
		snapshot:  snapshot,
		interval:  interval,
		threshold: threshold,
		logger:    logger,
	}
}

// Run polls until ctx is done.
func (w *Watchdog) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick runs one probe cycle. Exposed for timer-free tests.
func (w *Watchdog) Tick(ctx context.Context) {
	if err := w.probe.Check(ctx); err == nil {
		if w.failures > 0 {
			w.logger.Info("liveness probe recovered",
				slog.String("probe", w.probe.Name()),
				slog.String("downtime", util.FormatDuration(time.Since(w.downSince))),
			)
		}
		w.failures = 0
		w.rung = 0
		w.downSince = time.Time{}

		return
	}

	if w.downSince.IsZero() {
		w.downSince = time.Now()
	}
	w.failures++
	if w.failures < w.threshold {
		return
	}

	action := ladder[w.rung]
	w.logger.Warn("liveness probe failing, attempting recovery",
		slog.String("probe", w.probe.Name()),
		slog.Int("failures", w.failures),
		slog.String("action", action.String()),
	)

	if action == ActionReload && w.snapshot != nil {
		if err := w.snapshot(ctx); err != nil {
			w.logger.Error("state snapshot before reload failed",
				slog.String("error", err.Error()),
			)
		}
	}

	if err := w.recoverer.Recover(ctx, action); err != nil {
		w.logger.Error("recovery action failed",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}

	// Escalate on the next trip through, stay on the last rung once there.
	if w.rung < len(ladder)-1 {
		w.rung++
	}
	w.failures = 0
}

// ErrRestoreSuppressed is returned while an intentional logout suppresses
// session restoration.
var ErrRestoreSuppressed = errors.New("session restore suppressed after logout")

// Session is a restorable authentication snapshot.
type Session struct {
	Token   string    `json:"token"`
	UserID  string    `json:"user_id"`
	SavedAt time.Time `json:"saved_at"`
}

// BackupSource restores a session from one backup location. Returning a nil
// session without error means the source holds nothing.
type BackupSource interface {
	Name() string
	Restore(ctx context.Context) (*Session, error)
}

// SessionGuard restores dropped sessions from a cascade of backup locations,
// honoring a suppression window after intentional logout so a deliberate
// sign-out is not immediately undone.
type SessionGuard struct {
	sources []BackupSource
	window  time.Duration
	logger  *slog.Logger

	suppressUntil time.Time
	now           func() time.Time
}

// NewSessionGuard creates a guard over the given backup cascade.
func NewSessionGuard(sources []BackupSource, window time.Duration, logger *slog.Logger) *SessionGuard {
	return &SessionGuard{
		sources: sources,
		window:  window,
		logger:  logger,
		now:     time.Now,
	}
}

// NoteLogout starts the suppression window.
func (g *SessionGuard) NoteLogout() {
	g.suppressUntil = g.now().Add(g.window)
}

// Restore walks the backup cascade and returns the first session found.
func (g *SessionGuard) Restore(ctx context.Context) (*Session, error) {
	if g.now().Before(g.suppressUntil) {
		return nil, ErrRestoreSuppressed
	}

	for _, source := range g.sources {
		session, err := source.Restore(ctx)
		if err != nil {
			g.logger.Warn("session backup source failed",
				slog.String("source", source.Name()),
				slog.String("error", err.Error()),
			)

			continue
		}
		if session == nil || session.Token == "" {
			continue
		}

		g.logger.Info("session restored",
			slog.String("source", source.Name()),
		)

		return session, nil
	}

	return nil, errors.New("no session backup available")
}
