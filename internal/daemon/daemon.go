package daemon

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"scriptdesk/internal/api"
	"scriptdesk/internal/config"
	"scriptdesk/internal/logging"
	"scriptdesk/internal/prefs"
	"scriptdesk/internal/session"
)

// Daemon coordinates the volatile state core and enforces single-instance
// execution.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	session *session.Session
	store   *prefs.Store
	svc     *api.Service

	lockPath string
	lock     *flock.Flock

	running   atomic.Bool
	startedAt time.Time
}

// Status represents daemon runtime information.
type Status struct {
	Running     bool
	PID         int
	StartedAt   time.Time
	SocketPath  string
	LockPath    string
	PrefsDBPath string
	TaskStats   map[string]int
	Script      api.ScriptSummary
}

// New constructs a daemon with a fresh session. The preference store is
// opened only when enabled in config.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("daemon requires config")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	var store *prefs.Store
	if cfg.Prefs.Enabled {
		opened, err := prefs.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("open preference store: %w", err)
		}
		store = opened
	}

	sess := session.New()
	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		logger:   logging.WithComponent(logger, "daemon"),
		session:  sess,
		store:    store,
		svc:      api.NewService(sess, store, cfg, logger),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the daemon lock and marks the session live.
func (d *Daemon) Start() error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another scriptdesk daemon instance is already running")
	}

	d.startedAt = time.Now().UTC()
	d.running.Store(true)
	d.logger.Info("daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop releases the daemon lock and discards the volatile session state.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	d.session.Reset()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("daemon stopped")
}

// Close stops the daemon and closes the preference store.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// API returns the operation facade backed by this daemon's session.
func (d *Daemon) API() *api.Service {
	return d.svc
}

// Status reports the daemon's runtime information.
func (d *Daemon) Status() Status {
	status := Status{
		Running:    d.running.Load(),
		PID:        os.Getpid(),
		StartedAt:  d.startedAt,
		SocketPath: d.cfg.SocketPath(),
		LockPath:   d.lockPath,
		TaskStats:  d.svc.TaskStats(),
	}
	if d.store != nil {
		status.PrefsDBPath = d.store.Path()
	}
	_, status.Script = d.svc.ShowScript()
	return status
}
