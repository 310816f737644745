package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/config"
	"github.com/five82/taqvim/internal/locale"
	"github.com/five82/taqvim/internal/logging"
	"github.com/five82/taqvim/internal/prefs"
	"github.com/five82/taqvim/internal/server"
	"github.com/five82/taqvim/internal/state"
	"github.com/five82/taqvim/internal/ui"
)

// Options configure a taqvim run.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses the config's prefs_file
	Language   string // overrides config and prefs when set
	Listen     string // overrides the config's listen address for Serve
	Verbose    bool

	// Month the browser opens on. Zero uses the last viewed month, then today.
	Year  int
	Month int
}

// Env holds everything a command needs after startup.
type Env struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Localizer *locale.Localizer
	Logger    *zap.Logger
	Clock     age.Clock
}

// Setup loads config and prefs, resolves the language and builds the logger.
// With logToFile the logger writes to the configured log file only, which the
// terminal UI needs since it owns the screen.
func Setup(opts Options, logToFile bool) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = cfg.PrefsFile
	}
	userPrefs := prefs.Load(prefsPath)
	if _, err := os.Stat(prefsPath); err != nil {
		// First run: the config's theme seeds the prefs.
		userPrefs.Theme = cfg.Theme
	}

	lang := firstNonEmpty(opts.Language, userPrefs.Language, cfg.Language)
	loc, err := locale.New(lang)
	if err != nil {
		return nil, fmt.Errorf("init locale: %w", err)
	}

	logOpts := logging.Options{Level: cfg.LogLevel, Verbose: opts.Verbose}
	if logToFile {
		logOpts.File = cfg.LogFile
	}
	logger, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return &Env{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Localizer: loc,
		Logger:    logger,
		Clock:     age.RealClock{},
	}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Logger.Sync()
}

// Run boots the calendar browser until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts, true)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	// Populate the store before the UI draws its first frame.
	store.Update(env.Clock.Now())
	done := StartPoller(ctx, store, env.Clock, env.Config.Refresh, logging.WithComponent(env.Logger, "poller"))

	env.Logger.Info("starting calendar browser",
		zap.String("language", env.Localizer.Language()),
		zap.String("theme", env.Prefs.Theme),
	)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Localizer: env.Localizer,
		Logger:    logging.WithComponent(env.Logger, "ui"),
		Clock:     env.Clock,
		Prefs:     env.Prefs,
		PrefsPath: env.PrefsPath,
		Year:      opts.Year,
		Month:     opts.Month,
		Refresh:   env.Config.Refresh,
	})
	cancel()
	<-done
	return err
}

// Serve runs the HTTP feed until ctx is cancelled.
func Serve(ctx context.Context, opts Options) error {
	env, err := Setup(opts, false)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	done := StartPoller(ctx, store, env.Clock, env.Config.Refresh, logging.WithComponent(env.Logger, "poller"))

	srv, err := server.New(server.Options{
		Addr:      firstNonEmpty(opts.Listen, env.Config.Listen),
		Store:     store,
		Localizer: env.Localizer,
		Logger:    logging.WithComponent(env.Logger, "server"),
		Clock:     env.Clock,
	})
	if err != nil {
		cancel()
		<-done
		return fmt.Errorf("init server: %w", err)
	}

	err = srv.Start(ctx)
	cancel()
	<-done
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
