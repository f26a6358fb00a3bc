// Package daemon wires the database, settings state and web service together.
package daemon

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/vidnest/vidnest/internal/ads"
	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/config"
	"github.com/vidnest/vidnest/internal/db"
	"github.com/vidnest/vidnest/internal/db/controller/adunit"
	"github.com/vidnest/vidnest/internal/db/controller/setting"
	"github.com/vidnest/vidnest/internal/db/controller/userrole"
	"github.com/vidnest/vidnest/internal/roles"
	"github.com/vidnest/vidnest/internal/sitesettings"
	"github.com/vidnest/vidnest/internal/web"
	"github.com/vidnest/vidnest/internal/web/handler"
	"github.com/vidnest/vidnest/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	state      *sitesettings.State
	webService *web.Service
	stopWatch  func()
}

// Start serves http until a termination signal arrives.
func (d *Daemon) Start() error {
	defer d.stopWatch()

	errCh := make(chan error, 1)

	go func() {
		errCh <- d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
	}()

	d.webService.WaitShutdown()

	return <-errCh
}

// State returns the application settings state.
func (d *Daemon) State() *sitesettings.State {
	return d.state
}

// New creates a new Daemon instance with the provided configuration.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, config.ErrConfigNil
	}

	conn, err := db.Open(&cfg.DB)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(conn); err != nil {
		return nil, err
	}

	if cfg.DevMode {
		if err = seed(ctx, conn); err != nil {
			log.Warn().Err(err).Msg("failed to seed sample data")
		}
	}

	// Initialize fiber session store
	session.Init(session.NewStorage(&cfg.DB), cfg.Webserver.Session.CookieName, cfg.Webserver.Session.ExpiryTime)

	settingsService := sitesettings.NewService(setting.NewStore(conn))
	state := sitesettings.NewState(settingsService, web.Shell())
	state.Refresh(ctx)

	adStore := adunit.NewStore(conn)

	webService := web.New(cfg, &handler.Deps{
		DB:       conn,
		Auth:     auth.NewService(roles.NewFetcher(userrole.NewStore(conn))),
		Settings: state,
		Service:  settingsService,
		Ads:      ads.NewFetcher(adStore),
		Ingester: ads.NewIngester(adStore),
	})

	return &Daemon{
		cfg:        cfg,
		db:         conn,
		state:      state,
		webService: webService,
		stopWatch:  watchSettings(state),
	}, nil
}

// watchSettings logs every settings change until the returned func is called.
func watchSettings(state *sitesettings.State) func() {
	ch, cancel := state.Subscribe()

	go func() {
		for snap := range ch {
			log.Info().
				Str("site_name", snap.String(sitesettings.KeySiteName)).
				Int("keys", len(snap)).
				Msg("site settings changed")
		}
	}()

	return cancel
}
