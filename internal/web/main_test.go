package web

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vidnest/vidnest/internal/ads"
	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/config"
	"github.com/vidnest/vidnest/internal/db/controller/adunit"
	"github.com/vidnest/vidnest/internal/db/controller/setting"
	"github.com/vidnest/vidnest/internal/db/controller/userrole"
	"github.com/vidnest/vidnest/internal/db/models"
	"github.com/vidnest/vidnest/internal/roles"
	"github.com/vidnest/vidnest/internal/sitesettings"
	"github.com/vidnest/vidnest/internal/web/handler"
	"github.com/vidnest/vidnest/internal/web/session"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	session.Init(nil, "", time.Hour)

	svc := sitesettings.NewService(setting.NewStore(db))
	state := sitesettings.NewState(svc, Shell())
	state.Refresh(context.Background())

	adStore := adunit.NewStore(db)
	cfg := &config.Config{Title: "VidNest"}

	return New(cfg, &handler.Deps{
		DB:       db,
		Auth:     auth.NewService(roles.NewFetcher(userrole.NewStore(db))),
		Settings: state,
		Service:  svc,
		Ads:      ads.NewFetcher(adStore),
		Ingester: ads.NewIngester(adStore),
	}), db
}

func body(t *testing.T, app *fiber.App, method, path string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(b)
}

func TestNew_Routes(t *testing.T) {
	s, _ := newTestService(t)

	status, out := body(t, s.App, fiber.MethodGet, CheckAlivePath)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "OK", out)

	status, out = body(t, s.App, fiber.MethodGet, MetricsPath)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, out, "site_settings_write_failures_total")

	status, out = body(t, s.App, fiber.MethodGet, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, out, "<title>"+sitesettings.DefaultSiteTitle+"</title>")

	status, _ = body(t, s.App, fiber.MethodGet, "/static/css/admin.css")
	assert.Equal(t, fiber.StatusOK, status)

	status, out = body(t, s.App, fiber.MethodGet, "/api/me/roles")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"authenticated":false,"isAdmin":false,"isModerator":false}`, out)

	status, _ = body(t, s.App, fiber.MethodGet, "/ads/slot")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = body(t, s.App, fiber.MethodGet, "/admin/settings")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestNew_AdminSessionRendersTemplates(t *testing.T) {
	s, db := newTestService(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, db.Create(&models.User{ID: id, Email: "admin@example.com"}).Error)
	require.NoError(t, userrole.Grant(ctx, db, id, models.RoleAdmin))
	require.NoError(t, adunit.Create(ctx, db, &models.AdUnit{
		Name: "Banner", AdFormat: "image", AdCode: "/b.png", AdPlacement: models.PlacementHeader,
		Status: models.AdStatusActive, RenderKind: string(ads.KindImage),
	}))

	sid, err := session.GenerateSessionID()
	require.NoError(t, err)
	require.NoError(t, (&session.Data{UserID: id, Email: "admin@example.com"}).Write(sid, time.Minute))

	for _, path := range []string{"/admin/settings", "/admin/ads"} {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		req.Header.Set("Cookie", session.CookieName+"="+sid)

		resp, err := s.App.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)

		b, _ := io.ReadAll(resp.Body)
		assert.True(t, strings.Contains(string(b), "VidNest Admin"), path)
	}

	status, out := body(t, s.App, fiber.MethodGet, "/ads/slot?context=general")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, out, `class="ad-slot"`)
	assert.Contains(t, out, `src="/b.png"`)
}
