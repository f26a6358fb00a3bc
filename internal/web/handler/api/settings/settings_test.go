package settings

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vidnest/vidnest/internal/auth"
	"github.com/vidnest/vidnest/internal/db/controller/setting"
	"github.com/vidnest/vidnest/internal/db/controller/userrole"
	"github.com/vidnest/vidnest/internal/db/models"
	fiberlogger "github.com/vidnest/vidnest/internal/logger/adapter/fiber"
	"github.com/vidnest/vidnest/internal/roles"
	"github.com/vidnest/vidnest/internal/sitesettings"
	"github.com/vidnest/vidnest/internal/web/handler"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(models.All()...), "failed to migrate test database")

	return db
}

func setupApp(t *testing.T, identity uuid.UUID) (*fiber.App, *gorm.DB, *sitesettings.State) {
	t.Helper()

	db := setupTestDB(t)
	svc := sitesettings.NewService(setting.NewStore(db))
	state := sitesettings.NewState(svc, nil)
	state.Refresh(context.Background())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if identity != uuid.Nil {
			c.Locals(fiberlogger.IdentityLocalKey, identity)
		}
		return c.Next()
	})

	s := &Service{}
	s.Init(app, &handler.Deps{
		Auth:     auth.NewService(roles.NewFetcher(userrole.NewStore(db))),
		Settings: state,
		Service:  svc,
	})

	return app, db, state
}

func grantAdmin(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Create(&models.User{ID: id, Email: "admin@example.com"}).Error)
	require.NoError(t, userrole.Grant(context.Background(), db, id, models.RoleAdmin))

	return id
}

func TestGetAll(t *testing.T) {
	app, _, _ := setupApp(t, uuid.Nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Path, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status   string         `json:"status"`
		Settings map[string]any `json:"settings"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "loaded", body.Status)
	assert.Equal(t, sitesettings.DefaultSiteTitle, body.Settings[sitesettings.KeySiteTitle])
}

func TestGetKey(t *testing.T) {
	app, db, _ := setupApp(t, uuid.Nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Path+"/theme", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	_, err = setting.Set(context.Background(), db, "theme", []byte(`"light"`))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, Path+"/theme", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	b, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"key":"theme","value":"light"}`, string(b))
}

func TestUpdate_RequiresAdmin(t *testing.T) {
	app, _, _ := setupApp(t, uuid.Nil)

	req := httptest.NewRequest(fiber.MethodPut, AdminPath, strings.NewReader(`{"theme":"light"}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	app, _, _ = setupApp(t, uuid.New())
	req = httptest.NewRequest(fiber.MethodPut, AdminPath, strings.NewReader(`{"theme":"light"}`))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUpdate_AsAdmin(t *testing.T) {
	db := setupTestDB(t)
	id := grantAdmin(t, db)

	svc := sitesettings.NewService(setting.NewStore(db))
	state := sitesettings.NewState(svc, nil)
	state.Refresh(context.Background())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(fiberlogger.IdentityLocalKey, id)
		return c.Next()
	})
	(&Service{}).Init(app, &handler.Deps{
		Auth:     auth.NewService(roles.NewFetcher(userrole.NewStore(db))),
		Settings: state,
		Service:  svc,
	})

	req := httptest.NewRequest(fiber.MethodPut, AdminPath,
		strings.NewReader(`{"site_title":"Fresh","theme":"light"}`))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Fresh", state.Snapshot().String(sitesettings.KeySiteTitle))

	row, err := setting.Get(context.Background(), db, "theme")
	require.NoError(t, err)
	assert.JSONEq(t, `"light"`, string(row.Value))

	req = httptest.NewRequest(fiber.MethodPut, AdminPath, strings.NewReader(`["not","an","object"]`))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, RefreshPath, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Fresh", state.Snapshot().String(sitesettings.KeySiteTitle))
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	id := grantAdmin(t, db)
	ctx := context.Background()

	_, err := setting.Set(ctx, db, "promo_banner", []byte(`"spring"`))
	require.NoError(t, err)

	svc := sitesettings.NewService(setting.NewStore(db))
	state := sitesettings.NewState(svc, nil)
	state.Refresh(ctx)
	require.Contains(t, state.Snapshot(), "promo_banner")

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(fiberlogger.IdentityLocalKey, id)
		return c.Next()
	})
	(&Service{}).Init(app, &handler.Deps{
		Auth:     auth.NewService(roles.NewFetcher(userrole.NewStore(db))),
		Settings: state,
		Service:  svc,
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, AdminPath+"/promo_banner", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotContains(t, state.Snapshot(), "promo_banner")

	_, err = setting.Get(ctx, db, "promo_banner")
	require.ErrorIs(t, err, setting.ErrSettingNotFound)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, AdminPath+"/promo_banner", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDelete_RequiresAdmin(t *testing.T) {
	app, _, _ := setupApp(t, uuid.New())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodDelete, AdminPath+"/theme", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDecodeOrdered(t *testing.T) {
	updates, err := decodeOrdered([]byte(`{"b":1,"a":{"x":true},"c":"s"}`))
	require.NoError(t, err)
	require.Len(t, updates, 3)
	assert.Equal(t, "b", updates[0].Key)
	assert.Equal(t, "a", updates[1].Key)
	assert.Equal(t, map[string]any{"x": true}, updates[1].Value)
	assert.Equal(t, "c", updates[2].Key)

	_, err = decodeOrdered([]byte(`"x"`))
	require.ErrorIs(t, err, errNotObject)

	_, err = decodeOrdered([]byte(`{"":1}`))
	require.ErrorIs(t, err, sitesettings.ErrKeyEmpty)

	_, err = decodeOrdered([]byte(`{"a":1`))
	require.Error(t, err)
}
