package adunit

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vidnest/vidnest/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.AdUnit{}), "failed to migrate test database")

	return db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	units := []models.AdUnit{
		{Name: "player-2", AdFormat: "video", AdPlacement: models.PlacementVideoPlayer, Priority: 2, Status: models.AdStatusActive},
		{Name: "inplayer-1", AdFormat: "image", AdPlacement: models.PlacementInPlayer, Priority: 1, Status: models.AdStatusActive},
		{Name: "sidebar-3", AdFormat: "html", AdPlacement: models.PlacementSidebar, Priority: 3, Status: models.AdStatusActive},
		{Name: "header-0", AdFormat: "link", AdPlacement: models.PlacementHeader, Priority: 0, Status: models.AdStatusActive},
		{Name: "header-off", AdFormat: "link", AdPlacement: models.PlacementHeader, Priority: -1, Status: models.AdStatusInactive},
		{Name: "player-off", AdFormat: "video", AdPlacement: models.PlacementVideoPlayer, Priority: -1, Status: models.AdStatusInactive},
	}

	for i := range units {
		require.NoError(t, Create(context.Background(), db, &units[i]))
	}
}

func names(units []models.AdUnit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Name
	}

	return out
}

func TestListActive(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	ctx := context.Background()

	video, err := ListActive(ctx, db, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"inplayer-1", "player-2"}, names(video))

	general, err := ListActive(ctx, db, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"header-0", "inplayer-1", "sidebar-3"}, names(general))

	_, err = ListActive(ctx, nil, true)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestCreateAssignsID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.ErrorIs(t, Create(ctx, db, nil), ErrAdUnitNil)

	unit := &models.AdUnit{Name: "x", AdFormat: "link", AdCode: "https://example.com", AdPlacement: models.PlacementHeader, Status: models.AdStatusActive}
	require.NoError(t, Create(ctx, db, unit))
	assert.NotEqual(t, uuid.Nil, unit.ID)

	got, err := Get(ctx, db, unit.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name)

	_, err = Get(ctx, db, uuid.New())
	require.ErrorIs(t, err, ErrAdUnitNotFound)
}

func TestListAndSetStatus(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db)
	ctx := context.Background()

	units, total, err := List(ctx, db, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, units, 2)

	general, err := ListActive(ctx, db, false)
	require.NoError(t, err)
	require.NoError(t, SetStatus(ctx, db, general[0].ID, models.AdStatusInactive))

	general, err = ListActive(ctx, db, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"inplayer-1", "sidebar-3"}, names(general))

	require.ErrorIs(t, SetStatus(ctx, db, uuid.New(), models.AdStatusActive), ErrAdUnitNotFound)
}
