package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidnest/vidnest/internal/config"
)

func TestReadWrite(t *testing.T) {
	Init(nil, "", time.Hour)
	assert.Equal(t, DefaultCookieName, CookieName)

	id, err := GenerateSessionID()
	require.NoError(t, err)
	assert.Len(t, id, 64)

	in := Data{UserID: uuid.New(), Email: "viewer@example.com"}
	require.NoError(t, in.Write(id, time.Minute))

	var out Data
	require.NoError(t, out.Read(id))
	assert.Equal(t, in, out)
	assert.True(t, out.Valid())

	var missing Data
	require.ErrorIs(t, missing.Read("unknown"), ErrSessionNotFound)
	assert.False(t, missing.Valid())
}

func TestInitCookieName(t *testing.T) {
	Init(nil, "vidnest_sid", time.Hour)
	t.Cleanup(func() { Init(nil, "", time.Hour) })

	assert.Equal(t, "vidnest_sid", CookieName)
}

func TestNewStorageSQLiteIsMemory(t *testing.T) {
	assert.Nil(t, NewStorage(&config.DB{GormEngine: config.EngineSQLite}))
}
