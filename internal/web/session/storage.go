package session

import (
	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/config"
	"github.com/vidnest/vidnest/internal/db/dsn"
)

// TableName is the table holding session records.
const TableName = "sessions"

// NewStorage returns the session backend for the configured database engine.
// SQLite deployments share no database with the auth platform, so sessions live in memory (nil).
func NewStorage(dbCfg *config.DB) fiber.Storage {
	switch dbCfg.GormEngine {
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Postgres(dbCfg),
			Table:         TableName,
		})
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.MySQL(dbCfg),
			Table:         TableName,
		})
	default:
		log.Warn().Str("engine", dbCfg.GormEngine).Msg("using in-memory session storage")
		return nil
	}
}
