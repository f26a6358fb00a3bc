// Package db opens the gorm connection for the configured engine and migrates the schema.
package db

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vidnest/vidnest/internal/config"
	"github.com/vidnest/vidnest/internal/db/dsn"
	"github.com/vidnest/vidnest/internal/db/models"
	"github.com/vidnest/vidnest/internal/logger/adapter/stdlogger"
)

const slowQueryThreshold = 500 * time.Millisecond

// Dialector returns the gorm dialector for the configured engine.
func Dialector(dbCfg *config.DB) (gorm.Dialector, error) {
	return DialectorFor(dbCfg.GormEngine, dsn.Create(dbCfg))
}

// DialectorFor returns the gorm dialector for engine connecting to a ready made DSN.
func DialectorFor(engine, source string) (gorm.Dialector, error) {
	switch engine {
	case config.EngineMySQL:
		return gormmysql.Open(source), nil
	case config.EnginePostgres:
		return gormpostgres.Open(source), nil
	case config.EngineSQLite, "":
		return sqlite.Open(source), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, engine)
	}
}

// Open connects to the configured database and logs gorm output through zerolog.
func Open(dbCfg *config.DB) (*gorm.DB, error) {
	return OpenDSN(dbCfg.GormEngine, dsn.Create(dbCfg))
}

// OpenDSN connects to engine through source.
func OpenDSN(engine, source string) (*gorm.DB, error) {
	dialector, err := DialectorFor(engine, source)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			stdlogger.NewWithPrintLevel(zerolog.DebugLevel),
			gormlogger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", engine)
	}

	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
