package config

const (
	// EngineMySQL selects the gorm mysql driver and the mysql session storage.
	EngineMySQL = "mysql"
	// EnginePostgres selects the gorm postgres driver and the postgres session storage.
	EnginePostgres = "postgres"
	// EngineSQLite selects the pure go sqlite driver and in-memory sessions.
	EngineSQLite = "sqlite"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string
	SQLitePath string // file path, or ":memory:", used when GormEngine is sqlite
}
