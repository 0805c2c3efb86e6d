package daemon

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	storagemysql "github.com/gofiber/storage/mysql/v2"
	storagepostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/qrkitchen/qr-kitchen/internal/config"
	"github.com/qrkitchen/qr-kitchen/internal/db/dsn"
	"github.com/qrkitchen/qr-kitchen/internal/db/storage"
)

const slowQueryThreshold = 500 * time.Millisecond

// Dialector picks the gorm driver of the configured engine.
func Dialector(db *config.DB) (gorm.Dialector, error) {
	switch db.GormEngine {
	case config.EngineSQLite, "":
		return sqlite.Open(db.Path), nil
	case config.EngineMySQL:
		return gormmysql.Open(dsn.MySQL(db)), nil
	case config.EnginePostgres:
		return gormpostgres.Open(dsn.Postgres(db)), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, db.GormEngine)
	}
}

// OpenDB connects the application database. Queries are logged through zerolog.
func OpenDB(db *config.DB) (*gorm.DB, error) {
	dialector, err := Dialector(db)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(&log.Logger, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	return conn, nil
}

// OpenStorage creates the key/value store behind history, session snapshots
// and client ids.
func OpenStorage(cfg *config.Config, db *gorm.DB) (store fiber.Storage, err error) {
	// the gofiber storage drivers panic when they cannot reach their database
	defer func() {
		if r := recover(); r != nil {
			store, err = nil, fmt.Errorf("failed to open %s storage: %v", cfg.Store.Backend, r)
		}
	}()

	switch cfg.Store.Backend {
	case config.BackendDB, "":
		s, serr := storage.New(db)
		if serr != nil {
			return nil, errors.Wrap(serr, "failed to migrate storage table")
		}

		return s, nil
	case config.EngineMySQL:
		return storagemysql.New(storagemysql.Config{
			ConnectionURI: dsn.MySQL(&cfg.DB),
			Table:         cfg.Store.Table,
		}), nil
	case config.EnginePostgres:
		return storagepostgres.New(storagepostgres.Config{
			ConnectionURI: dsn.Postgres(&cfg.DB),
			Table:         cfg.Store.Table,
		}), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownStoreBackend, cfg.Store.Backend)
	}
}
