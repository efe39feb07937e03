package store

import (
	"context"
	"fmt"
	"time"

	"github.com/oliverisaac/jotter/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore implements NoteStore and UserStore on any GORM dialect.
type GormStore struct {
	db *gorm.DB
}

var (
	_ NoteStore = (*GormStore)(nil)
	_ UserStore = (*GormStore)(nil)
)

func dialector(cfg types.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case types.DBDriverSQLite, "":
		return sqlite.Open(cfg.DBPath), nil
	case types.DBDriverPostgres:
		return postgres.Open(cfg.DBDSN), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
}

// Open connects to the database named by cfg.
func Open(cfg types.Config) (*GormStore, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Opening %s database", d.Name())
	db, err := gorm.Open(d, &gorm.Config{
		Logger: newLogger(logrus.StandardLogger()),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s database", d.Name())
	}
	return New(db), nil
}

// newLogger sends GORM warnings to w. Lookups that find nothing are expected
// and are not logged.
func newLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the users and notes tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	gormTables := []any{
		&types.User{},
		&types.Note{},
	}
	for _, t := range gormTables {
		if err := s.db.WithContext(ctx).AutoMigrate(t); err != nil {
			return errors.Wrapf(err, "migrating %T", t)
		}
	}
	return nil
}

// Ping checks the underlying connection.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "getting sql.DB")
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
