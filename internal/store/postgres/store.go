package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/EricWal/hr-app/internal/store"
	"github.com/EricWal/hr-app/internal/store/postgres/model"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// NewStore wraps an existing connection. The blobs table must exist.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects using cfg and migrates the blobs table.
func Open(cfg store.PostgresConfig) (*Store, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SslMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(logLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := db.AutoMigrate(&model.Blob{}); err != nil {
		return nil, fmt.Errorf("migrating blobs table: %w", err)
	}
	return NewStore(db), nil
}

func logLevel(level string) gormLogger.LogLevel {
	switch strings.ToLower(level) {
	case "error":
		return gormLogger.Error
	case "warn":
		return gormLogger.Warn
	case "info":
		return gormLogger.Info
	}
	return gormLogger.Silent
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var m model.Blob
	if err := s.db.WithContext(ctx).Where(`"name" = ?`, key).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(m.Data), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	m := &model.Blob{Name: key, Data: datatypes.JSON(value)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(m).Error
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
