package store

import (
	"context"
	"errors"
)

const DefaultRequestsKey = "requests"

var ErrKeyNotFound = errors.New("key not found")

//go:generate mockery --name=BlobStore --exported --with-expecter

// BlobStore is a string-keyed store of opaque values.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

type FileConfig struct {
	Dir string `mapstructure:"dir" default:"./data"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path" default:"./data/hr-app.db"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host" default:"localhost"`
	User     string `mapstructure:"user" default:"postgres"`
	Password string `mapstructure:"password" default:""`
	Name     string `mapstructure:"name" default:"hr_app"`
	Port     string `mapstructure:"port" default:"5432"`
	SslMode  string `mapstructure:"sslmode" default:"disable"`
	LogLevel string `mapstructure:"log_level" default:"silent"`
}

type Config struct {
	Driver   Driver         `mapstructure:"driver" default:"file" validate:"oneof=memory file sqlite postgres"`
	Key      string         `mapstructure:"key" default:"requests" validate:"required"`
	File     FileConfig     `mapstructure:"file"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}
