package app

import (
	"context"
	"fmt"
	"time"

	"github.com/EricWal/hr-app/core/auth"
	"github.com/EricWal/hr-app/core/report"
	"github.com/EricWal/hr-app/core/request"
	"github.com/EricWal/hr-app/internal/store"
	"github.com/EricWal/hr-app/internal/store/file"
	"github.com/EricWal/hr-app/internal/store/memory"
	"github.com/EricWal/hr-app/internal/store/postgres"
	"github.com/EricWal/hr-app/internal/store/sqlite"
	"github.com/EricWal/hr-app/pkg/audit"
	"github.com/EricWal/hr-app/pkg/log"
	"github.com/go-playground/validator/v10"
)

type ServiceDeps struct {
	Config    *Config
	Logger    log.Logger
	Validator *validator.Validate

	// Blobs overrides the configured store driver.
	Blobs store.BlobStore
	Now   func() time.Time
}

type Services struct {
	RequestStore   *store.RequestStore
	RequestService *request.Service
	AuthService    *auth.Service
	ReportService  *report.Service

	blobs store.BlobStore
}

func (s *Services) Close() error {
	return s.blobs.Close()
}

// InitServices opens the configured store, loads the persisted requests and
// wires the services on top.
func InitServices(ctx context.Context, deps ServiceDeps) (*Services, error) {
	cfg := deps.Config
	blobs := deps.Blobs
	if blobs == nil {
		var err error
		if blobs, err = OpenBlobStore(ctx, cfg.Store); err != nil {
			return nil, err
		}
	}
	if deps.Validator == nil {
		deps.Validator = validator.New()
	}

	requestStore := store.NewRequestStore(blobs, cfg.Store.Key, deps.Logger)
	requestStore.Load(ctx)

	auditLogger := audit.New(audit.NewLogRepository(deps.Logger))

	requestService := request.NewService(request.ServiceDeps{
		Repository:  requestStore,
		Validator:   deps.Validator,
		Policy:      cfg.Quota,
		Profile:     cfg.Profile,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
		Now:         deps.Now,
	})

	authService, err := auth.NewService(cfg.Auth.Accounts, cfg.Auth.BcryptCost, deps.Logger)
	if err != nil {
		blobs.Close()
		return nil, fmt.Errorf("initializing auth: %w", err)
	}

	reportService := report.NewService(report.ServiceDeps{
		RequestService: requestService,
		Logger:         deps.Logger,
	})

	return &Services{
		RequestStore:   requestStore,
		RequestService: requestService,
		AuthService:    authService,
		ReportService:  reportService,
		blobs:          blobs,
	}, nil
}

func OpenBlobStore(ctx context.Context, cfg store.Config) (store.BlobStore, error) {
	switch cfg.Driver {
	case store.DriverMemory:
		return memory.New(), nil
	case store.DriverFile, "":
		return file.New(cfg.File.Dir)
	case store.DriverSQLite:
		return sqlite.Open(ctx, cfg.SQLite.Path)
	case store.DriverPostgres:
		return postgres.Open(cfg.Postgres)
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
}
