package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"time"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/EricWal/hr-app/internal/store"
	"github.com/EricWal/hr-app/internal/store/postgres"
	"github.com/stretchr/testify/suite"
	pg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type StoreTestSuite struct {
	suite.Suite
	sqlMock sqlmock.Sqlmock
	store   *postgres.Store
}

func (s *StoreTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.sqlMock = mock

	gdb, err := gorm.Open(pg.New(pg.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	s.Require().NoError(err)
	s.store = postgres.NewStore(gdb)
}

func (s *StoreTestSuite) TearDownTest() {
	s.NoError(s.sqlMock.ExpectationsWereMet())
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestGet() {
	selectQuery := regexp.QuoteMeta(`SELECT * FROM "blobs" WHERE "name" = $1`)

	s.Run("should return blob data", func() {
		rows := sqlmock.NewRows([]string{"name", "data", "updated_at"}).
			AddRow("requests", []byte(`[{"id":1}]`), time.Now())
		s.sqlMock.ExpectQuery(selectQuery).WillReturnRows(rows)

		actual, err := s.store.Get(context.Background(), "requests")

		s.NoError(err)
		s.Equal(`[{"id":1}]`, string(actual))
	})

	s.Run("should return ErrKeyNotFound when no row", func() {
		s.sqlMock.ExpectQuery(selectQuery).WillReturnRows(sqlmock.NewRows([]string{"name", "data", "updated_at"}))

		_, err := s.store.Get(context.Background(), "requests")

		s.ErrorIs(err, store.ErrKeyNotFound)
	})

	s.Run("should return db error", func() {
		expectedErr := errors.New("connection reset")
		s.sqlMock.ExpectQuery(selectQuery).WillReturnError(expectedErr)

		_, err := s.store.Get(context.Background(), "requests")

		s.ErrorIs(err, expectedErr)
	})
}

func (s *StoreTestSuite) TestPut() {
	upsertQuery := regexp.QuoteMeta(`INSERT INTO "blobs" ("name","data","updated_at") VALUES ($1,$2,$3) ON CONFLICT ("name") DO UPDATE SET`)

	s.Run("should upsert blob", func() {
		s.sqlMock.ExpectExec(upsertQuery).
			WithArgs("requests", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		s.NoError(s.store.Put(context.Background(), "requests", []byte(`[]`)))
	})

	s.Run("should return db error", func() {
		expectedErr := errors.New("disk full")
		s.sqlMock.ExpectExec(upsertQuery).WillReturnError(expectedErr)

		s.ErrorIs(s.store.Put(context.Background(), "requests", []byte(`[]`)), expectedErr)
	})
}
