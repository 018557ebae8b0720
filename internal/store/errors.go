package store

import (
	"errors"

	"github.com/EricWal/hr-app/domain"
)

var (
	ErrRequestNotFound    = domain.ErrRequestNotFound
	ErrDuplicateRequestID = errors.New("a different request with the same id already exists")
	ErrNilRequest         = errors.New("request can't be nil")
)
