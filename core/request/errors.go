package request

import (
	"errors"

	"github.com/EricWal/hr-app/domain"
)

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrRequestNotFound   = domain.ErrRequestNotFound
	ErrRequestNotPending = domain.ErrRequestNotPending
	ErrEmptyActor        = errors.New("actor can't be empty")
	ErrEmptyRequestID    = errors.New("request id can't be empty")
)
