package store

import (
	"context"
	"errors"
	"sync"

	"github.com/EricWal/hr-app/domain"
	"github.com/EricWal/hr-app/pkg/log"
	"github.com/google/go-cmp/cmp"
)

// RequestStore keeps the ordered request collection and mirrors every
// mutation to a single blob. In-memory state is updated before the write, so
// a failed write only loses the delta since the last good snapshot.
type RequestStore struct {
	blobs  BlobStore
	key    string
	logger log.Logger

	mu       sync.RWMutex
	requests []*domain.Request
}

func NewRequestStore(blobs BlobStore, key string, logger log.Logger) *RequestStore {
	if key == "" {
		key = DefaultRequestsKey
	}
	return &RequestStore{
		blobs:    blobs,
		key:      key,
		logger:   logger,
		requests: []*domain.Request{},
	}
}

// Load replaces the in-memory collection with the persisted one. Missing or
// unreadable data leaves an empty collection; errors are logged, never returned.
func (s *RequestStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = []*domain.Request{}

	data, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			s.logger.Debug(ctx, "no persisted requests", "key", s.key)
		} else {
			s.logger.Error(ctx, "failed to read persisted requests", "key", s.key, "error", err)
		}
		return
	}

	requests, err := domain.UnmarshalRequests(data)
	if err != nil {
		var partial *domain.PartialDecodeError
		if !errors.As(err, &partial) {
			s.logger.Error(ctx, "persisted requests are corrupt, starting empty", "key", s.key, "error", err)
			return
		}
		for _, skipped := range partial.Skipped {
			s.logger.Warn(ctx, "skipping undecodable request", "index", skipped.Index, "error", skipped.Err)
		}
	}

	s.requests = requests
	s.logger.Debug(ctx, "requests loaded", "count", len(requests))
}

// Add appends r and persists the collection. Re-adding an identical record
// is a no-op.
func (s *RequestStore) Add(ctx context.Context, r *domain.Request) error {
	if r == nil {
		return ErrNilRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.find(r.ID); existing != nil {
		if cmp.Equal(existing, r) {
			s.logger.Debug(ctx, "request already stored", "id", r.ID)
			return nil
		}
		return ErrDuplicateRequestID
	}

	s.requests = append(s.requests, r.Clone())
	s.persist(ctx)
	return nil
}

// UpdateStatus sets the status of the matching request, and its rejection
// reason when one is given. Unknown ids change nothing.
func (s *RequestStore) UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, rejectionReason *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.find(id)
	if r == nil {
		return ErrRequestNotFound
	}

	r.Status = status
	if rejectionReason != nil {
		r.RejectionReason = *rejectionReason
	}
	s.persist(ctx)
	return nil
}

// List returns copies of all requests in submission order.
func (s *RequestStore) List(context.Context) []*domain.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Request, 0, len(s.requests))
	for _, r := range s.requests {
		result = append(result, r.Clone())
	}
	return result
}

func (s *RequestStore) GetByID(_ context.Context, id int64) (*domain.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r := s.find(id)
	if r == nil {
		return nil, ErrRequestNotFound
	}
	return r.Clone(), nil
}

func (s *RequestStore) find(id int64) *domain.Request {
	for _, r := range s.requests {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// persist must be called with s.mu held.
func (s *RequestStore) persist(ctx context.Context) {
	data, err := domain.MarshalRequests(s.requests)
	if err != nil {
		s.logger.Error(ctx, "failed to encode requests", "error", err)
		return
	}
	if err := s.blobs.Put(ctx, s.key, data); err != nil {
		s.logger.Error(ctx, "failed to persist requests", "key", s.key, "count", len(s.requests), "error", err)
	}
}
