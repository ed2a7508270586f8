package resource

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/usahaku/erp-dashboard/internal"
)

// Options bound every store operation. Timeouts keep a slow store from
// hanging a view; retries cover transient fetch/write failures only, never
// validation or not-found results.
type Options struct {
	Timeout       time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	if o.RetryAttempts <= 0 {
		o.RetryAttempts = 3
	}
	if o.RetryBackoff <= 0 {
		o.RetryBackoff = 100 * time.Millisecond
	}
	return o
}

// Service wraps a Store with timeouts, bounded retry and error mapping.
// A failed fetch surfaces as a FetchError; it is never collapsed into an
// empty result, so callers can keep stale rows visible and offer a retry.
type Service[T any] struct {
	store  Store[T]
	name   string
	logger *slog.Logger
	opts   Options
}

func NewService[T any](store Store[T], name string, logger *slog.Logger, opts Options) *Service[T] {
	return &Service[T]{
		store:  store,
		name:   name,
		logger: logger,
		opts:   opts.withDefaults(),
	}
}

func (s *Service[T]) List(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	var records []*T
	err := s.withRetry(ctx, func(ctx context.Context) error {
		rows, err := s.store.List(ctx)
		if err != nil {
			return err
		}
		records = rows
		return nil
	})
	if err != nil {
		s.logger.Error("list failed", "resource", s.name, "error", err)
		return nil, internal.NewFetchError(s.name, err)
	}
	return records, nil
}

// Create runs a single attempt: an insert is not idempotent, so retrying an
// ambiguous failure could duplicate the record.
func (s *Service[T]) Create(ctx context.Context, record *T) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	if err := s.store.Insert(ctx, record); err != nil {
		s.logger.Error("insert failed", "resource", s.name, "error", err)
		return internal.NewWriteError(s.name, err)
	}
	return nil
}

func (s *Service[T]) Update(ctx context.Context, id int64, record *T) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.store.Update(ctx, id, record)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.NewNotFoundError(s.name + " not found")
		}
		s.logger.Error("update failed", "resource", s.name, "id", id, "error", err)
		return internal.NewWriteError(s.name, err)
	}
	return nil
}

func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	err := s.withRetry(ctx, func(ctx context.Context) error {
		return s.store.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.NewNotFoundError(s.name + " not found")
		}
		s.logger.Error("delete failed", "resource", s.name, "id", id, "error", err)
		return internal.NewWriteError(s.name, err)
	}
	return nil
}

func (s *Service[T]) withRetry(ctx context.Context, op func(context.Context) error) error {
	backoff := retry.WithMaxRetries(uint64(s.opts.RetryAttempts-1), retry.NewExponential(s.opts.RetryBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err == nil || errors.Is(err, ErrNotFound) {
			return err
		}
		return retry.RetryableError(err)
	})
}
