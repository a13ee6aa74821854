package storage

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sbilibin2017/blueforce/internal/logger"
)

// FailSoft wraps a durable Storage. The first backend error switches it to a
// process-lifetime in-memory store for good; callers never see storage errors.
// Cancellation of the caller's own context is returned as-is and does not
// count as a backend failure.
type FailSoft struct {
	primary  Storage
	fallback *Memory
	degraded atomic.Bool
	once     sync.Once
}

// NewFailSoft wraps primary with an in-memory fallback.
func NewFailSoft(primary Storage) *FailSoft {
	return &FailSoft{
		primary:  primary,
		fallback: NewMemory(),
	}
}

// Degraded reports whether the store has switched to the in-memory fallback.
func (f *FailSoft) Degraded() bool {
	return f.degraded.Load()
}

func (f *FailSoft) Get(ctx context.Context, key string) (string, bool, error) {
	if !f.degraded.Load() {
		v, ok, err := f.primary.Get(ctx, key)
		if err == nil {
			return v, ok, nil
		}
		if callerGone(ctx, err) {
			return "", false, err
		}
		f.degrade("get", key, err)
	}
	return f.fallback.Get(ctx, key)
}

func (f *FailSoft) Set(ctx context.Context, key, value string) error {
	if !f.degraded.Load() {
		err := f.primary.Set(ctx, key, value)
		if err == nil {
			return nil
		}
		if callerGone(ctx, err) {
			return err
		}
		f.degrade("set", key, err)
	}
	return f.fallback.Set(ctx, key, value)
}

func (f *FailSoft) Remove(ctx context.Context, key string) error {
	if !f.degraded.Load() {
		err := f.primary.Remove(ctx, key)
		if err == nil {
			return nil
		}
		if callerGone(ctx, err) {
			return err
		}
		f.degrade("remove", key, err)
	}
	return f.fallback.Remove(ctx, key)
}

func (f *FailSoft) degrade(op, key string, err error) {
	f.once.Do(func() {
		f.degraded.Store(true)
		logger.Log.Warnw("storage unavailable, switching to in-memory fallback",
			"op", op,
			"key", key,
			"error", err,
		)
	})
}

func callerGone(ctx context.Context, err error) bool {
	return ctx.Err() != nil &&
		(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}
