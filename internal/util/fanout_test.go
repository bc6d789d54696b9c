package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFanOutAllBranchesSettle(t *testing.T) {
	var ran int32
	branches := []Branch{
		{Name: "ok", Run: func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		}},
		{Name: "fails", Run: func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return errors.New("boom")
		}},
		{Name: "panics", Run: func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			panic("boom")
		}},
		{Name: "also-ok", Run: func(ctx context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		}},
	}

	FanOut(context.Background(), zap.NewNop(), branches...)
	assert.Equal(t, int32(4), atomic.LoadInt32(&ran))
}

func TestFanOutFailureDoesNotCancelSiblings(t *testing.T) {
	var sawCancel int32
	FanOut(context.Background(), zap.NewNop(),
		Branch{Name: "fails-fast", Run: func(ctx context.Context) error {
			return errors.New("boom")
		}},
		Branch{Name: "checks-ctx", Run: func(ctx context.Context) error {
			if ctx.Err() != nil {
				atomic.StoreInt32(&sawCancel, 1)
			}
			return nil
		}},
	)
	assert.Equal(t, int32(0), atomic.LoadInt32(&sawCancel))
}
