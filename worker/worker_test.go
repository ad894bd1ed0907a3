package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseJob(t *testing.T) {
	var rounds int32
	job, err := NewBaseJob(context.Background(), "test", "@every 1h", func(ctx context.Context) error {
		atomic.AddInt32(&rounds, 1)
		return errors.New("ignored")
	})
	require.Nil(t, err)

	job.Run()
	job.Run()
	assert.Equal(t, int32(2), atomic.LoadInt32(&rounds))
	assert.Len(t, job.Cron.Entries(), 1)
}

func TestBaseJobSkipsOverlappingRounds(t *testing.T) {
	var (
		rounds  int32
		started = make(chan struct{})
		release = make(chan struct{})
	)

	job, err := NewBaseJob(context.Background(), "test", "@every 1h", func(ctx context.Context) error {
		atomic.AddInt32(&rounds, 1)
		close(started)
		<-release
		return nil
	})
	require.Nil(t, err)

	done := make(chan struct{})
	go func() {
		job.Run()
		close(done)
	}()

	<-started
	job.Run()
	close(release)
	<-done

	assert.Equal(t, int32(1), atomic.LoadInt32(&rounds))
}

func TestBaseJobInvalidSpec(t *testing.T) {
	_, err := NewBaseJob(context.Background(), "test", "every now and then", func(ctx context.Context) error {
		return nil
	})
	assert.NotNil(t, err)
}

func TestBaseJobServe(t *testing.T) {
	job, err := NewBaseJob(context.Background(), "test", "@every 1h", func(ctx context.Context) error {
		return nil
	})
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Nil(t, job.Serve(ctx))
}
