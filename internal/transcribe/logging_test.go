package transcribe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anika/lexiscreen/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoggingRecordsSuccessfulCall(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	mock := NewMockProvider(MockResult{Text: "elephant"})
	p := WithLogging(mock, s.EventRepo())

	res, err := p.Transcribe(ctx, Request{Audio: []byte("aaaa"), MIMEType: "audio/webm"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "elephant", res.Text)

	events, err := s.EventRepo().QueryTranscriptions(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.True(t, e.Success)
	assert.Equal(t, "mock", e.Model)
	assert.Equal(t, 4, e.AudioBytes)
	assert.Equal(t, len("elephant"), e.TextLen)
	assert.Empty(t, e.ErrorMessage)
}

func TestLoggingRecordsFailureAndPropagatesError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	boom := errors.New("boom")
	mock := NewMockProvider(MockResult{Err: boom})
	p := WithLogging(mock, s.EventRepo())

	_, err := p.Transcribe(ctx, Request{Audio: []byte("aa")})
	require.ErrorIs(t, err, boom)

	events, err := s.EventRepo().QueryTranscriptions(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.False(t, e.Success)
	assert.Zero(t, e.TextLen)
	assert.Contains(t, e.ErrorMessage, "boom")
}

func TestLoggingWrapsEveryAttempt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Retry wraps logging, so each attempt leaves its own event.
	mock := NewMockProvider(
		MockResult{Err: &ErrServiceUnavailable{}},
		MockResult{Text: "cat"},
	)
	p := WithRetry(WithLogging(mock, s.EventRepo()), RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     time.Millisecond,
		Multiplier:  1,
	})

	res, err := p.Transcribe(ctx, Request{Audio: []byte("a")})
	require.NoError(t, err)
	assert.Equal(t, "cat", res.Text)

	events, err := s.EventRepo().QueryTranscriptions(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first: the success follows the failure.
	assert.True(t, events[0].Success)
	assert.False(t, events[1].Success)
}
