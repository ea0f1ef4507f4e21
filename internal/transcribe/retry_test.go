package transcribe

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockResult{Text: "was"})
	p := WithRetry(mock, fastRetry(3))

	res, err := p.Transcribe(context.Background(), Request{Audio: []byte("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "was" {
		t.Errorf("Text = %q, want %q", res.Text, "was")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestRetry_RetriesUnavailable(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrServiceUnavailable{}},
		MockResult{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResult{Text: "was"},
	)
	p := WithRetry(mock, fastRetry(3))

	res, err := p.Transcribe(context.Background(), Request{Audio: []byte("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "was" {
		t.Errorf("Text = %q, want %q", res.Text, "was")
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrServiceUnavailable{}},
		MockResult{Err: &ErrServiceUnavailable{}},
		MockResult{Err: &ErrServiceUnavailable{}},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Transcribe(context.Background(), Request{Audio: []byte("x")})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	var unavail *ErrServiceUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("error = %v, want ErrServiceUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestRetry_EmptyTranscriptNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResult{Err: &ErrEmptyTranscript{Model: "mock"}},
		MockResult{Text: "should never be reached"},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Transcribe(context.Background(), Request{Audio: []byte("x")})
	var empty *ErrEmptyTranscript
	if !errors.As(err, &empty) {
		t.Fatalf("error = %v, want ErrEmptyTranscript", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1 (no retry on empty transcript)", mock.CallCount())
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(MockResult{Err: &ErrServiceUnavailable{}})
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Transcribe(ctx, Request{Audio: []byte("x")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestBackoff_RespectsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetry(3)}
	wait := r.backoff(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("backoff = %v, want 42ms", wait)
	}
}
