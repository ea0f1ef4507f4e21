package transcribe

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/anika/lexiscreen/internal/store"
)

// LoggingProvider is a decorator that records every transcription call as
// a store event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Transcribe(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	res, err := l.inner.Transcribe(ctx, req)

	data := store.TranscriptionEventData{
		Provider:   l.inner.ModelID(),
		Model:      l.inner.ModelID(),
		AudioBytes: len(req.Audio),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}

	if res != nil {
		data.Model = res.Model
		data.TextLen = len(res.Text)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendTranscription(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log transcription event: %v\n", logErr)
	}

	return res, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
