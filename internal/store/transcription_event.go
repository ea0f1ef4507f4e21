package store

import (
	"context"
	"fmt"
	"time"

	"github.com/anika/lexiscreen/ent"
	"github.com/anika/lexiscreen/ent/transcriptionevent"
)

// TranscriptionEventData captures one speech-to-text API call.
type TranscriptionEventData struct {
	Provider     string
	Model        string
	AudioBytes   int
	TextLen      int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// TranscriptionEventRecord is a stored transcription event as read back.
type TranscriptionEventRecord struct {
	ID           int
	Sequence     int64
	CreatedAt    time.Time
	Provider     string
	Model        string
	AudioBytes   int
	TextLen      int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// TranscriptionUsage aggregates transcription calls for one provider/model pair.
type TranscriptionUsage struct {
	Provider   string
	Model      string
	Calls      int
	Failures   int
	AudioBytes int64
	AvgLatency int64
}

// EventRepo provides append and query access to transcription events.
type EventRepo interface {
	// AppendTranscription records a speech-to-text API call event.
	AppendTranscription(ctx context.Context, data TranscriptionEventData) error

	// QueryTranscriptions returns events ordered by sequence descending.
	QueryTranscriptions(ctx context.Context, opts QueryOpts) ([]TranscriptionEventRecord, error)

	// TranscriptionUsage aggregates calls per provider/model pair.
	TranscriptionUsage(ctx context.Context) ([]TranscriptionUsage, error)
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTranscription(ctx context.Context, data TranscriptionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TranscriptionEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetAudioBytes(data.AudioBytes).
		SetTextLen(data.TextLen).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save transcription event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryTranscriptions(ctx context.Context, opts QueryOpts) ([]TranscriptionEventRecord, error) {
	query := r.client.TranscriptionEvent.Query().
		Order(ent.Desc(transcriptionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(transcriptionevent.CreatedAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(transcriptionevent.CreatedAtLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transcription events: %w", err)
	}

	records := make([]TranscriptionEventRecord, len(events))
	for i, e := range events {
		records[i] = TranscriptionEventRecord{
			ID:           e.ID,
			Sequence:     e.Sequence,
			CreatedAt:    e.CreatedAt,
			Provider:     e.Provider,
			Model:        e.Model,
			AudioBytes:   e.AudioBytes,
			TextLen:      e.TextLen,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
		}
	}
	return records, nil
}

func (r *eventRepo) TranscriptionUsage(ctx context.Context) ([]TranscriptionUsage, error) {
	events, err := r.client.TranscriptionEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transcription usage: %w", err)
	}

	type key struct{ provider, model string }
	byPair := make(map[key]*TranscriptionUsage)
	order := make([]key, 0)
	latencySum := make(map[key]int64)

	for _, e := range events {
		k := key{e.Provider, e.Model}
		u, ok := byPair[k]
		if !ok {
			u = &TranscriptionUsage{Provider: e.Provider, Model: e.Model}
			byPair[k] = u
			order = append(order, k)
		}
		u.Calls++
		if !e.Success {
			u.Failures++
		}
		u.AudioBytes += int64(e.AudioBytes)
		latencySum[k] += e.LatencyMs
	}

	usage := make([]TranscriptionUsage, 0, len(order))
	for _, k := range order {
		u := byPair[k]
		if u.Calls > 0 {
			u.AvgLatency = latencySum[k] / int64(u.Calls)
		}
		usage = append(usage, *u)
	}
	return usage, nil
}
