package store

import (
	"context"
	"fmt"
	"time"

	"github.com/anika/lexiscreen/ent"
	entschema "github.com/anika/lexiscreen/ent/schema"
	"github.com/anika/lexiscreen/ent/sessionrecord"
)

// VerdictData is one scored answer in its persisted form.
type VerdictData struct {
	QuestionID   string
	RawAnswer    string
	ResponseSecs float64
	Correct      bool
	ErrorType    string
	ErrorDetail  string
}

// SessionData is a finished administration ready for persistence.
type SessionData struct {
	SessionID    string
	StudentID    string
	ConductedBy  string
	Battery      string
	OverallScore float64
	Verdicts     []VerdictData
}

// SessionRow is a stored administration as read back from the store.
type SessionRow struct {
	Sequence     int64
	SessionID    string
	StudentID    string
	ConductedBy  string
	Battery      string
	OverallScore float64
	Verdicts     []VerdictData
	CreatedAt    time.Time
}

// SessionRepo persists finished sessions and serves the ordered history
// the progress aggregator reads. Writing is the orchestrator's job; the
// engine itself only reads.
type SessionRepo interface {
	// Save stores a finished session.
	Save(ctx context.Context, data SessionData) error

	// ListByStudent returns all sessions for a student, ordered by
	// creation time ascending. An empty conductedBy matches any
	// administrator.
	ListByStudent(ctx context.Context, studentID, conductedBy string) ([]SessionRow, error)

	// Scores returns just the overall scores for a student, ordered by
	// creation time ascending. An empty conductedBy matches any
	// administrator.
	Scores(ctx context.Context, studentID, conductedBy string) ([]float64, error)

	// DeleteAll removes every stored session. Used by the reset command.
	DeleteAll(ctx context.Context) (int, error)
}

type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) Save(ctx context.Context, data SessionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	verdicts := make([]entschema.VerdictRecord, 0, len(data.Verdicts))
	for _, v := range data.Verdicts {
		verdicts = append(verdicts, entschema.VerdictRecord{
			QuestionID:   v.QuestionID,
			RawAnswer:    v.RawAnswer,
			ResponseSecs: v.ResponseSecs,
			Correct:      v.Correct,
			ErrorType:    v.ErrorType,
			ErrorDetail:  v.ErrorDetail,
		})
	}

	_, err = r.client.SessionRecord.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStudentID(data.StudentID).
		SetConductedBy(data.ConductedBy).
		SetBattery(data.Battery).
		SetOverallScore(data.OverallScore).
		SetVerdicts(verdicts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *sessionRepo) ListByStudent(ctx context.Context, studentID, conductedBy string) ([]SessionRow, error) {
	query := r.client.SessionRecord.Query().
		Where(sessionrecord.StudentID(studentID)).
		Order(ent.Asc(sessionrecord.FieldCreatedAt))
	if conductedBy != "" {
		query = query.Where(sessionrecord.ConductedBy(conductedBy))
	}

	records, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	rows := make([]SessionRow, 0, len(records))
	for _, rec := range records {
		verdicts := make([]VerdictData, 0, len(rec.Verdicts))
		for _, v := range rec.Verdicts {
			verdicts = append(verdicts, VerdictData{
				QuestionID:   v.QuestionID,
				RawAnswer:    v.RawAnswer,
				ResponseSecs: v.ResponseSecs,
				Correct:      v.Correct,
				ErrorType:    v.ErrorType,
				ErrorDetail:  v.ErrorDetail,
			})
		}
		rows = append(rows, SessionRow{
			Sequence:     rec.Sequence,
			SessionID:    rec.SessionID,
			StudentID:    rec.StudentID,
			ConductedBy:  rec.ConductedBy,
			Battery:      rec.Battery,
			OverallScore: rec.OverallScore,
			Verdicts:     verdicts,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return rows, nil
}

func (r *sessionRepo) Scores(ctx context.Context, studentID, conductedBy string) ([]float64, error) {
	rows, err := r.ListByStudent(ctx, studentID, conductedBy)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, row.OverallScore)
	}
	return scores, nil
}

func (r *sessionRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.SessionRecord.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete sessions: %w", err)
	}
	return n, nil
}
