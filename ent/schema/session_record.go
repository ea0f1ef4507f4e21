package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord stores one finished test administration: the ordered
// verdicts plus the overall score computed by the session orchestrator.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

// VerdictRecord is the serialized form of one scored answer.
type VerdictRecord struct {
	QuestionID   string  `json:"question_id"`
	RawAnswer    string  `json:"raw_answer"`
	ResponseSecs float64 `json:"response_secs"`
	Correct      bool    `json:"correct"`
	ErrorType    string  `json:"error_type,omitempty"`
	ErrorDetail  string  `json:"error_detail,omitempty"`
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID for this administration"),
		field.String("student_id").
			NotEmpty().
			Comment("Student who took the screening"),
		field.String("conducted_by").
			NotEmpty().
			Comment("Teacher/administrator who ran it"),
		field.String("battery").
			Default("").
			Comment("Name of the question bank administered"),
		field.Float("overall_score").
			Comment("Aggregate score (0-100), computed by the orchestrator"),
		field.JSON("verdicts", []VerdictRecord{}).
			Comment("Ordered verdicts, one per question"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "conducted_by"),
	}
}
