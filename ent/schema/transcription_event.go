package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranscriptionEvent records one call to the speech-to-text service,
// successful or not. The transcript text itself is never persisted —
// only its length — since recordings are student speech.
type TranscriptionEvent struct {
	ent.Schema
}

func (TranscriptionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (TranscriptionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("Configured provider (openai, gemini, mock)"),
		field.String("model").
			Default("").
			Comment("Model that served the request"),
		field.Int("audio_bytes").
			Default(0).
			Comment("Size of the submitted blob"),
		field.Int("text_len").
			Default(0).
			Comment("Length of the returned transcript (0 on failure)"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(false),
		field.String("error_message").
			Default(""),
	}
}

func (TranscriptionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("success"),
	}
}
