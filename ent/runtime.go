// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anika/lexiscreen/ent/schema"
	"github.com/anika/lexiscreen/ent/sessionrecord"
	"github.com/anika/lexiscreen/ent/transcriptionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionrecordMixin := schema.SessionRecord{}.Mixin()
	sessionrecordMixinFields0 := sessionrecordMixin[0].Fields()
	_ = sessionrecordMixinFields0
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescCreatedAt is the schema descriptor for created_at field.
	sessionrecordDescCreatedAt := sessionrecordMixinFields0[1].Descriptor()
	// sessionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionrecord.DefaultCreatedAt = sessionrecordDescCreatedAt.Default.(func() time.Time)
	// sessionrecordDescSessionID is the schema descriptor for session_id field.
	sessionrecordDescSessionID := sessionrecordFields[0].Descriptor()
	// sessionrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrecord.SessionIDValidator = sessionrecordDescSessionID.Validators[0].(func(string) error)
	// sessionrecordDescStudentID is the schema descriptor for student_id field.
	sessionrecordDescStudentID := sessionrecordFields[1].Descriptor()
	// sessionrecord.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	sessionrecord.StudentIDValidator = sessionrecordDescStudentID.Validators[0].(func(string) error)
	// sessionrecordDescConductedBy is the schema descriptor for conducted_by field.
	sessionrecordDescConductedBy := sessionrecordFields[2].Descriptor()
	// sessionrecord.ConductedByValidator is a validator for the "conducted_by" field. It is called by the builders before save.
	sessionrecord.ConductedByValidator = sessionrecordDescConductedBy.Validators[0].(func(string) error)
	// sessionrecordDescBattery is the schema descriptor for battery field.
	sessionrecordDescBattery := sessionrecordFields[3].Descriptor()
	// sessionrecord.DefaultBattery holds the default value on creation for the battery field.
	sessionrecord.DefaultBattery = sessionrecordDescBattery.Default.(string)
	transcriptioneventMixin := schema.TranscriptionEvent{}.Mixin()
	transcriptioneventMixinFields0 := transcriptioneventMixin[0].Fields()
	_ = transcriptioneventMixinFields0
	transcriptioneventFields := schema.TranscriptionEvent{}.Fields()
	_ = transcriptioneventFields
	// transcriptioneventDescCreatedAt is the schema descriptor for created_at field.
	transcriptioneventDescCreatedAt := transcriptioneventMixinFields0[1].Descriptor()
	// transcriptionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcriptionevent.DefaultCreatedAt = transcriptioneventDescCreatedAt.Default.(func() time.Time)
	// transcriptioneventDescProvider is the schema descriptor for provider field.
	transcriptioneventDescProvider := transcriptioneventFields[0].Descriptor()
	// transcriptionevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	transcriptionevent.ProviderValidator = transcriptioneventDescProvider.Validators[0].(func(string) error)
	// transcriptioneventDescModel is the schema descriptor for model field.
	transcriptioneventDescModel := transcriptioneventFields[1].Descriptor()
	// transcriptionevent.DefaultModel holds the default value on creation for the model field.
	transcriptionevent.DefaultModel = transcriptioneventDescModel.Default.(string)
	// transcriptioneventDescAudioBytes is the schema descriptor for audio_bytes field.
	transcriptioneventDescAudioBytes := transcriptioneventFields[2].Descriptor()
	// transcriptionevent.DefaultAudioBytes holds the default value on creation for the audio_bytes field.
	transcriptionevent.DefaultAudioBytes = transcriptioneventDescAudioBytes.Default.(int)
	// transcriptioneventDescTextLen is the schema descriptor for text_len field.
	transcriptioneventDescTextLen := transcriptioneventFields[3].Descriptor()
	// transcriptionevent.DefaultTextLen holds the default value on creation for the text_len field.
	transcriptionevent.DefaultTextLen = transcriptioneventDescTextLen.Default.(int)
	// transcriptioneventDescLatencyMs is the schema descriptor for latency_ms field.
	transcriptioneventDescLatencyMs := transcriptioneventFields[4].Descriptor()
	// transcriptionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	transcriptionevent.DefaultLatencyMs = transcriptioneventDescLatencyMs.Default.(int64)
	// transcriptioneventDescSuccess is the schema descriptor for success field.
	transcriptioneventDescSuccess := transcriptioneventFields[5].Descriptor()
	// transcriptionevent.DefaultSuccess holds the default value on creation for the success field.
	transcriptionevent.DefaultSuccess = transcriptioneventDescSuccess.Default.(bool)
	// transcriptioneventDescErrorMessage is the schema descriptor for error_message field.
	transcriptioneventDescErrorMessage := transcriptioneventFields[6].Descriptor()
	// transcriptionevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	transcriptionevent.DefaultErrorMessage = transcriptioneventDescErrorMessage.Default.(string)
}
