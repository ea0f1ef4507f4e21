// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "conducted_by", Type: field.TypeString},
		{Name: "battery", Type: field.TypeString, Default: ""},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "verdicts", Type: field.TypeJSON},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[1]},
			},
			{
				Name:    "sessionrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2]},
			},
			{
				Name:    "sessionrecord_student_id_conducted_by",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[4], SessionRecordsColumns[5]},
			},
		},
	}
	// TranscriptionEventsColumns holds the columns for the "transcription_events" table.
	TranscriptionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "audio_bytes", Type: field.TypeInt, Default: 0},
		{Name: "text_len", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// TranscriptionEventsTable holds the schema information for the "transcription_events" table.
	TranscriptionEventsTable = &schema.Table{
		Name:       "transcription_events",
		Columns:    TranscriptionEventsColumns,
		PrimaryKey: []*schema.Column{TranscriptionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "transcriptionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TranscriptionEventsColumns[1]},
			},
			{
				Name:    "transcriptionevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{TranscriptionEventsColumns[2]},
			},
			{
				Name:    "transcriptionevent_provider",
				Unique:  false,
				Columns: []*schema.Column{TranscriptionEventsColumns[3]},
			},
			{
				Name:    "transcriptionevent_success",
				Unique:  false,
				Columns: []*schema.Column{TranscriptionEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionRecordsTable,
		TranscriptionEventsTable,
	}
)

func init() {
}
