// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)

// TranscriptionEvent is the predicate function for transcriptionevent builders.
type TranscriptionEvent func(*sql.Selector)
