// Code generated by ent, DO NOT EDIT.

package transcriptionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anika/lexiscreen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldSequence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldModel, v))
}

// AudioBytes applies equality check predicate on the "audio_bytes" field. It's identical to AudioBytesEQ.
func AudioBytes(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldAudioBytes, v))
}

// TextLen applies equality check predicate on the "text_len" field. It's identical to TextLenEQ.
func TextLen(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldTextLen, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldSequence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldContainsFold(FieldModel, v))
}

// AudioBytesEQ applies the EQ predicate on the "audio_bytes" field.
func AudioBytesEQ(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldAudioBytes, v))
}

// AudioBytesNEQ applies the NEQ predicate on the "audio_bytes" field.
func AudioBytesNEQ(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldAudioBytes, v))
}

// AudioBytesIn applies the In predicate on the "audio_bytes" field.
func AudioBytesIn(vs ...int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldAudioBytes, vs...))
}

// AudioBytesNotIn applies the NotIn predicate on the "audio_bytes" field.
func AudioBytesNotIn(vs ...int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldAudioBytes, vs...))
}

// AudioBytesGT applies the GT predicate on the "audio_bytes" field.
func AudioBytesGT(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldAudioBytes, v))
}

// AudioBytesGTE applies the GTE predicate on the "audio_bytes" field.
func AudioBytesGTE(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldAudioBytes, v))
}

// AudioBytesLT applies the LT predicate on the "audio_bytes" field.
func AudioBytesLT(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldAudioBytes, v))
}

// AudioBytesLTE applies the LTE predicate on the "audio_bytes" field.
func AudioBytesLTE(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldAudioBytes, v))
}

// TextLenEQ applies the EQ predicate on the "text_len" field.
func TextLenEQ(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldTextLen, v))
}

// TextLenNEQ applies the NEQ predicate on the "text_len" field.
func TextLenNEQ(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldTextLen, v))
}

// TextLenIn applies the In predicate on the "text_len" field.
func TextLenIn(vs ...int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldTextLen, vs...))
}

// TextLenNotIn applies the NotIn predicate on the "text_len" field.
func TextLenNotIn(vs ...int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldTextLen, vs...))
}

// TextLenGT applies the GT predicate on the "text_len" field.
func TextLenGT(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldTextLen, v))
}

// TextLenGTE applies the GTE predicate on the "text_len" field.
func TextLenGTE(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldTextLen, v))
}

// TextLenLT applies the LT predicate on the "text_len" field.
func TextLenLT(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldTextLen, v))
}

// TextLenLTE applies the LTE predicate on the "text_len" field.
func TextLenLTE(v int) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldTextLen, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranscriptionEvent) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranscriptionEvent) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranscriptionEvent) predicate.TranscriptionEvent {
	return predicate.TranscriptionEvent(sql.NotPredicates(p))
}
