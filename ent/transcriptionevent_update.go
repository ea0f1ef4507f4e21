// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anika/lexiscreen/ent/predicate"
	"github.com/anika/lexiscreen/ent/transcriptionevent"
)

// TranscriptionEventUpdate is the builder for updating TranscriptionEvent entities.
type TranscriptionEventUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptionEventMutation
}

// Where appends a list predicates to the TranscriptionEventUpdate builder.
func (_u *TranscriptionEventUpdate) Where(ps ...predicate.TranscriptionEvent) *TranscriptionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *TranscriptionEventUpdate) SetProvider(v string) *TranscriptionEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TranscriptionEventUpdate) SetNillableProvider(v *string) *TranscriptionEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TranscriptionEventUpdate) SetModel(v string) *TranscriptionEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TranscriptionEventUpdate) SetNillableModel(v *string) *TranscriptionEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAudioBytes sets the "audio_bytes" field.
func (_u *TranscriptionEventUpdate) SetAudioBytes(v int) *TranscriptionEventUpdate {
	_u.mutation.ResetAudioBytes()
	_u.mutation.SetAudioBytes(v)
	return _u
}

// SetNillableAudioBytes sets the "audio_bytes" field if the given value is not nil.
func (_u *TranscriptionEventUpdate) SetNillableAudioBytes(v *int) *TranscriptionEventUpdate {
	if v != nil {
		_u.SetAudioBytes(*v)
	}
	return _u
}

// AddAudioBytes adds value to the "audio_bytes" field.
func (_u *TranscriptionEventUpdate) AddAudioBytes(v int) *TranscriptionEventUpdate {
	_u.mutation.AddAudioBytes(v)
	return _u
}

// SetTextLen sets the "text_len" field.
func (_u *TranscriptionEventUpdate) SetTextLen(v int) *TranscriptionEventUpdate {
	_u.mutation.ResetTextLen()
	_u.mutation.SetTextLen(v)
	return _u
}

// SetNillableTextLen sets the "text_len" field if the given value is not nil.
func (_u *TranscriptionEventUpdate) SetNillableTextLen(v *int) *TranscriptionEventUpdate {
	if v != nil {
		_u.SetTextLen(*v)
	}
	return _u
}

// AddTextLen adds value to the "text_len" field.
func (_u *TranscriptionEventUpdate) AddTextLen(v int) *TranscriptionEventUpdate {
	_u.mutation.AddTextLen(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *TranscriptionEventUpdate) SetLatencyMs(v int64) *TranscriptionEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *TranscriptionEventUpdate) SetNillableLatencyMs(v *int64) *TranscriptionEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *TranscriptionEventUpdate) AddLatencyMs(v int64) *TranscriptionEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TranscriptionEventUpdate) SetSuccess(v bool) *TranscriptionEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TranscriptionEventUpdate) SetNillableSuccess(v *bool) *TranscriptionEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TranscriptionEventUpdate) SetErrorMessage(v string) *TranscriptionEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TranscriptionEventUpdate) SetNillableErrorMessage(v *string) *TranscriptionEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the TranscriptionEventMutation object of the builder.
func (_u *TranscriptionEventUpdate) Mutation() *TranscriptionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptionEventUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := transcriptionevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "TranscriptionEvent.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptionevent.Table, transcriptionevent.Columns, sqlgraph.NewFieldSpec(transcriptionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(transcriptionevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(transcriptionevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioBytes(); ok {
		_spec.SetField(transcriptionevent.FieldAudioBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioBytes(); ok {
		_spec.AddField(transcriptionevent.FieldAudioBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TextLen(); ok {
		_spec.SetField(transcriptionevent.FieldTextLen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextLen(); ok {
		_spec.AddField(transcriptionevent.FieldTextLen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(transcriptionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(transcriptionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(transcriptionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(transcriptionevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptionEventUpdateOne is the builder for updating a single TranscriptionEvent entity.
type TranscriptionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptionEventMutation
}

// SetProvider sets the "provider" field.
func (_u *TranscriptionEventUpdateOne) SetProvider(v string) *TranscriptionEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *TranscriptionEventUpdateOne) SetNillableProvider(v *string) *TranscriptionEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TranscriptionEventUpdateOne) SetModel(v string) *TranscriptionEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TranscriptionEventUpdateOne) SetNillableModel(v *string) *TranscriptionEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetAudioBytes sets the "audio_bytes" field.
func (_u *TranscriptionEventUpdateOne) SetAudioBytes(v int) *TranscriptionEventUpdateOne {
	_u.mutation.ResetAudioBytes()
	_u.mutation.SetAudioBytes(v)
	return _u
}

// SetNillableAudioBytes sets the "audio_bytes" field if the given value is not nil.
func (_u *TranscriptionEventUpdateOne) SetNillableAudioBytes(v *int) *TranscriptionEventUpdateOne {
	if v != nil {
		_u.SetAudioBytes(*v)
	}
	return _u
}

// AddAudioBytes adds value to the "audio_bytes" field.
func (_u *TranscriptionEventUpdateOne) AddAudioBytes(v int) *TranscriptionEventUpdateOne {
	_u.mutation.AddAudioBytes(v)
	return _u
}

// SetTextLen sets the "text_len" field.
func (_u *TranscriptionEventUpdateOne) SetTextLen(v int) *TranscriptionEventUpdateOne {
	_u.mutation.ResetTextLen()
	_u.mutation.SetTextLen(v)
	return _u
}

// SetNillableTextLen sets the "text_len" field if the given value is not nil.
func (_u *TranscriptionEventUpdateOne) SetNillableTextLen(v *int) *TranscriptionEventUpdateOne {
	if v != nil {
		_u.SetTextLen(*v)
	}
	return _u
}

// AddTextLen adds value to the "text_len" field.
func (_u *TranscriptionEventUpdateOne) AddTextLen(v int) *TranscriptionEventUpdateOne {
	_u.mutation.AddTextLen(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *TranscriptionEventUpdateOne) SetLatencyMs(v int64) *TranscriptionEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *TranscriptionEventUpdateOne) SetNillableLatencyMs(v *int64) *TranscriptionEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *TranscriptionEventUpdateOne) AddLatencyMs(v int64) *TranscriptionEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *TranscriptionEventUpdateOne) SetSuccess(v bool) *TranscriptionEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *TranscriptionEventUpdateOne) SetNillableSuccess(v *bool) *TranscriptionEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TranscriptionEventUpdateOne) SetErrorMessage(v string) *TranscriptionEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TranscriptionEventUpdateOne) SetNillableErrorMessage(v *string) *TranscriptionEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the TranscriptionEventMutation object of the builder.
func (_u *TranscriptionEventUpdateOne) Mutation() *TranscriptionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TranscriptionEventUpdate builder.
func (_u *TranscriptionEventUpdateOne) Where(ps ...predicate.TranscriptionEvent) *TranscriptionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptionEventUpdateOne) Select(field string, fields ...string) *TranscriptionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptionEvent entity.
func (_u *TranscriptionEventUpdateOne) Save(ctx context.Context) (*TranscriptionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionEventUpdateOne) SaveX(ctx context.Context) *TranscriptionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptionEventUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := transcriptionevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "TranscriptionEvent.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptionEventUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptionevent.Table, transcriptionevent.Columns, sqlgraph.NewFieldSpec(transcriptionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptionevent.FieldID)
		for _, f := range fields {
			if !transcriptionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(transcriptionevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(transcriptionevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioBytes(); ok {
		_spec.SetField(transcriptionevent.FieldAudioBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAudioBytes(); ok {
		_spec.AddField(transcriptionevent.FieldAudioBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TextLen(); ok {
		_spec.SetField(transcriptionevent.FieldTextLen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTextLen(); ok {
		_spec.AddField(transcriptionevent.FieldTextLen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(transcriptionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(transcriptionevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(transcriptionevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(transcriptionevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &TranscriptionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
