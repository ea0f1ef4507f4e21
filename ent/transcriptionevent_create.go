// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anika/lexiscreen/ent/transcriptionevent"
)

// TranscriptionEventCreate is the builder for creating a TranscriptionEvent entity.
type TranscriptionEventCreate struct {
	config
	mutation *TranscriptionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TranscriptionEventCreate) SetSequence(v int64) *TranscriptionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptionEventCreate) SetCreatedAt(v time.Time) *TranscriptionEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptionEventCreate) SetNillableCreatedAt(v *time.Time) *TranscriptionEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *TranscriptionEventCreate) SetProvider(v string) *TranscriptionEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *TranscriptionEventCreate) SetModel(v string) *TranscriptionEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *TranscriptionEventCreate) SetNillableModel(v *string) *TranscriptionEventCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetAudioBytes sets the "audio_bytes" field.
func (_c *TranscriptionEventCreate) SetAudioBytes(v int) *TranscriptionEventCreate {
	_c.mutation.SetAudioBytes(v)
	return _c
}

// SetNillableAudioBytes sets the "audio_bytes" field if the given value is not nil.
func (_c *TranscriptionEventCreate) SetNillableAudioBytes(v *int) *TranscriptionEventCreate {
	if v != nil {
		_c.SetAudioBytes(*v)
	}
	return _c
}

// SetTextLen sets the "text_len" field.
func (_c *TranscriptionEventCreate) SetTextLen(v int) *TranscriptionEventCreate {
	_c.mutation.SetTextLen(v)
	return _c
}

// SetNillableTextLen sets the "text_len" field if the given value is not nil.
func (_c *TranscriptionEventCreate) SetNillableTextLen(v *int) *TranscriptionEventCreate {
	if v != nil {
		_c.SetTextLen(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *TranscriptionEventCreate) SetLatencyMs(v int64) *TranscriptionEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *TranscriptionEventCreate) SetNillableLatencyMs(v *int64) *TranscriptionEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *TranscriptionEventCreate) SetSuccess(v bool) *TranscriptionEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *TranscriptionEventCreate) SetNillableSuccess(v *bool) *TranscriptionEventCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TranscriptionEventCreate) SetErrorMessage(v string) *TranscriptionEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TranscriptionEventCreate) SetNillableErrorMessage(v *string) *TranscriptionEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the TranscriptionEventMutation object of the builder.
func (_c *TranscriptionEventCreate) Mutation() *TranscriptionEventMutation {
	return _c.mutation
}

// Save creates the TranscriptionEvent in the database.
func (_c *TranscriptionEventCreate) Save(ctx context.Context) (*TranscriptionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptionEventCreate) SaveX(ctx context.Context) *TranscriptionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptionEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcriptionevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := transcriptionevent.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.AudioBytes(); !ok {
		v := transcriptionevent.DefaultAudioBytes
		_c.mutation.SetAudioBytes(v)
	}
	if _, ok := _c.mutation.TextLen(); !ok {
		v := transcriptionevent.DefaultTextLen
		_c.mutation.SetTextLen(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := transcriptionevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := transcriptionevent.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := transcriptionevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TranscriptionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TranscriptionEvent.created_at"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "TranscriptionEvent.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := transcriptionevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "TranscriptionEvent.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "TranscriptionEvent.model"`)}
	}
	if _, ok := _c.mutation.AudioBytes(); !ok {
		return &ValidationError{Name: "audio_bytes", err: errors.New(`ent: missing required field "TranscriptionEvent.audio_bytes"`)}
	}
	if _, ok := _c.mutation.TextLen(); !ok {
		return &ValidationError{Name: "text_len", err: errors.New(`ent: missing required field "TranscriptionEvent.text_len"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "TranscriptionEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "TranscriptionEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "TranscriptionEvent.error_message"`)}
	}
	return nil
}

func (_c *TranscriptionEventCreate) sqlSave(ctx context.Context) (*TranscriptionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptionEventCreate) createSpec() (*TranscriptionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptionevent.Table, sqlgraph.NewFieldSpec(transcriptionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(transcriptionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcriptionevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(transcriptionevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(transcriptionevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.AudioBytes(); ok {
		_spec.SetField(transcriptionevent.FieldAudioBytes, field.TypeInt, value)
		_node.AudioBytes = value
	}
	if value, ok := _c.mutation.TextLen(); ok {
		_spec.SetField(transcriptionevent.FieldTextLen, field.TypeInt, value)
		_node.TextLen = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(transcriptionevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(transcriptionevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(transcriptionevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// TranscriptionEventCreateBulk is the builder for creating many TranscriptionEvent entities in bulk.
type TranscriptionEventCreateBulk struct {
	config
	err      error
	builders []*TranscriptionEventCreate
}

// Save creates the TranscriptionEvent entities in the database.
func (_c *TranscriptionEventCreateBulk) Save(ctx context.Context) ([]*TranscriptionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TranscriptionEventCreateBulk) SaveX(ctx context.Context) []*TranscriptionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
