// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/anika/lexiscreen/ent/predicate"
	"github.com/anika/lexiscreen/ent/schema"
	"github.com/anika/lexiscreen/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdate) SetSessionID(v string) *SessionRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSessionID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionRecordUpdate) SetStudentID(v string) *SessionRecordUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableStudentID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConductedBy sets the "conducted_by" field.
func (_u *SessionRecordUpdate) SetConductedBy(v string) *SessionRecordUpdate {
	_u.mutation.SetConductedBy(v)
	return _u
}

// SetNillableConductedBy sets the "conducted_by" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableConductedBy(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetConductedBy(*v)
	}
	return _u
}

// SetBattery sets the "battery" field.
func (_u *SessionRecordUpdate) SetBattery(v string) *SessionRecordUpdate {
	_u.mutation.SetBattery(v)
	return _u
}

// SetNillableBattery sets the "battery" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableBattery(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetBattery(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *SessionRecordUpdate) SetOverallScore(v float64) *SessionRecordUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableOverallScore(v *float64) *SessionRecordUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *SessionRecordUpdate) AddOverallScore(v float64) *SessionRecordUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetVerdicts sets the "verdicts" field.
func (_u *SessionRecordUpdate) SetVerdicts(v []schema.VerdictRecord) *SessionRecordUpdate {
	_u.mutation.SetVerdicts(v)
	return _u
}

// AppendVerdicts appends value to the "verdicts" field.
func (_u *SessionRecordUpdate) AppendVerdicts(v []schema.VerdictRecord) *SessionRecordUpdate {
	_u.mutation.AppendVerdicts(v)
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := sessionrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConductedBy(); ok {
		if err := sessionrecord.ConductedByValidator(v); err != nil {
			return &ValidationError{Name: "conducted_by", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.conducted_by": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(sessionrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConductedBy(); ok {
		_spec.SetField(sessionrecord.FieldConductedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Battery(); ok {
		_spec.SetField(sessionrecord.FieldBattery, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Verdicts(); ok {
		_spec.SetField(sessionrecord.FieldVerdicts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerdicts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldVerdicts, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdateOne) SetSessionID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSessionID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *SessionRecordUpdateOne) SetStudentID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableStudentID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetConductedBy sets the "conducted_by" field.
func (_u *SessionRecordUpdateOne) SetConductedBy(v string) *SessionRecordUpdateOne {
	_u.mutation.SetConductedBy(v)
	return _u
}

// SetNillableConductedBy sets the "conducted_by" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableConductedBy(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetConductedBy(*v)
	}
	return _u
}

// SetBattery sets the "battery" field.
func (_u *SessionRecordUpdateOne) SetBattery(v string) *SessionRecordUpdateOne {
	_u.mutation.SetBattery(v)
	return _u
}

// SetNillableBattery sets the "battery" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableBattery(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetBattery(*v)
	}
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *SessionRecordUpdateOne) SetOverallScore(v float64) *SessionRecordUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableOverallScore(v *float64) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *SessionRecordUpdateOne) AddOverallScore(v float64) *SessionRecordUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetVerdicts sets the "verdicts" field.
func (_u *SessionRecordUpdateOne) SetVerdicts(v []schema.VerdictRecord) *SessionRecordUpdateOne {
	_u.mutation.SetVerdicts(v)
	return _u
}

// AppendVerdicts appends value to the "verdicts" field.
func (_u *SessionRecordUpdateOne) AppendVerdicts(v []schema.VerdictRecord) *SessionRecordUpdateOne {
	_u.mutation.AppendVerdicts(v)
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := sessionrecord.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConductedBy(); ok {
		if err := sessionrecord.ConductedByValidator(v); err != nil {
			return &ValidationError{Name: "conducted_by", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.conducted_by": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(sessionrecord.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConductedBy(); ok {
		_spec.SetField(sessionrecord.FieldConductedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Battery(); ok {
		_spec.SetField(sessionrecord.FieldBattery, field.TypeString, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(sessionrecord.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Verdicts(); ok {
		_spec.SetField(sessionrecord.FieldVerdicts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVerdicts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldVerdicts, value)
		})
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
