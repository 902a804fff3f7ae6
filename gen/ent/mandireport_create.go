// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pakricemarket/mandi-admin/gen/ent/mandireport"
)

// MandiReportCreate is the builder for creating a MandiReport entity.
type MandiReportCreate struct {
	config
	mutation *MandiReportMutation
	hooks    []Hook
}

// SetMarket sets the "market" field.
func (_c *MandiReportCreate) SetMarket(v string) *MandiReportCreate {
	_c.mutation.SetMarket(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *MandiReportCreate) SetDate(v string) *MandiReportCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MandiReportCreate) SetSource(v string) *MandiReportCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *MandiReportCreate) SetNillableSource(v *string) *MandiReportCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetPdfURL sets the "pdf_url" field.
func (_c *MandiReportCreate) SetPdfURL(v string) *MandiReportCreate {
	_c.mutation.SetPdfURL(v)
	return _c
}

// SetPdfFilename sets the "pdf_filename" field.
func (_c *MandiReportCreate) SetPdfFilename(v string) *MandiReportCreate {
	_c.mutation.SetPdfFilename(v)
	return _c
}

// SetTotalItems sets the "total_items" field.
func (_c *MandiReportCreate) SetTotalItems(v int) *MandiReportCreate {
	_c.mutation.SetTotalItems(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MandiReportCreate) SetCreatedAt(v time.Time) *MandiReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MandiReportCreate) SetNillableCreatedAt(v *time.Time) *MandiReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *MandiReportCreate) SetExpiresAt(v time.Time) *MandiReportCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MandiReportCreate) SetID(v uuid.UUID) *MandiReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MandiReportCreate) SetNillableID(v *uuid.UUID) *MandiReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MandiReportMutation object of the builder.
func (_c *MandiReportCreate) Mutation() *MandiReportMutation {
	return _c.mutation
}

// Save creates the MandiReport in the database.
func (_c *MandiReportCreate) Save(ctx context.Context) (*MandiReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MandiReportCreate) SaveX(ctx context.Context) *MandiReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MandiReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MandiReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MandiReportCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := mandireport.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mandireport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mandireport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MandiReportCreate) check() error {
	if _, ok := _c.mutation.Market(); !ok {
		return &ValidationError{Name: "market", err: errors.New(`ent: missing required field "MandiReport.market"`)}
	}
	if v, ok := _c.mutation.Market(); ok {
		if err := mandireport.MarketValidator(v); err != nil {
			return &ValidationError{Name: "market", err: fmt.Errorf(`ent: validator failed for field "MandiReport.market": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "MandiReport.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := mandireport.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "MandiReport.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MandiReport.source"`)}
	}
	if _, ok := _c.mutation.PdfURL(); !ok {
		return &ValidationError{Name: "pdf_url", err: errors.New(`ent: missing required field "MandiReport.pdf_url"`)}
	}
	if v, ok := _c.mutation.PdfURL(); ok {
		if err := mandireport.PdfURLValidator(v); err != nil {
			return &ValidationError{Name: "pdf_url", err: fmt.Errorf(`ent: validator failed for field "MandiReport.pdf_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PdfFilename(); !ok {
		return &ValidationError{Name: "pdf_filename", err: errors.New(`ent: missing required field "MandiReport.pdf_filename"`)}
	}
	if v, ok := _c.mutation.PdfFilename(); ok {
		if err := mandireport.PdfFilenameValidator(v); err != nil {
			return &ValidationError{Name: "pdf_filename", err: fmt.Errorf(`ent: validator failed for field "MandiReport.pdf_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalItems(); !ok {
		return &ValidationError{Name: "total_items", err: errors.New(`ent: missing required field "MandiReport.total_items"`)}
	}
	if v, ok := _c.mutation.TotalItems(); ok {
		if err := mandireport.TotalItemsValidator(v); err != nil {
			return &ValidationError{Name: "total_items", err: fmt.Errorf(`ent: validator failed for field "MandiReport.total_items": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MandiReport.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "MandiReport.expires_at"`)}
	}
	return nil
}

func (_c *MandiReportCreate) sqlSave(ctx context.Context) (*MandiReport, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MandiReportCreate) createSpec() (*MandiReport, *sqlgraph.CreateSpec) {
	var (
		_node = &MandiReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mandireport.Table, sqlgraph.NewFieldSpec(mandireport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Market(); ok {
		_spec.SetField(mandireport.FieldMarket, field.TypeString, value)
		_node.Market = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(mandireport.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(mandireport.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.PdfURL(); ok {
		_spec.SetField(mandireport.FieldPdfURL, field.TypeString, value)
		_node.PdfURL = value
	}
	if value, ok := _c.mutation.PdfFilename(); ok {
		_spec.SetField(mandireport.FieldPdfFilename, field.TypeString, value)
		_node.PdfFilename = value
	}
	if value, ok := _c.mutation.TotalItems(); ok {
		_spec.SetField(mandireport.FieldTotalItems, field.TypeInt, value)
		_node.TotalItems = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mandireport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(mandireport.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// MandiReportCreateBulk is the builder for creating many MandiReport entities in bulk.
type MandiReportCreateBulk struct {
	config
	err      error
	builders []*MandiReportCreate
}

// Save creates the MandiReport entities in the database.
func (_c *MandiReportCreateBulk) Save(ctx context.Context) ([]*MandiReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MandiReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MandiReportMutation)
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
func (_c *MandiReportCreateBulk) SaveX(ctx context.Context) []*MandiReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MandiReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MandiReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
