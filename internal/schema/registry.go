package schema

import (
	"fmt"

	apperrors "github.com/icemanhv/forum/internal/errors"
	"github.com/icemanhv/forum/internal/model"
)

// FieldType is the semantic type a form renderer needs to pick a widget.
type FieldType string

const (
	FieldInt      FieldType = "int"
	FieldString   FieldType = "string"
	FieldText     FieldType = "text"
	FieldBool     FieldType = "bool"
	FieldDateTime FieldType = "datetime"
	FieldPassword FieldType = "password"
)

// ForeignKey names the table and column a field references.
type ForeignKey struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

// Field describes one column of a managed table.
type Field struct {
	Name       string      `json:"name"`
	Type       FieldType   `json:"type"`
	Nullable   bool        `json:"nullable"`
	Primary    bool        `json:"primary,omitempty"`
	ForeignKey *ForeignKey `json:"foreign_key,omitempty"`
}

// Table binds a table name to its field descriptors and entity constructor.
type Table struct {
	Name   string
	Fields []Field
	New    func() model.Entity
}

// Registry maps table names to their definitions. It is built once at
// startup and read-only afterwards.
type Registry struct {
	order  []string
	tables map[string]*Table
}

// NewRegistry declares the five managed tables.
func NewRegistry() *Registry {
	r := &Registry{tables: make(map[string]*Table)}

	r.add(&Table{
		Name: "users",
		New:  func() model.Entity { return &model.User{} },
		Fields: []Field{
			{Name: "id", Type: FieldInt, Primary: true},
			{Name: "name", Type: FieldString, Nullable: true},
			{Name: "email", Type: FieldString},
			{Name: "password_hash", Type: FieldPassword},
			{Name: "is_admin", Type: FieldBool, Nullable: true},
		},
	})
	r.add(&Table{
		Name: "blog",
		New:  func() model.Entity { return &model.Blog{} },
		Fields: []Field{
			{Name: "id", Type: FieldInt, Primary: true},
			{Name: "title", Type: FieldString, Nullable: true},
			{Name: "content", Type: FieldText},
			{Name: "created_at", Type: FieldDateTime},
			{Name: "updated_at", Type: FieldDateTime},
			{Name: "id_user", Type: FieldInt, ForeignKey: &ForeignKey{Table: "users", Column: "id"}},
		},
	})
	r.add(&Table{
		Name: "comments",
		New:  func() model.Entity { return &model.Comment{} },
		Fields: []Field{
			{Name: "id", Type: FieldInt, Primary: true},
			{Name: "text", Type: FieldText},
			{Name: "author_id", Type: FieldInt, ForeignKey: &ForeignKey{Table: "users", Column: "id"}},
			{Name: "timestamp", Type: FieldDateTime},
			{Name: "blog_id", Type: FieldInt, ForeignKey: &ForeignKey{Table: "blog", Column: "id"}},
		},
	})
	r.add(&Table{
		Name: "tag",
		New:  func() model.Entity { return &model.Tag{} },
		Fields: []Field{
			{Name: "id", Type: FieldInt, Primary: true},
			{Name: "name", Type: FieldString},
		},
	})
	r.add(&Table{
		Name: "blog_tags",
		New:  func() model.Entity { return &model.BlogTag{} },
		Fields: []Field{
			{Name: "id", Type: FieldInt, Primary: true},
			{Name: "blog_id", Type: FieldInt, ForeignKey: &ForeignKey{Table: "blog", Column: "id"}},
			{Name: "tag_id", Type: FieldInt, ForeignKey: &ForeignKey{Table: "tag", Column: "id"}},
		},
	})

	return r
}

func (r *Registry) add(t *Table) {
	r.order = append(r.order, t.Name)
	r.tables[t.Name] = t
}

// Lookup returns the definition for a table name.
func (r *Registry) Lookup(name string) (*Table, error) {
	t, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownTable, name)
	}
	return t, nil
}

// Tables returns the managed table names in declaration order.
func (r *Registry) Tables() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
