package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/icemanhv/forum/internal/model"
	"github.com/icemanhv/forum/internal/repository"
	"github.com/icemanhv/forum/internal/schema"
)

// TableView is everything the generic admin table page needs: the field
// descriptors, every row, and the full row set of each referenced table so
// foreign-key fields can render as selection widgets.
type TableView struct {
	Tables    []string                    `json:"tables"`
	Table     string                      `json:"table"`
	Fields    []schema.Field              `json:"fields"`
	Rows      []repository.Row            `json:"rows"`
	FKOptions map[string][]repository.Row `json:"fk_options"`
}

// AdminService drives the schema-generic table console. There is no
// per-table code here; everything is shaped by the registry.
type AdminService interface {
	ListTables() []string
	ListTable(ctx context.Context, name string) (*TableView, error)
	CreateRow(ctx context.Context, name string, form url.Values) (model.Entity, error)
}

type adminService struct {
	registry *schema.Registry
	store    repository.EntityStore
}

// NewAdminService creates a new admin service.
func NewAdminService(registry *schema.Registry, store repository.EntityStore) AdminService {
	return &adminService{registry: registry, store: store}
}

func (s *adminService) ListTables() []string {
	return s.registry.Tables()
}

func (s *adminService) ListTable(ctx context.Context, name string) (*TableView, error) {
	def, err := s.registry.Lookup(name)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.List(ctx, name)
	if err != nil {
		return nil, err
	}

	fkOptions := make(map[string][]repository.Row)
	for _, field := range def.Fields {
		if field.ForeignKey == nil {
			continue
		}
		options, err := s.store.List(ctx, field.ForeignKey.Table)
		if err != nil {
			return nil, fmt.Errorf("load %s options: %w", field.ForeignKey.Table, err)
		}
		fkOptions[field.Name] = options
	}

	return &TableView{
		Tables:    s.registry.Tables(),
		Table:     name,
		Fields:    def.Fields,
		Rows:      rows,
		FKOptions: fkOptions,
	}, nil
}

func (s *adminService) CreateRow(ctx context.Context, name string, form url.Values) (model.Entity, error) {
	return s.store.Create(ctx, name, form)
}
