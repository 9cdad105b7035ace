package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/db"
	apperrors "github.com/icemanhv/forum/internal/errors"
	"github.com/icemanhv/forum/internal/model"
	"github.com/icemanhv/forum/internal/schema"
)

// Row is a generic table row keyed by column name, used where the entity
// kind is only known at request time.
type Row map[string]interface{}

// EntityStore performs CRUD over any table the schema registry knows about.
// It backs the admin console, which has no per-table code.
type EntityStore interface {
	Create(ctx context.Context, table string, form url.Values) (model.Entity, error)
	List(ctx context.Context, table string) ([]Row, error)
	GetByID(ctx context.Context, table string, id uint) (Row, error)
}

type entityStore struct {
	db       *gorm.DB
	registry *schema.Registry
}

// NewEntityStore builds a registry-driven store.
func NewEntityStore(gdb *gorm.DB, registry *schema.Registry) EntityStore {
	return &entityStore{db: gdb, registry: registry}
}

func (s *entityStore) conn(ctx context.Context) *gorm.DB {
	return db.FromContext(ctx, s.db).WithContext(ctx)
}

// Create instantiates the table's entity kind, overwrites every field from
// the form and persists it. Validation failures propagate to the caller so
// the form can be redisplayed.
func (s *entityStore) Create(ctx context.Context, table string, form url.Values) (model.Entity, error) {
	def, err := s.registry.Lookup(table)
	if err != nil {
		return nil, err
	}
	entity := def.New()
	if err := entity.SetValues(form); err != nil {
		return nil, err
	}
	if err := s.conn(ctx).Create(entity).Error; err != nil {
		return nil, fmt.Errorf("create %s row: %w", table, err)
	}
	return entity, nil
}

func (s *entityStore) List(ctx context.Context, table string) ([]Row, error) {
	if _, err := s.registry.Lookup(table); err != nil {
		return nil, err
	}
	// GORM scans generic results only into plain map types.
	var raw []map[string]interface{}
	if err := s.conn(ctx).Table(table).Order("id").Find(&raw).Error; err != nil {
		return nil, fmt.Errorf("list %s rows: %w", table, err)
	}
	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row(r)
	}
	return rows, nil
}

func (s *entityStore) GetByID(ctx context.Context, table string, id uint) (Row, error) {
	if _, err := s.registry.Lookup(table); err != nil {
		return nil, err
	}
	row := map[string]interface{}{}
	err := s.conn(ctx).Table(table).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s id %d", apperrors.ErrNotFound, table, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s row: %w", table, err)
	}
	return Row(row), nil
}
