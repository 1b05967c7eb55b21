package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
)

// CharterRepository provides persistence operations for project charters
type CharterRepository struct {
	db *gorm.DB
}

// NewCharterRepository creates a new charter repository
func NewCharterRepository(db *gorm.DB) *CharterRepository {
	return &CharterRepository{db: db}
}

// Migrate creates or updates the charter table.
func (r *CharterRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&domain.ProjectCharter{}); err != nil {
		return fmt.Errorf("auto migrate project charters: %w", err)
	}
	return nil
}

// Insert stores c and fills in its generated id and timestamps.
func (r *CharterRepository) Insert(ctx context.Context, c *domain.ProjectCharter) error {
	if c.ID != 0 {
		return fmt.Errorf("insert project charter: id already assigned (%d)", c.ID)
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("insert project charter: %w", withSQLState(err))
	}
	return nil
}

// FindByID returns domain.ErrNotFound when no row has the given id.
func (r *CharterRepository) FindByID(ctx context.Context, id int64) (*domain.ProjectCharter, error) {
	var c domain.ProjectCharter
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find project charter %d: %w", id, withSQLState(err))
	}
	return &c, nil
}

// FindAllOrderedByCreatedDesc returns every charter, most recent first.
func (r *CharterRepository) FindAllOrderedByCreatedDesc(ctx context.Context) ([]domain.ProjectCharter, error) {
	out := make([]domain.ProjectCharter, 0, 16)
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list project charters: %w", withSQLState(err))
	}
	return out, nil
}

// withSQLState annotates postgres errors with their SQLSTATE so logs carry it.
func withSQLState(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w (sqlstate %s)", err, pgErr.Code)
	}
	return err
}
