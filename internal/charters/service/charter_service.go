package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
	"github.com/projeto-charter/charter-backend/internal/logging"
)

// Repository is the narrow store surface the charter logic depends on.
type Repository interface {
	Insert(ctx context.Context, c *domain.ProjectCharter) error
	FindByID(ctx context.Context, id int64) (*domain.ProjectCharter, error)
	FindAllOrderedByCreatedDesc(ctx context.Context) ([]domain.ProjectCharter, error)
}

// Publisher is notified after a charter has been stored.
type Publisher interface {
	PublishCreated(ctx context.Context, c *domain.ProjectCharter) error
}

// CharterService handles charter creation and lookups
type CharterService struct {
	repo      Repository
	publisher Publisher
}

// NewCharterService creates a charter service. publisher may be nil.
func NewCharterService(repo Repository, publisher Publisher) *CharterService {
	return &CharterService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create parses body and runs CreateFromPayload.
func (s *CharterService) Create(ctx context.Context, body []byte) (*domain.ProjectCharter, error) {
	payload, err := ParsePayload(body)
	if err != nil {
		return nil, err
	}
	return s.CreateFromPayload(ctx, payload)
}

// CreateFromPayload validates payload and inserts exactly one row on success.
// Validation failures return before the store is touched.
func (s *CharterService) CreateFromPayload(ctx context.Context, payload map[string]any) (*domain.ProjectCharter, error) {
	logger := logging.New(ctx)

	charter, err := ValidatePayload(payload)
	if err != nil {
		logger.LogInfof("charters.create", "rejected=%v", err)
		return nil, err
	}

	if err := s.repo.Insert(ctx, charter); err != nil {
		logger.LogError("charters.create", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrInternalFailure, err)
	}
	logger.LogInfof("charters.create", "id=%d nome=%q", charter.ID, charter.NomeProjeto)

	if s.publisher != nil {
		// the row is committed; a lost event must not fail the request
		if err := s.publisher.PublishCreated(ctx, charter); err != nil {
			logger.LogWarnf("charters.publish", "id=%d error=%v", charter.ID, err)
		}
	}

	return charter, nil
}

// List returns every charter, most recent first. Store failures are logged
// and reported as an empty list.
func (s *CharterService) List(ctx context.Context) []domain.ProjectCharter {
	items, err := s.repo.FindAllOrderedByCreatedDesc(ctx)
	if err != nil {
		logging.New(ctx).LogError("charters.list", err)
		return []domain.ProjectCharter{}
	}
	if items == nil {
		return []domain.ProjectCharter{}
	}
	return items
}

// Get looks up one charter by its textual id. It returns
// domain.ErrInvalidIdentifier, domain.ErrStoreUnavailable or
// domain.ErrNotFound.
func (s *CharterService) Get(ctx context.Context, rawID string) (*domain.ProjectCharter, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		logging.New(ctx).LogError("charters.get", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// ParseID accepts a base-10 integer, surrounding whitespace ignored.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidIdentifier
	}
	return id, nil
}
