package http

import (
	"context"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
)

// CharterService is what the HTTP layer needs from the charter service.
type CharterService interface {
	Create(ctx context.Context, body []byte) (*domain.ProjectCharter, error)
	List(ctx context.Context) []domain.ProjectCharter
	Get(ctx context.Context, rawID string) (*domain.ProjectCharter, error)
}

// Handler bundles the dependencies for charter HTTP endpoints.
type Handler struct {
	svc CharterService
}

func New(svc CharterService) *Handler {
	return &Handler{svc: svc}
}
