package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
	"github.com/projeto-charter/charter-backend/internal/logging"
)

const (
	msgInvalidJSON   = "Invalid JSON in request body"
	msgMissingFields = "Missing required fields"
	msgInvalidTypes  = "Invalid data types"
	msgInvalidDate   = "Invalid cronogramaInicial date format"
	msgCreateFailed  = "Failed to create project charter"
	msgInvalidID     = "Invalid project charter id"
	msgLoadFailed    = "Failed to load project charter"
	msgNotFound      = "Project charter not found"
)

func (h *Handler) create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logging.New(c.Request.Context()).LogError("charters.create.read_body", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCreateFailed})
		return
	}

	charter, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		status, msg := createErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, charter)
}

func createErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		return http.StatusBadRequest, msgInvalidJSON
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, msgMissingFields
	case errors.Is(err, domain.ErrInvalidType):
		return http.StatusBadRequest, msgInvalidTypes
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, msgInvalidDate
	default:
		return http.StatusInternalServerError, msgCreateFailed
	}
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

func (h *Handler) get(c *gin.Context) {
	charter, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidIdentifier):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidID})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgLoadFailed})
		}
		return
	}
	c.JSON(http.StatusOK, charter)
}
