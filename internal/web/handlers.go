// Package web serves the server-rendered pages: the charter listing, the
// detail page and the creation form.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
	"github.com/projeto-charter/charter-backend/internal/logging"
	"github.com/projeto-charter/charter-backend/internal/web/form"
)

// CharterReader is the read side of the charter service.
type CharterReader interface {
	List(ctx context.Context) []domain.ProjectCharter
	Get(ctx context.Context, rawID string) (*domain.ProjectCharter, error)
}

type Handler struct {
	charters CharterReader
	forms    form.Client
	now      func() time.Time
}

func New(charters CharterReader, forms form.Client) *Handler {
	return &Handler{charters: charters, forms: forms, now: time.Now}
}

// Register installs the templates and page routes on r, including the
// NoRoute page.
func (h *Handler) Register(r *gin.Engine) {
	r.SetHTMLTemplate(parseTemplates())

	r.GET("/", h.index)
	r.GET("/projetos/novo", h.newForm)
	r.POST("/projetos/novo", h.submitForm)
	r.GET("/projetos/:id", h.detail)
	r.NoRoute(h.notFound)
}

type page struct {
	Title    string
	Year     int
	Charters []domain.ProjectCharter
	Charter  *domain.ProjectCharter
	Heading  string
	Message  string
}

type formPage struct {
	Title   string
	Year    int
	Form    form.State
	Message *form.Message
}

func (h *Handler) year() int {
	return h.now().Year()
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", page{
		Year:     h.year(),
		Charters: h.charters.List(c.Request.Context()),
	})
}

func (h *Handler) detail(c *gin.Context) {
	charter, err := h.charters.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.HTML(http.StatusOK, "detail", page{
			Title:   charter.NomeProjeto,
			Year:    h.year(),
			Charter: charter,
		})
	case errors.Is(err, domain.ErrInvalidIdentifier):
		c.HTML(http.StatusBadRequest, "detail_error", page{
			Title:   "ID Inválido",
			Year:    h.year(),
			Heading: "ID de Projeto Inválido",
			Message: "O ID do projeto fornecido não é válido.",
		})
	case errors.Is(err, domain.ErrNotFound):
		h.notFound(c)
	default:
		c.HTML(http.StatusServiceUnavailable, "detail_error", page{
			Title:   "Erro",
			Year:    h.year(),
			Heading: "Erro ao Carregar Projeto",
			Message: "Ocorreu um erro ao carregar os detalhes do projeto. Por favor, tente novamente mais tarde.",
		})
	}
}

func (h *Handler) newForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form", formPage{
		Title: "Novo Projeto",
		Year:  h.year(),
	})
}

func (h *Handler) submitForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		logging.New(c.Request.Context()).LogWarnf("web.form", "parse error=%v", err)
		c.HTML(http.StatusBadRequest, "form", formPage{
			Title: "Novo Projeto",
			Year:  h.year(),
		})
		return
	}

	next, msg := form.Submit(c.Request.Context(), h.forms, form.StateFromValues(c.Request.PostForm))
	if msg.Kind == form.MessageError {
		logging.New(c.Request.Context()).LogInfof("web.form", "message=%q", msg.Content)
	}

	c.HTML(http.StatusOK, "form", formPage{
		Title:   "Novo Projeto",
		Year:    h.year(),
		Form:    next,
		Message: &msg,
	})
}

func (h *Handler) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found", page{
		Title: "Página não encontrada",
		Year:  h.year(),
	})
}
