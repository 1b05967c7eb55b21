package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
	"github.com/projeto-charter/charter-backend/internal/charters/service"
)

type stubRepo struct {
	rows []domain.ProjectCharter
	err  error
}

func (r *stubRepo) Insert(_ context.Context, c *domain.ProjectCharter) error {
	if r.err != nil {
		return r.err
	}
	c.ID = int64(len(r.rows) + 1)
	c.CreatedAt = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	c.UpdatedAt = c.CreatedAt
	r.rows = append(r.rows, *c)
	return nil
}

func (r *stubRepo) FindByID(_ context.Context, id int64) (*domain.ProjectCharter, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.rows {
		if c.ID == id {
			row := c
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) FindAllOrderedByCreatedDesc(context.Context) ([]domain.ProjectCharter, error) {
	return r.rows, r.err
}

const doc = `{
	"nomeProjeto": "Portal",
	"objetivo": "Atender",
	"justificativa": "Filas",
	"stakeholdersPrincipais": "Diretoria",
	"gerenteProjeto": "Ana",
	"premissas": "Equipe",
	"restricoes": "Prazo",
	"principaisEntregas": "Portal web",
	"orcamentoEstimado": 10,
	"cronogramaInicial": "2025-03-10"
}`

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ee *exitErr
	require.True(t, errors.As(err, &ee), "expected exitErr, got %v", err)
	return ee.code
}

func TestRunCreateThenShow(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCharterService(&stubRepo{}, nil)

	var out bytes.Buffer
	require.NoError(t, runCreate(ctx, svc, &out, []byte(doc), false))
	assert.Equal(t, "created charter 1\n", out.String())

	out.Reset()
	require.NoError(t, runShow(ctx, svc, &out, "1", false))
	assert.Contains(t, out.String(), "Portal")
	assert.Contains(t, out.String(), "2025-03-10")

	out.Reset()
	require.NoError(t, runShow(ctx, svc, &out, "1", true))
	var got domain.ProjectCharter
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Ana", got.GerenteProjeto)
}

func TestRunCreate_Errors(t *testing.T) {
	ctx := context.Background()

	err := runCreate(ctx, service.NewCharterService(&stubRepo{}, nil), &bytes.Buffer{}, []byte(`{`), false)
	assert.Equal(t, 2, exitCode(t, err))

	err = runCreate(ctx, service.NewCharterService(&stubRepo{err: errors.New("down")}, nil), &bytes.Buffer{}, []byte(doc), false)
	assert.Equal(t, 4, exitCode(t, err))
}

func TestRunShow_Errors(t *testing.T) {
	ctx := context.Background()
	svc := service.NewCharterService(&stubRepo{}, nil)

	assert.Equal(t, 2, exitCode(t, runShow(ctx, svc, &bytes.Buffer{}, "abc", false)))
	assert.Equal(t, 5, exitCode(t, runShow(ctx, svc, &bytes.Buffer{}, "9", false)))

	down := service.NewCharterService(&stubRepo{err: errors.New("down")}, nil)
	assert.Equal(t, 4, exitCode(t, runShow(ctx, down, &bytes.Buffer{}, "1", false)))
}

func TestRunList(t *testing.T) {
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, runList(ctx, service.NewCharterService(&stubRepo{}, nil), &out, false))
	assert.Equal(t, "no charters\n", out.String())

	out.Reset()
	require.NoError(t, runList(ctx, service.NewCharterService(&stubRepo{}, nil), &out, true))
	assert.Equal(t, "[]", strings.TrimSpace(out.String()))

	svc := service.NewCharterService(&stubRepo{}, nil)
	require.NoError(t, runCreate(ctx, svc, &bytes.Buffer{}, []byte(doc), false))
	out.Reset()
	require.NoError(t, runList(ctx, svc, &out, false))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Portal")
	assert.Contains(t, lines[1], "2025-05-01 09:00")
}

func TestReadInput(t *testing.T) {
	b, err := readInput("-", strings.NewReader("{}"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	_, err = readInput("/does/not/exist.json", nil)
	assert.Error(t, err)
}
