package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
)

type charterService interface {
	Create(ctx context.Context, body []byte) (*domain.ProjectCharter, error)
	List(ctx context.Context) []domain.ProjectCharter
	Get(ctx context.Context, rawID string) (*domain.ProjectCharter, error)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func runList(ctx context.Context, svc charterService, w io.Writer, asJSON bool) error {
	items := svc.List(ctx)
	if asJSON {
		return writeJSON(w, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "no charters")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMANAGER\tCREATED")
	for _, c := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.NomeProjeto, c.GerenteProjeto, c.CreatedAt.UTC().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func runShow(ctx context.Context, svc charterService, w io.Writer, rawID string, asJSON bool) error {
	c, err := svc.Get(ctx, rawID)
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier):
		return codeError(2, "invalid charter id %q", rawID)
	case errors.Is(err, domain.ErrNotFound):
		return codeError(5, "charter %s not found", rawID)
	case err != nil:
		return codeError(4, "%s", err)
	}

	if asJSON {
		return writeJSON(w, c)
	}
	printCharter(w, c)
	return nil
}

func runCreate(ctx context.Context, svc charterService, w io.Writer, body []byte, asJSON bool) error {
	c, err := svc.Create(ctx, body)
	if err != nil {
		if errors.Is(err, domain.ErrInternalFailure) {
			return codeError(4, "%s", err)
		}
		return codeError(2, "%s", err)
	}

	if asJSON {
		return writeJSON(w, c)
	}
	fmt.Fprintf(w, "created charter %d\n", c.ID)
	return nil
}

func printCharter(w io.Writer, c *domain.ProjectCharter) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"ID", fmt.Sprint(c.ID)},
		{"Name", c.NomeProjeto},
		{"Manager", c.GerenteProjeto},
		{"Objective", c.Objetivo},
		{"Justification", c.Justificativa},
		{"Stakeholders", c.StakeholdersPrincipais},
		{"Assumptions", c.Premissas},
		{"Constraints", c.Restricoes},
		{"Deliverables", c.PrincipaisEntregas},
		{"Budget", fmt.Sprintf("%.2f", c.OrcamentoEstimado)},
		{"Schedule", c.CronogramaInicial.UTC().Format("2006-01-02")},
		{"Authorized", fmt.Sprint(c.AutorizacaoFormal)},
		{"Created", c.CreatedAt.UTC().Format("2006-01-02 15:04:05")},
		{"Updated", c.UpdatedAt.UTC().Format("2006-01-02 15:04:05")},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	_ = tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
