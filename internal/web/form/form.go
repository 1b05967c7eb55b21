// Package form holds the charter creation form: its editable state, the
// local checks run before submitting, and the client that posts to the
// creation endpoint.
package form

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Input names, shared with the HTML form.
const (
	InputNomeProjeto            = "nomeProjeto"
	InputObjetivo               = "objetivo"
	InputJustificativa          = "justificativa"
	InputStakeholdersPrincipais = "stakeholdersPrincipais"
	InputGerenteProjeto         = "gerenteProjeto"
	InputPremissas              = "premissas"
	InputRestricoes             = "restricoes"
	InputPrincipaisEntregas     = "principaisEntregas"
	InputOrcamentoEstimado      = "orcamentoEstimado"
	InputCronogramaInicial      = "cronogramaInicial"
	InputAutorizacaoFormal      = "autorizacaoFormal"
)

const (
	MsgInvalidBudget   = "Orçamento Estimado deve ser um número válido."
	MsgMissingSchedule = "Cronograma Inicial é obrigatório."
	MsgConnectivity    = "Falha ao conectar com o servidor. Tente novamente."
	msgCreatedPrefix   = "Projeto criado com sucesso! ID: "
	msgErrorPrefix     = "Erro ao criar projeto: "
)

// State mirrors every input of the form. OrcamentoEstimado stays text so the
// field can be empty. State is a value: updates return a new State.
type State struct {
	NomeProjeto            string
	Objetivo               string
	Justificativa          string
	StakeholdersPrincipais string
	GerenteProjeto         string
	Premissas              string
	Restricoes             string
	PrincipaisEntregas     string
	OrcamentoEstimado      string
	CronogramaInicial      string
	AutorizacaoFormal      bool
}

// With returns a copy of s with the named text input set. Unknown names are
// ignored.
func (s State) With(name, value string) State {
	switch name {
	case InputNomeProjeto:
		s.NomeProjeto = value
	case InputObjetivo:
		s.Objetivo = value
	case InputJustificativa:
		s.Justificativa = value
	case InputStakeholdersPrincipais:
		s.StakeholdersPrincipais = value
	case InputGerenteProjeto:
		s.GerenteProjeto = value
	case InputPremissas:
		s.Premissas = value
	case InputRestricoes:
		s.Restricoes = value
	case InputPrincipaisEntregas:
		s.PrincipaisEntregas = value
	case InputOrcamentoEstimado:
		s.OrcamentoEstimado = value
	case InputCronogramaInicial:
		s.CronogramaInicial = value
	}
	return s
}

func (s State) WithAuthorization(checked bool) State {
	s.AutorizacaoFormal = checked
	return s
}

// StateFromValues builds a State from submitted form values. A checkbox is
// only present in the values when checked.
func StateFromValues(values url.Values) State {
	var s State
	for name := range values {
		if name == InputAutorizacaoFormal {
			continue
		}
		s = s.With(name, values.Get(name))
	}
	_, checked := values[InputAutorizacaoFormal]
	return s.WithAuthorization(checked)
}

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

type Message struct {
	Kind    MessageKind
	Content string
}

// Submission is the JSON body sent to the creation endpoint.
type Submission struct {
	NomeProjeto            string  `json:"nomeProjeto"`
	Objetivo               string  `json:"objetivo"`
	Justificativa          string  `json:"justificativa"`
	StakeholdersPrincipais string  `json:"stakeholdersPrincipais"`
	GerenteProjeto         string  `json:"gerenteProjeto"`
	Premissas              string  `json:"premissas"`
	Restricoes             string  `json:"restricoes"`
	PrincipaisEntregas     string  `json:"principaisEntregas"`
	OrcamentoEstimado      float64 `json:"orcamentoEstimado"`
	CronogramaInicial      string  `json:"cronogramaInicial"`
	AutorizacaoFormal      bool    `json:"autorizacaoFormal"`
}

// Client sends a submission and returns the id of the created charter.
// Errors are *APIError for error responses and wrap ErrConnectivity when the
// server could not be reached or understood.
type Client interface {
	Create(ctx context.Context, sub Submission) (int64, error)
}

// Submit runs the local checks and, when they pass, sends the form. It
// returns the next state and the message to show. On success the state is
// reset to its empty defaults.
func Submit(ctx context.Context, client Client, s State) (State, Message) {
	budget, err := strconv.ParseFloat(strings.TrimSpace(s.OrcamentoEstimado), 64)
	if err != nil || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return s, Message{Kind: MessageError, Content: MsgInvalidBudget}
	}
	if s.CronogramaInicial == "" {
		return s, Message{Kind: MessageError, Content: MsgMissingSchedule}
	}

	id, err := client.Create(ctx, Submission{
		NomeProjeto:            s.NomeProjeto,
		Objetivo:               s.Objetivo,
		Justificativa:          s.Justificativa,
		StakeholdersPrincipais: s.StakeholdersPrincipais,
		GerenteProjeto:         s.GerenteProjeto,
		Premissas:              s.Premissas,
		Restricoes:             s.Restricoes,
		PrincipaisEntregas:     s.PrincipaisEntregas,
		OrcamentoEstimado:      budget,
		CronogramaInicial:      s.CronogramaInicial,
		AutorizacaoFormal:      s.AutorizacaoFormal,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return s, Message{Kind: MessageError, Content: msgErrorPrefix + apiErr.Message}
		}
		return s, Message{Kind: MessageError, Content: MsgConnectivity}
	}

	return State{}, Message{Kind: MessageSuccess, Content: fmt.Sprintf("%s%d", msgCreatedPrefix, id)}
}
