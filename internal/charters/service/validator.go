package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/projeto-charter/charter-backend/internal/charters/domain"
)

// Payload keys accepted by the creation path.
const (
	FieldNomeProjeto            = "nomeProjeto"
	FieldObjetivo               = "objetivo"
	FieldJustificativa          = "justificativa"
	FieldStakeholdersPrincipais = "stakeholdersPrincipais"
	FieldGerenteProjeto         = "gerenteProjeto"
	FieldPremissas              = "premissas"
	FieldRestricoes             = "restricoes"
	FieldPrincipaisEntregas     = "principaisEntregas"
	FieldOrcamentoEstimado      = "orcamentoEstimado"
	FieldCronogramaInicial      = "cronogramaInicial"
	FieldAutorizacaoFormal      = "autorizacaoFormal"
)

var textFields = []string{
	FieldNomeProjeto,
	FieldObjetivo,
	FieldJustificativa,
	FieldStakeholdersPrincipais,
	FieldGerenteProjeto,
	FieldPremissas,
	FieldRestricoes,
	FieldPrincipaisEntregas,
}

// ParsePayload decodes a request body into an untyped payload. A body that is
// valid JSON but not an object yields an empty payload.
func ParsePayload(body []byte) (map[string]any, error) {
	if !json.Valid(body) {
		return nil, domain.ErrMalformedInput
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	payload, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return payload, nil
}

// ValidatePayload runs the presence, type and date checks in that order and
// returns the record to insert. autorizacaoFormal is never taken from the
// payload.
func ValidatePayload(payload map[string]any) (*domain.ProjectCharter, error) {
	for _, k := range textFields {
		if isFalsy(payload[k]) {
			return nil, domain.ErrMissingField
		}
	}
	// 0 is a valid budget; only an absent key counts as missing.
	if _, ok := payload[FieldOrcamentoEstimado]; !ok {
		return nil, domain.ErrMissingField
	}
	if isFalsy(payload[FieldCronogramaInicial]) {
		return nil, domain.ErrMissingField
	}

	text := make(map[string]string, len(textFields))
	for _, k := range textFields {
		s, ok := payload[k].(string)
		if !ok {
			return nil, domain.ErrInvalidType
		}
		text[k] = s
	}
	budget, ok := asNumber(payload[FieldOrcamentoEstimado])
	if !ok {
		return nil, domain.ErrInvalidType
	}

	var schedule time.Time
	switch v := payload[FieldCronogramaInicial].(type) {
	case string:
		t, err := ParseScheduleDate(v)
		if err != nil {
			return nil, err
		}
		schedule = t
	case time.Time:
		if v.IsZero() {
			return nil, domain.ErrInvalidDate
		}
		schedule = v.UTC()
	default:
		return nil, domain.ErrInvalidType
	}

	return &domain.ProjectCharter{
		NomeProjeto:            text[FieldNomeProjeto],
		Objetivo:               text[FieldObjetivo],
		Justificativa:          text[FieldJustificativa],
		StakeholdersPrincipais: text[FieldStakeholdersPrincipais],
		GerenteProjeto:         text[FieldGerenteProjeto],
		Premissas:              text[FieldPremissas],
		Restricoes:             text[FieldRestricoes],
		PrincipaisEntregas:     text[FieldPrincipaisEntregas],
		OrcamentoEstimado:      budget,
		CronogramaInicial:      schedule,
		AutorizacaoFormal:      false,
	}, nil
}

// ParseScheduleDate normalizes a textual date to a UTC instant. Inputs without
// an offset are read as UTC.
func ParseScheduleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.ErrInvalidDate
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t.UTC(), nil
}

// isFalsy reports the values a loosely typed client treats as "not provided".
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0 || math.IsNaN(x)
	case int:
		return x == 0
	case int64:
		return x == 0
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	case time.Time:
		return x.IsZero()
	default:
		return false
	}
}

func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
