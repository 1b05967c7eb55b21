package web

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const notAvailable = "N/A"

var monthsLong = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var monthsShort = [...]string{
	"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
	"jul.", "ago.", "set.", "out.", "nov.", "dez.",
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formatShortDate renders "15 de out. de 2026".
func formatShortDate(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	t = t.UTC()
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsShort[t.Month()-1], t.Year())
}

// formatLongDate renders "10 de março de 2025".
func formatLongDate(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	t = t.UTC()
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsLong[t.Month()-1], t.Year())
}

// formatLongDateTime renders "15 de outubro de 2026 às 14:30".
func formatLongDateTime(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	t = t.UTC()
	return fmt.Sprintf("%s às %02d:%02d", formatLongDate(t), t.Hour(), t.Minute())
}

// formatCurrency renders an amount in reais, e.g. "R$ 1.234,50".
func formatCurrency(amount float64) string {
	if amount < 0 {
		return "-R$ " + ptBR.Sprintf("%.2f", -amount)
	}
	return "R$ " + ptBR.Sprintf("%.2f", amount)
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// excerpt cuts s to at most n runes, adding an ellipsis when cut.
func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimRightFunc(string(r[:n]), unicode.IsSpace) + "…"
}
