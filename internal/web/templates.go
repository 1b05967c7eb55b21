package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"shortDate":    formatShortDate,
	"longDate":     formatLongDate,
	"longDateTime": formatLongDateTime,
	"currency":     formatCurrency,
	"yesNo":        yesNo,
	"excerpt":      excerpt,
}

// parseTemplates panics on a bad template; they are compiled into the binary.
func parseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}
