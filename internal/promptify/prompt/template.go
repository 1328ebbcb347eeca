// Package prompt holds the instructional template that wraps a user request
// before it is sent to the text-generation provider.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed prompt.tmpl
var templateText string

var instructions = template.Must(
	template.New("prompt").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		Parse(templateText),
)

type templateData struct {
	Request    string
	Techniques []Technique
}

// Build embeds request verbatim into the instructional template. The result
// depends on request alone.
func Build(request string) (string, error) {
	var sb strings.Builder
	err := instructions.Execute(
		&sb, templateData{
			Request:    request,
			Techniques: Techniques,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}
	return sb.String(), nil
}
