package digest

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed digest.html.tmpl
var digestTemplate string

//previewChars is how much body text a lead card shows
const previewChars = 350

// Render produces the HTML report for a digest, covering the lead, the
// zero-lead and the failure variants.
func Render(d Digest) (string, error) {
	// Add custom functions used by the lead cards
	funcMap := template.FuncMap{
		"join":    strings.Join,
		"preview": preview,
		"take":    take,
		"inc":     func(i int) int { return i + 1 },
	}

	tmpl, err := template.New("digest").Funcs(funcMap).Parse(digestTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewChars {
		return s
	}
	return string(runes[:previewChars]) + "..."
}

func take(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
