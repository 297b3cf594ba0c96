package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ozzus/footdash/internal/domain/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	PageIndex     = "index.html"
	PageStandings = "standings.html"
)

const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

type Alert struct {
	Level   string
	Message string
}

type IndexPage struct {
	Competitions []models.Competition
	Selected     string
	Date         string
	Matches      []models.Match
	Alerts       []Alert
}

type StandingsPage struct {
	Competition models.Competition
	Season      models.Season
	Table       []models.StandingsRow
	Alerts      []Alert
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"score":     formatScore,
		"formChars": formChars,
	}

	r := &Renderer{pages: make(map[string]*template.Template, 2)}
	for _, page := range []string{PageIndex, PageStandings} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render executes the page fully before writing so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

func formatScore(line models.ScoreLine) string {
	if line.Home == nil || line.Away == nil {
		return "-"
	}
	return fmt.Sprintf("%d - %d", *line.Home, *line.Away)
}

func formChars(form string) []string {
	if form == "" {
		return nil
	}
	out := make([]string, 0, 5)
	for _, c := range form {
		if c == ',' {
			continue
		}
		out = append(out, string(c))
	}
	return out
}
