package views

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ozzus/footdash/internal/domain/models"
)

func render(t *testing.T, page string, data any) *goquery.Document {
	t.Helper()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var sb strings.Builder
	if err := r.Render(&sb, page, data); err != nil {
		t.Fatalf("render %s: %v", page, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestRender_IndexPage(t *testing.T) {
	home, away := 2, 1
	doc := render(t, PageIndex, IndexPage{
		Competitions: models.DefaultCatalog().All(),
		Selected:     "PL",
		Date:         "2024-03-01",
		Matches: []models.Match{{
			ID:              1,
			LocalTime:       "01/03/2024 17:00",
			CompetitionCode: "PL",
			CompetitionName: "Premier League",
			HomeTeam:        models.Team{Name: "Arsenal FC"},
			AwayTeam:        models.Team{Name: "Chelsea FC"},
			Score:           models.Score{FullTime: models.ScoreLine{Home: &home, Away: &away}},
			Status:          "FINISHED",
		}},
		Alerts: []Alert{{Level: LevelWarning, Message: "<b>careful</b>"}},
	})

	if got := doc.Find("select#league option").Length(); got != 13 {
		t.Fatalf("expected 13 options, got %d", got)
	}
	if got := doc.Find("option[selected]").AttrOr("value", ""); got != "PL" {
		t.Fatalf("expected PL selected, got %q", got)
	}
	if got := doc.Find("input#date").AttrOr("value", ""); got != "2024-03-01" {
		t.Fatalf("unexpected date value %q", got)
	}

	row := doc.Find("tr.match").First()
	if row.Find(".score").Text() != "2 - 1" {
		t.Fatalf("unexpected score %q", row.Find(".score").Text())
	}
	if row.Find(".local-time").Text() != "01/03/2024 17:00" {
		t.Fatalf("unexpected local time %q", row.Find(".local-time").Text())
	}

	alert := doc.Find(".alert-warning")
	if alert.Length() != 1 || alert.Text() != "<b>careful</b>" {
		t.Fatalf("expected escaped warning text, got %q", alert.Text())
	}
}

func TestRender_IndexPageEmpty(t *testing.T) {
	doc := render(t, PageIndex, IndexPage{Date: "2024-03-01"})

	if doc.Find("table#matches").Length() != 0 {
		t.Fatal("expected no matches table")
	}
	if !strings.Contains(doc.Find("p.empty").Text(), "2024-03-01") {
		t.Fatalf("unexpected empty message %q", doc.Find("p.empty").Text())
	}
}

func TestRender_StandingsPage(t *testing.T) {
	matchday := 27
	doc := render(t, PageStandings, StandingsPage{
		Competition: models.Competition{Code: "SA", Name: "Serie A"},
		Season:      models.Season{StartDate: "2023-08-19", EndDate: "2024-05-26", CurrentMatchday: &matchday},
		Table: []models.StandingsRow{
			{Position: 1, Team: models.Team{Name: "FC Internazionale Milano"}, Points: 69, Form: "W,W,D"},
			{Position: 2, Team: models.Team{Name: "Juventus FC"}, Points: 57},
		},
	})

	if doc.Find("h1").Text() != "Serie A" {
		t.Fatalf("unexpected heading %q", doc.Find("h1").Text())
	}
	if !strings.Contains(doc.Find("p.season").Text(), "matchday 27") {
		t.Fatalf("unexpected season line %q", doc.Find("p.season").Text())
	}
	if doc.Find("tr.row").Length() != 2 {
		t.Fatalf("expected 2 rows, got %d", doc.Find("tr.row").Length())
	}
	if doc.Find("span.form-W").Length() != 2 || doc.Find("span.form-D").Length() != 1 {
		t.Fatal("expected form badges for W,W,D")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := r.Render(&strings.Builder{}, "missing.html", nil); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestFormatScore(t *testing.T) {
	one := 1
	if got := formatScore(models.ScoreLine{}); got != "-" {
		t.Fatalf("expected dash for missing score, got %q", got)
	}
	if got := formatScore(models.ScoreLine{Home: &one, Away: &one}); got != "1 - 1" {
		t.Fatalf("expected 1 - 1, got %q", got)
	}
}
