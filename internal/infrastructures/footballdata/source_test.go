package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	derr "github.com/ozzus/footdash/internal/domain/errors"
	fdclient "github.com/ozzus/footdash/internal/infrastructures/footballdata/http/client"
	"github.com/ozzus/footdash/internal/infrastructures/metrics"
)

func TestSource_FetchMatchesAndStandings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/competitions/BSA/matches":
			_, _ = w.Write([]byte(`{"matches":[
				{"id":2,"utcDate":"2024-04-14T21:00:00Z","status":"SCHEDULED","homeTeam":{"name":"Palmeiras"},"awayTeam":{"name":"Vitória"},"score":{}},
				{"id":1,"utcDate":"2024-04-14T19:00:00Z","status":"SCHEDULED","homeTeam":{"name":"Flamengo"},"awayTeam":{"name":"Atlético-GO"},"score":{}}
			]}`))
		case "/competitions/BSA/standings":
			_, _ = w.Write([]byte(`{"season":{"startDate":"2024-04-13"},"standings":[{"type":"TOTAL","table":[{"position":1,"team":{"name":"Flamengo"},"points":3}]}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	source := NewSource(fdclient.NewClient(srv.URL, "token", srv.Client(), metrics.New()))

	matches, err := source.FetchMatches(context.Background(), "BSA", "2024-04-14")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(matches) != 2 || matches[0].ID != 2 {
		t.Fatalf("expected upstream order to be kept, got %+v", matches)
	}

	standings, err := source.FetchStandings(context.Background(), "BSA")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(standings.Blocks) != 1 || standings.Blocks[0].Table[0].Team.Name != "Flamengo" {
		t.Fatalf("unexpected standings: %+v", standings)
	}
}

func TestSource_FetchMatches_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	source := NewSource(fdclient.NewClient(srv.URL, "token", srv.Client(), nil))
	_, err := source.FetchMatches(context.Background(), "PL", "2024-03-01")
	if !errors.Is(err, derr.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}
