package handlers

import (
	"net/http"
	"strings"

	"github.com/ozzus/footdash/internal/application/localtime"
)

func parseLeague(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("league")))
}

// parseCodes splits a comma separated league list, dropping empty items.
func parseCodes(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		code := strings.ToUpper(strings.TrimSpace(p))
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// parseDate returns the trimmed date query value. An absent value is valid
// and means today.
func parseDate(r *http.Request) (value string, valid bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return "", true
	}
	if _, err := localtime.ParseDay(raw); err != nil {
		return raw, false
	}
	return raw, true
}
