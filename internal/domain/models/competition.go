package models

import "strings"

type Competition struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Catalog is an ordered, read-only set of competitions keyed by code.
type Catalog struct {
	items  []Competition
	byCode map[string]Competition
}

func NewCatalog(items []Competition) *Catalog {
	c := &Catalog{
		items:  make([]Competition, 0, len(items)),
		byCode: make(map[string]Competition, len(items)),
	}
	for _, item := range items {
		code := normalizeCode(item.Code)
		if code == "" {
			continue
		}
		if _, ok := c.byCode[code]; ok {
			continue
		}
		item.Code = code
		c.items = append(c.items, item)
		c.byCode[code] = item
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog([]Competition{
		{Code: "WC", Name: "FIFA World Cup"},
		{Code: "CL", Name: "UEFA Champions League"},
		{Code: "BL1", Name: "Bundesliga"},
		{Code: "DED", Name: "Eredivisie"},
		{Code: "BSA", Name: "Campeonato Brasileiro Série A"},
		{Code: "PD", Name: "Primera Division"},
		{Code: "FL1", Name: "Ligue 1"},
		{Code: "ELC", Name: "Championship"},
		{Code: "PPL", Name: "Primeira Liga"},
		{Code: "EC", Name: "European Championship"},
		{Code: "SA", Name: "Serie A"},
		{Code: "PL", Name: "Premier League"},
	})
}

// All returns a copy so callers cannot reorder the catalog.
func (c *Catalog) All() []Competition {
	out := make([]Competition, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.items))
	for _, item := range c.items {
		codes = append(codes, item.Code)
	}
	return codes
}

func (c *Catalog) Lookup(code string) (Competition, bool) {
	comp, ok := c.byCode[normalizeCode(code)]
	return comp, ok
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
