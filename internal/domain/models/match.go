package models

type Team struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	TLA       string `json:"tla,omitempty"`
	Crest     string `json:"crest,omitempty"`
}

type ScoreLine struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type Score struct {
	Winner   string    `json:"winner,omitempty"`
	Duration string    `json:"duration,omitempty"`
	FullTime ScoreLine `json:"fullTime"`
	HalfTime ScoreLine `json:"halfTime"`
}

// Match is an upstream fixture plus the two fields derived per request.
// UTCDate keeps the upstream string untouched; ordering relies on it.
type Match struct {
	ID          int64  `json:"id"`
	UTCDate     string `json:"utcDate"`
	Status      string `json:"status"`
	Matchday    *int   `json:"matchday,omitempty"`
	Stage       string `json:"stage,omitempty"`
	Group       string `json:"group,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	HomeTeam    Team   `json:"homeTeam"`
	AwayTeam    Team   `json:"awayTeam"`
	Score       Score  `json:"score"`

	LocalTime       string `json:"localTime"`
	CompetitionCode string `json:"competitionCode"`
	CompetitionName string `json:"competitionName"`
}
