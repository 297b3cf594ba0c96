package dto

type Team struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type Competition struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Type   string `json:"type"`
	Emblem string `json:"emblem"`
}

type ScoreLine struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type Score struct {
	Winner   *string   `json:"winner"`
	Duration string    `json:"duration"`
	FullTime ScoreLine `json:"fullTime"`
	HalfTime ScoreLine `json:"halfTime"`
}

type Match struct {
	ID          int64   `json:"id"`
	UTCDate     string  `json:"utcDate"`
	Status      string  `json:"status"`
	Matchday    *int    `json:"matchday"`
	Stage       string  `json:"stage"`
	Group       *string `json:"group"`
	LastUpdated string  `json:"lastUpdated"`
	HomeTeam    Team    `json:"homeTeam"`
	AwayTeam    Team    `json:"awayTeam"`
	Score       Score   `json:"score"`
}

type ResultSet struct {
	Count int `json:"count"`
}

type GetMatchesResponse struct {
	Competition Competition `json:"competition"`
	ResultSet   ResultSet   `json:"resultSet"`
	Matches     []Match     `json:"matches"`
}
