package dto

type Season struct {
	ID              int64  `json:"id"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	CurrentMatchday *int   `json:"currentMatchday"`
}

type TableRow struct {
	Position       int     `json:"position"`
	Team           Team    `json:"team"`
	PlayedGames    int     `json:"playedGames"`
	Form           *string `json:"form"`
	Won            int     `json:"won"`
	Draw           int     `json:"draw"`
	Lost           int     `json:"lost"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

type StandingsBlock struct {
	Stage string     `json:"stage"`
	Type  string     `json:"type"`
	Group *string    `json:"group"`
	Table []TableRow `json:"table"`
}

type GetStandingsResponse struct {
	Competition Competition      `json:"competition"`
	Season      Season           `json:"season"`
	Standings   []StandingsBlock `json:"standings"`
}
