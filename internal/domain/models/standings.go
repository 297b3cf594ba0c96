package models

const StandingsTypeTotal = "TOTAL"

type StandingsRow struct {
	Position       int    `json:"position"`
	Team           Team   `json:"team"`
	PlayedGames    int    `json:"playedGames"`
	Form           string `json:"form,omitempty"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	Points         int    `json:"points"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
}

type StandingsBlock struct {
	Stage string
	Type  string
	Group string
	Table []StandingsRow
}

type Season struct {
	StartDate       string `json:"startDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	CurrentMatchday *int   `json:"currentMatchday,omitempty"`
}

type Standings struct {
	Season Season
	Blocks []StandingsBlock
}

// SelectStandingsTable returns the table of the first TOTAL block, falling back
// to the first block. The result is never nil.
func SelectStandingsTable(blocks []StandingsBlock) []StandingsRow {
	if len(blocks) == 0 {
		return []StandingsRow{}
	}

	table := blocks[0].Table
	for _, block := range blocks {
		if block.Type == StandingsTypeTotal {
			table = block.Table
			break
		}
	}

	if table == nil {
		return []StandingsRow{}
	}
	return table
}
