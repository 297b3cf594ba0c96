package mappers

import (
	"github.com/ozzus/footdash/internal/domain/models"
	"github.com/ozzus/footdash/internal/infrastructures/footballdata/dto"
)

func ToDomainStandings(resp dto.GetStandingsResponse) models.Standings {
	blocks := make([]models.StandingsBlock, 0, len(resp.Standings))
	for _, b := range resp.Standings {
		table := make([]models.StandingsRow, 0, len(b.Table))
		for _, row := range b.Table {
			table = append(table, models.StandingsRow{
				Position:       row.Position,
				Team:           toDomainTeam(row.Team),
				PlayedGames:    row.PlayedGames,
				Form:           derefString(row.Form),
				Won:            row.Won,
				Draw:           row.Draw,
				Lost:           row.Lost,
				Points:         row.Points,
				GoalsFor:       row.GoalsFor,
				GoalsAgainst:   row.GoalsAgainst,
				GoalDifference: row.GoalDifference,
			})
		}

		blocks = append(blocks, models.StandingsBlock{
			Stage: b.Stage,
			Type:  b.Type,
			Group: derefString(b.Group),
			Table: table,
		})
	}

	return models.Standings{
		Season: models.Season{
			StartDate:       resp.Season.StartDate,
			EndDate:         resp.Season.EndDate,
			CurrentMatchday: resp.Season.CurrentMatchday,
		},
		Blocks: blocks,
	}
}
