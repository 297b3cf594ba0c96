package models

import "testing"

func TestSelectStandingsTable(t *testing.T) {
	r1 := StandingsRow{Position: 1, Team: Team{Name: "Home leader"}}
	r2 := StandingsRow{Position: 1, Team: Team{Name: "Overall leader"}}
	r3 := StandingsRow{Position: 1, Team: Team{Name: "Away leader"}}

	tests := []struct {
		name     string
		blocks   []StandingsBlock
		wantLen  int
		wantTeam string
	}{
		{
			name:    "no blocks",
			blocks:  nil,
			wantLen: 0,
		},
		{
			name: "total block wins over earlier blocks",
			blocks: []StandingsBlock{
				{Type: "HOME", Table: []StandingsRow{r1}},
				{Type: "TOTAL", Table: []StandingsRow{r2}},
			},
			wantLen:  1,
			wantTeam: "Overall leader",
		},
		{
			name: "first block when no total",
			blocks: []StandingsBlock{
				{Type: "HOME", Table: []StandingsRow{r1}},
				{Type: "AWAY", Table: []StandingsRow{r3}},
			},
			wantLen:  1,
			wantTeam: "Home leader",
		},
		{
			name: "first total among several",
			blocks: []StandingsBlock{
				{Type: "TOTAL", Group: "GROUP_A", Table: []StandingsRow{r2}},
				{Type: "TOTAL", Group: "GROUP_B", Table: []StandingsRow{r3}},
			},
			wantLen:  1,
			wantTeam: "Overall leader",
		},
		{
			name: "block without table",
			blocks: []StandingsBlock{
				{Type: "TOTAL"},
			},
			wantLen: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectStandingsTable(tc.blocks)
			if got == nil {
				t.Fatal("expected non-nil table")
			}
			if len(got) != tc.wantLen {
				t.Fatalf("expected %d rows, got %d", tc.wantLen, len(got))
			}
			if tc.wantLen > 0 && got[0].Team.Name != tc.wantTeam {
				t.Fatalf("expected %q, got %q", tc.wantTeam, got[0].Team.Name)
			}
		})
	}
}
