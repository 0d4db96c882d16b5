package memory

import (
	"time"

	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
	"github.com/leaguepulse/leaguepulse/internal/domain/team"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "tm-persija", Name: "Persija Jakarta", Manager: "Carlos Pena", Stadium: "Jakarta International Stadium", Logo: "https://cdn.leaguepulse.dev/logos/persija.png"},
		{ID: "tm-persib", Name: "Persib Bandung", Manager: "Bojan Hodak", Stadium: "Gelora Bandung Lautan Api", Logo: "https://cdn.leaguepulse.dev/logos/persib.png"},
		{ID: "tm-persebaya", Name: "Persebaya Surabaya", Manager: "Paul Munster", Stadium: "Gelora Bung Tomo", Logo: "https://cdn.leaguepulse.dev/logos/persebaya.png"},
		{ID: "tm-baliutd", Name: "Bali United", Manager: "Stefano Cugurra", Stadium: "Kapten I Wayan Dipta", Logo: "https://cdn.leaguepulse.dev/logos/baliutd.png"},
		{ID: "tm-arsenal", Name: "Arsenal", Manager: "Mikel Arteta", Stadium: "Emirates Stadium", Logo: "https://cdn.leaguepulse.dev/logos/arsenal.png"},
		{ID: "tm-liverpool", Name: "Liverpool", Manager: "Arne Slot", Stadium: "Anfield", Logo: "https://cdn.leaguepulse.dev/logos/liverpool.png"},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:         "fx-001",
			HomeTeamID: "tm-persija",
			AwayTeamID: "tm-persib",
			Date:       time.Date(2027, 2, 14, 19, 0, 0, 0, time.UTC),
			Status:     fixture.StatusPending,
		},
		{
			ID:         "fx-002",
			HomeTeamID: "tm-persebaya",
			AwayTeamID: "tm-baliutd",
			Date:       time.Date(2027, 2, 15, 12, 30, 0, 0, time.UTC),
			Status:     fixture.StatusPending,
		},
		{
			ID:         "fx-003",
			HomeTeamID: "tm-persib",
			AwayTeamID: "tm-persebaya",
			Date:       time.Date(2027, 2, 21, 12, 30, 0, 0, time.UTC),
			Status:     fixture.StatusPending,
		},
		{
			ID:         "fx-004",
			HomeTeamID: "tm-baliutd",
			AwayTeamID: "tm-persija",
			Date:       time.Date(2027, 2, 22, 12, 30, 0, 0, time.UTC),
			Status:     fixture.StatusPending,
		},
		{
			ID:         "fx-005",
			HomeTeamID: "tm-arsenal",
			AwayTeamID: "tm-liverpool",
			Date:       time.Date(2027, 2, 14, 15, 0, 0, 0, time.UTC),
			Status:     fixture.StatusPending,
		},
	}
}
