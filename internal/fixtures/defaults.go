// Package fixtures holds explicit reference data: the generic club table
// used when a player has no measured distances, and loaders for fixture files.
package fixtures

import "github.com/stitts-dev/caddie/internal/models"

var defaultDispersion = map[models.ClubType]float64{
	models.ClubDriver:        20,
	models.ClubWood3:         18,
	models.ClubWood5:         15,
	models.ClubHybrid:        14,
	models.ClubIron2:         15,
	models.ClubIron3:         14,
	models.ClubIron4:         13,
	models.ClubIron5:         12,
	models.ClubIron6:         10,
	models.ClubIron7:         9,
	models.ClubIron8:         8,
	models.ClubIron9:         7,
	models.ClubPitchingWedge: 5,
	models.ClubGapWedge:      5,
	models.ClubSandWedge:     6,
	models.ClubLobWedge:      7,
}

// DispersionFor returns a typical dispersion for a club, 10 yards when unknown
func DispersionFor(club models.ClubType) float64 {
	if d, ok := defaultDispersion[club]; ok {
		return d
	}
	return 10
}

var genericBag = []struct {
	club         models.ClubType
	carry, total float64
}{
	{models.ClubDriver, 230, 255},
	{models.ClubWood3, 210, 228},
	{models.ClubWood5, 195, 210},
	{models.ClubHybrid, 185, 198},
	{models.ClubIron4, 175, 186},
	{models.ClubIron5, 165, 175},
	{models.ClubIron6, 155, 164},
	{models.ClubIron7, 145, 152},
	{models.ClubIron8, 135, 141},
	{models.ClubIron9, 125, 130},
	{models.ClubPitchingWedge, 115, 119},
	{models.ClubGapWedge, 102, 105},
	{models.ClubSandWedge, 88, 90},
	{models.ClubLobWedge, 70, 72},
}

// DefaultClubs returns a fresh copy of the generic mid-handicap bag
func DefaultClubs() []models.ClubDistance {
	clubs := make([]models.ClubDistance, 0, len(genericBag))
	for _, c := range genericBag {
		clubs = append(clubs, models.ClubDistance{
			Club:            c.club,
			CarryYards:      c.carry,
			TotalYards:      c.total,
			DispersionYards: DispersionFor(c.club),
			Method:          models.MeasuredDefault,
		})
	}
	return clubs
}

// DefaultBaseline builds a baseline from the generic bag
func DefaultBaseline(playerID, playerName string) models.PlayerBaseline {
	return models.PlayerBaseline{
		PlayerID:   playerID,
		PlayerName: playerName,
		Clubs:      DefaultClubs(),
	}
}
