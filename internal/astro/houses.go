package astro

import (
	"divination/internal/domain"
)

var houses = [housesInChart]domain.House{
	{ID: 1, Name: "House of Self", LifeArea: "identity"},
	{ID: 2, Name: "House of Value", LifeArea: "possessions"},
	{ID: 3, Name: "House of Sharing", LifeArea: "communication"},
	{ID: 4, Name: "House of Home", LifeArea: "family"},
	{ID: 5, Name: "House of Pleasure", LifeArea: "creativity"},
	{ID: 6, Name: "House of Health", LifeArea: "work"},
	{ID: 7, Name: "House of Partnership", LifeArea: "relationships"},
	{ID: 8, Name: "House of Transformation", LifeArea: "shared resources"},
	{ID: 9, Name: "House of Purpose", LifeArea: "philosophy"},
	{ID: 10, Name: "House of Enterprise", LifeArea: "career"},
	{ID: 11, Name: "House of Blessings", LifeArea: "community"},
	{ID: 12, Name: "House of Sacrifice", LifeArea: "subconscious"},
}

func Houses() []domain.House {
	out := make([]domain.House, len(houses))
	copy(out, houses[:])
	return out
}

// TallyHouses groups placements by their house. Every house is present in
// the result, in id order.
func TallyHouses(placements []domain.PlanetaryPlacement) []domain.HouseOccupancy {
	out := make([]domain.HouseOccupancy, len(houses))
	for i, h := range houses {
		out[i] = domain.HouseOccupancy{House: h, Planets: []domain.PlanetID{}}
	}
	for _, p := range placements {
		if p.House < 1 || p.House > len(houses) {
			continue
		}
		occ := &out[p.House-1]
		occ.Planets = append(occ.Planets, p.Planet)
		occ.Count++
		occ.Active = true
	}
	return out
}

// Distribution holds element and quality tallies for a set of placements.
type Distribution struct {
	Elements        map[domain.Element]int
	Qualities       map[domain.Quality]int
	DominantElement domain.Element
	DominantQuality domain.Quality
}

// TallyDistribution counts placements by the element and quality of their
// sign. Both maps always carry every key, so the sums equal len(placements)
// when every placement has a known sign.
func TallyDistribution(placements []domain.PlanetaryPlacement) Distribution {
	d := Distribution{
		Elements:  make(map[domain.Element]int, len(domain.Elements)),
		Qualities: make(map[domain.Quality]int, len(domain.Qualities)),
	}
	for _, e := range domain.Elements {
		d.Elements[e] = 0
	}
	for _, q := range domain.Qualities {
		d.Qualities[q] = 0
	}

	for _, p := range placements {
		sign, ok := SignByID(p.Sign)
		if !ok {
			continue
		}
		d.Elements[sign.Element]++
		d.Qualities[sign.Quality]++
	}

	d.DominantElement = domain.Elements[0]
	for _, e := range domain.Elements[1:] {
		if d.Elements[e] > d.Elements[d.DominantElement] {
			d.DominantElement = e
		}
	}
	d.DominantQuality = domain.Qualities[0]
	for _, q := range domain.Qualities[1:] {
		if d.Qualities[q] > d.Qualities[d.DominantQuality] {
			d.DominantQuality = q
		}
	}
	return d
}
