package aggregation

import (
	"sort"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

// SortByNumber returns a copy of houses ordered by house number. Houses
// without a usable number keep their relative order at the end.
func SortByNumber(houses []*models.House) []*models.House {
	out := make([]*models.House, len(houses))
	copy(out, houses)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].EffectiveNumber(), out[j].EffectiveNumber()
		if a == 0 || b == 0 {
			return b == 0 && a != 0
		}
		return a < b
	})
	return out
}

// PremiumCount counts the outdoor houses whose number is premium.
func PremiumCount(houses []*models.House) int {
	n := 0
	for _, h := range houses {
		if models.IsPremium(h.Type, h.EffectiveNumber()) {
			n++
		}
	}
	return n
}

// OccupancyTally splits occupied houses by side.
type OccupancyTally struct {
	IndoorTotal     int      `json:"indoor_total"`
	OutdoorTotal    int      `json:"outdoor_total"`
	IndoorOccupied  []string `json:"indoor_occupied"`
	OutdoorOccupied []string `json:"outdoor_occupied"`
}

func (t OccupancyTally) IndoorOccupiedCount() int  { return len(t.IndoorOccupied) }
func (t OccupancyTally) OutdoorOccupiedCount() int { return len(t.OutdoorOccupied) }

// Occupancy builds the tally with occupied names in number order.
func Occupancy(houses []*models.House) OccupancyTally {
	t := OccupancyTally{IndoorOccupied: []string{}, OutdoorOccupied: []string{}}
	for _, h := range SortByNumber(houses) {
		occupied := h.Status == models.HouseStatusOccupied
		switch h.Type {
		case models.HouseTypeIndoor:
			t.IndoorTotal++
			if occupied {
				t.IndoorOccupied = append(t.IndoorOccupied, h.Name)
			}
		case models.HouseTypeOutdoor:
			t.OutdoorTotal++
			if occupied {
				t.OutdoorOccupied = append(t.OutdoorOccupied, h.Name)
			}
		}
	}
	return t
}

// Roster lists house numbers per side, ascending.
type Roster struct {
	Indoor  []int `json:"indoor"`
	Outdoor []int `json:"outdoor"`
}

func (r Roster) Empty() bool { return len(r.Indoor) == 0 && len(r.Outdoor) == 0 }

func rosterOf(houses []*models.House, match func(*models.House) bool) Roster {
	r := Roster{Indoor: []int{}, Outdoor: []int{}}
	for _, h := range houses {
		if !match(h) {
			continue
		}
		n := h.EffectiveNumber()
		if n == 0 {
			continue
		}
		if h.Type == models.HouseTypeOutdoor {
			r.Outdoor = append(r.Outdoor, n)
		} else {
			r.Indoor = append(r.Indoor, n)
		}
	}
	sort.Ints(r.Indoor)
	sort.Ints(r.Outdoor)
	return r
}

// CheckStateRoster has an entry for every check state, empty or not.
func CheckStateRoster(houses []*models.House) map[models.CheckStateType]Roster {
	out := make(map[models.CheckStateType]Roster, len(models.AllCheckStates))
	for _, cs := range models.AllCheckStates {
		out[cs] = rosterOf(houses, func(h *models.House) bool { return h.CheckState == cs })
	}
	return out
}

// StatusRoster has an entry for every house status, empty or not.
func StatusRoster(houses []*models.House) map[models.HouseStatusType]Roster {
	out := make(map[models.HouseStatusType]Roster, len(models.AllHouseStatus))
	for _, st := range models.AllHouseStatus {
		out[st] = rosterOf(houses, func(h *models.House) bool { return h.Status == st })
	}
	return out
}

// BoardSummary backs the "X Gold Standard, Y Gold Premium" header.
type BoardSummary struct {
	IndoorCount     int `json:"indoor_count"`
	OutdoorCount    int `json:"outdoor_count"`
	OutdoorStandard int `json:"outdoor_standard"`
	OutdoorPremium  int `json:"outdoor_premium"`
}

func Summarize(houses []*models.House) BoardSummary {
	var s BoardSummary
	for _, h := range houses {
		switch h.Type {
		case models.HouseTypeIndoor:
			s.IndoorCount++
		case models.HouseTypeOutdoor:
			s.OutdoorCount++
		}
	}
	s.OutdoorPremium = PremiumCount(houses)
	s.OutdoorStandard = s.OutdoorCount - s.OutdoorPremium
	return s
}
