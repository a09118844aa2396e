package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func house(id int64, t models.HouseType, n int, st models.HouseStatusType, notes ...*models.Note) *models.House {
	if notes == nil {
		notes = []*models.Note{}
	}
	return &models.House{
		ID:             id,
		Name:           models.HouseName(t, n),
		Number:         n,
		Type:           t,
		Classification: models.ClassificationFor(t, n),
		Status:         st,
		CheckState:     models.CheckStateNone,
		Notes:          notes,
	}
}

func note(id int64, c models.NoteCategoryType, ageHours int) *models.Note {
	return &models.Note{
		ID:        id,
		Category:  c,
		Area:      models.NoteAreaOther,
		Content:   "n",
		CreatedBy: models.DefaultNoteAuthor,
		CreatedAt: t0.Add(-time.Duration(ageHours) * time.Hour),
	}
}

// fixture mixes statuses, sides and note shapes.
func fixture() []*models.House {
	return []*models.House{
		house(1, models.HouseTypeIndoor, 2, models.HouseStatusOccupied,
			note(1, models.NoteCategoryCritical, 1), note(2, models.NoteCategoryMinor, 2), note(3, models.NoteCategoryCritical, 3)),
		house(2, models.HouseTypeIndoor, 10, models.HouseStatusClean),
		house(3, models.HouseTypeIndoor, 1, models.HouseStatusDirty, note(4, models.NoteCategoryOther, 5)),
		house(4, models.HouseTypeOutdoor, 5, models.HouseStatusOccupied),
		house(5, models.HouseTypeOutdoor, 6, models.HouseStatusClean, note(5, models.NoteCategoryMinor, 1)),
		house(6, models.HouseTypeOutdoor, 11, models.HouseStatusOccupied),
	}
}

func TestGroupByCategory_PreservesOrderAndLosesNothing(t *testing.T) {
	for _, h := range fixture() {
		groups := GroupByCategory(h.Notes)

		total := 0
		for cat, notes := range groups {
			require.NotEmpty(t, notes, "category %s present with no notes", cat)
			total += len(notes)

			var expected []*models.Note
			for _, n := range h.Notes {
				if n.Category == cat {
					expected = append(expected, n)
				}
			}
			assert.Equal(t, expected, notes)
		}
		assert.Equal(t, len(h.Notes), total)
	}
}

func TestGroupByCategory_EmptyHouse(t *testing.T) {
	groups := GroupByCategory(nil)
	assert.Empty(t, groups)
	_, ok := groups[models.NoteCategoryCritical]
	assert.False(t, ok)
}

func TestCategoryBadges(t *testing.T) {
	badges := CategoryBadges(fixture()[0].Notes)
	require.Len(t, badges, 2)
	assert.Equal(t, CategoryBadge{Category: models.NoteCategoryCritical, Count: 2, ShowCount: true}, badges[0])
	assert.Equal(t, CategoryBadge{Category: models.NoteCategoryMinor, Count: 1, ShowCount: false}, badges[1])
	assert.Empty(t, CategoryBadges(nil))
}

func TestSortByNumber(t *testing.T) {
	legacy := &models.House{ID: 9, Name: "Casa 3", Type: models.HouseTypeIndoor}
	broken := &models.House{ID: 10, Name: "Bodega", Type: models.HouseTypeIndoor}
	in := append(fixture(), broken, legacy)

	sorted := SortByNumber(in)
	var numbers []int
	for _, h := range sorted {
		numbers = append(numbers, h.EffectiveNumber())
	}
	assert.Equal(t, []int{1, 2, 3, 5, 6, 10, 11, 0}, numbers)
	assert.Equal(t, broken, sorted[len(sorted)-1])
	// input untouched
	assert.Equal(t, int64(1), in[0].ID)
}

func TestPremiumCount(t *testing.T) {
	assert.Equal(t, 2, PremiumCount(fixture()))
	assert.Zero(t, PremiumCount(nil))
}

func TestFilter_NotesPresencePartitions(t *testing.T) {
	houses := fixture()
	with := Filter{Notes: NotesWithNotes}.Apply(houses)
	without := Filter{Notes: NotesNoNotes}.Apply(houses)

	assert.Equal(t, len(houses), len(with)+len(without))
	seen := map[int64]bool{}
	for _, h := range append(with, without...) {
		assert.False(t, seen[h.ID], "house %d in both partitions", h.ID)
		seen[h.ID] = true
	}
}

func TestFilter_Combined(t *testing.T) {
	houses := fixture()

	got := Filter{Type: models.HouseTypeIndoor, Status: models.HouseStatusOccupied, Notes: NotesCritical}.Apply(houses)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = Filter{Notes: NotesMinor}.Apply(houses)
	assert.Len(t, got, 2)

	got = Filter{Type: models.HouseTypeOutdoor}.Apply(houses)
	assert.Len(t, got, 3)

	assert.Len(t, Filter{Type: FilterAll, Status: FilterAll, Notes: FilterAll}.Apply(houses), len(houses))
	assert.Empty(t, Filter{Notes: NotesWithNotes}.Apply(nil))
}

func TestHouseReportFilter(t *testing.T) {
	houses := fixture()
	assert.Len(t, ReportOccupied.Filter().Apply(houses), 3)
	assert.Len(t, ReportClean.Filter().Apply(houses), 2)
	assert.Len(t, ReportDirty.Filter().Apply(houses), 1)
	assert.Len(t, ReportWithNotes.Filter().Apply(houses), 3)
	assert.Len(t, ReportNoNotes.Filter().Apply(houses), 3)
	assert.Len(t, ReportAll.Filter().Apply(houses), len(houses))
}

func TestOccupancy(t *testing.T) {
	houses := fixture()
	tally := Occupancy(houses)

	occupied := 0
	for _, h := range houses {
		if h.Status == models.HouseStatusOccupied {
			occupied++
		}
	}
	assert.Equal(t, occupied, tally.IndoorOccupiedCount()+tally.OutdoorOccupiedCount())
	assert.Equal(t, []string{"Casa 2"}, tally.IndoorOccupied)
	assert.Equal(t, []string{"Casa 5 EXT", "Casa 11 EXT"}, tally.OutdoorOccupied)
	assert.Equal(t, 3, tally.IndoorTotal)
	assert.Equal(t, 3, tally.OutdoorTotal)

	empty := Occupancy(nil)
	assert.Zero(t, empty.IndoorOccupiedCount())
	assert.NotNil(t, empty.OutdoorOccupied)
}

func TestCheckStateRoster(t *testing.T) {
	houses := fixture()
	houses[1].CheckState = models.CheckStateCheckIn
	houses[2].CheckState = models.CheckStateCheckIn
	houses[5].CheckState = models.CheckStateCheckIn
	houses[3].CheckState = models.CheckStateCheckOut

	roster := CheckStateRoster(houses)
	require.Len(t, roster, 4)
	assert.Equal(t, Roster{Indoor: []int{1, 10}, Outdoor: []int{11}}, roster[models.CheckStateCheckIn])
	assert.Equal(t, Roster{Indoor: []int{}, Outdoor: []int{5}}, roster[models.CheckStateCheckOut])
	assert.True(t, roster[models.CheckStateCheckInCheckOut].Empty())
	assert.Equal(t, []int{2}, roster[models.CheckStateNone].Indoor)

	for _, r := range CheckStateRoster(nil) {
		assert.True(t, r.Empty())
	}
}

func TestStatusRoster(t *testing.T) {
	roster := StatusRoster(fixture())
	assert.Equal(t, Roster{Indoor: []int{2}, Outdoor: []int{5, 11}}, roster[models.HouseStatusOccupied])
	assert.Equal(t, Roster{Indoor: []int{1}, Outdoor: []int{}}, roster[models.HouseStatusDirty])
}

func TestRoster_SkipsUnnumberedHouses(t *testing.T) {
	legacy := &models.House{ID: 99, Name: "Cabaña del lago", Type: models.HouseTypeOutdoor, Status: models.HouseStatusOccupied}
	require.Zero(t, legacy.EffectiveNumber())

	roster := StatusRoster(append(fixture(), legacy))
	assert.Equal(t, Roster{Indoor: []int{2}, Outdoor: []int{5, 11}}, roster[models.HouseStatusOccupied])
}

func TestNotesListing(t *testing.T) {
	houses := fixture()
	houses[4].Notes[0].Area = models.NoteAreaPlumbing

	all := NotesListing(houses, "", 0)
	assert.Len(t, all, 5)
	assert.Equal(t, "Casa 2", all[0].HouseName)
	assert.Equal(t, int64(1), all[0].ID)

	plumbing := NotesListing(houses, models.NoteAreaPlumbing, 0)
	require.Len(t, plumbing, 1)
	assert.Equal(t, "Casa 6 exterior", plumbing[0].HouseName)

	one := NotesListing(houses, "", 3)
	require.Len(t, one, 1)
	assert.Equal(t, int64(4), one[0].ID)

	assert.Empty(t, NotesListing(nil, models.NoteAreaOther, 0))
}

func TestSummarize(t *testing.T) {
	s := Summarize(fixture())
	assert.Equal(t, BoardSummary{IndoorCount: 3, OutdoorCount: 3, OutdoorStandard: 1, OutdoorPremium: 2}, s)
	assert.Equal(t, BoardSummary{}, Summarize(nil))
}
