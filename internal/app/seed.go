package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/repositories"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

// SeedHouses provisions whichever houses of the fixed board (34 indoor,
// 11 outdoor) are missing, so a run interrupted partway is completed on
// the next boot.
func SeedHouses(ctx context.Context, houseRepo repositories.HouseRepository) error {
	existing, err := houseRepo.ListWithNotes(ctx)
	if err != nil {
		return fmt.Errorf("list houses: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, h := range existing {
		present[models.HouseName(h.Type, h.EffectiveNumber())] = true
	}

	var wanted []*models.House
	for n := 1; n <= constants.IndoorHouseCount; n++ {
		wanted = append(wanted, newSeedHouse(models.HouseTypeIndoor, n))
	}
	for n := 1; n <= constants.OutdoorHouseCount; n++ {
		wanted = append(wanted, newSeedHouse(models.HouseTypeOutdoor, n))
	}

	created := 0
	for _, h := range wanted {
		if present[h.Name] {
			continue
		}
		err := houseRepo.Create(ctx, h)
		if errors.Is(err, repositories.ErrDuplicateHouse) {
			// another instance inserted it first
			continue
		}
		if err != nil {
			return fmt.Errorf("create house %s: %w", h.Name, err)
		}
		created++
	}

	if created == 0 {
		utils.Logger.Infof("housekeeping-service: all %d houses already present; skipping house seeding", len(wanted))
		return nil
	}
	utils.Logger.Infof("housekeeping-service: seeded %d houses", created)
	return nil
}

func newSeedHouse(t models.HouseType, n int) *models.House {
	return &models.House{
		Name:           models.HouseName(t, n),
		Number:         n,
		Type:           t,
		Classification: models.ClassificationFor(t, n),
		Status:         models.HouseStatusClean,
		CheckState:     models.CheckStateNone,
	}
}

type seedNote struct {
	houseType models.HouseType
	number    int
	category  models.NoteCategoryType
	area      models.NoteAreaType
	content   string
	author    string
	age       time.Duration
}

var sampleNotes = []seedNote{
	{models.HouseTypeIndoor, 1, models.NoteCategoryCritical, models.NoteAreaOther,
		"La habitación necesita limpieza profunda antes del próximo check-in", "Juan", 2 * time.Hour},
	{models.HouseTypeIndoor, 3, models.NoteCategoryMinor, models.NoteAreaRestocking,
		"Huésped solicitó toallas adicionales para mañana", "Sara", 24 * time.Hour},
	{models.HouseTypeIndoor, 4, models.NoteCategoryOther, models.NoteAreaOther,
		"Nueva máquina de café instalada", "Marcos", 3 * 24 * time.Hour},
	{models.HouseTypeOutdoor, 5, models.NoteCategoryCritical, models.NoteAreaOther,
		"Inspección Premium requerida antes del check-in de mañana", "Luisa", 5 * time.Hour},
	{models.HouseTypeOutdoor, 11, models.NoteCategoryMinor, models.NoteAreaElectrical,
		"Filtro de aire acondicionado necesita reemplazo la próxima semana", "Tomás", 2 * 24 * time.Hour},
}

// SeedSampleNotes adds demo notes when the store has none. Notes whose
// house is missing are skipped.
func SeedSampleNotes(
	ctx context.Context,
	houseRepo repositories.HouseRepository,
	noteRepo repositories.NoteRepository,
	now time.Time,
) error {
	existing, err := noteRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count notes: %w", err)
	}
	if existing > 0 {
		utils.Logger.Info("housekeeping-service: seed notes already present; skipping note seeding")
		return nil
	}

	houses, err := houseRepo.ListWithNotes(ctx)
	if err != nil {
		return fmt.Errorf("list houses: %w", err)
	}
	byKey := make(map[string]*models.House, len(houses))
	for _, h := range houses {
		byKey[models.HouseName(h.Type, h.EffectiveNumber())] = h
	}

	inserted := 0
	for _, sn := range sampleNotes {
		h, ok := byKey[models.HouseName(sn.houseType, sn.number)]
		if !ok {
			utils.Logger.Warnf("housekeeping-service: seed house %s missing; skipping note", models.HouseName(sn.houseType, sn.number))
			continue
		}
		n := &models.Note{
			HouseID:   h.ID,
			Category:  sn.category,
			Area:      sn.area,
			Content:   sn.content,
			CreatedBy: sn.author,
			CreatedAt: now.Add(-sn.age),
		}
		if err := noteRepo.Create(ctx, n); err != nil {
			return fmt.Errorf("create seed note for %s: %w", h.Name, err)
		}
		inserted++
	}
	utils.Logger.Infof("housekeeping-service: seeded %d sample notes", inserted)
	return nil
}
