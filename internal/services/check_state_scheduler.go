package services

import (
	"context"

	cron "github.com/robfig/cron/v3"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/models"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/repositories"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

// CheckStateScheduler clears yesterday's arrival and departure flags.
type CheckStateScheduler struct {
	houseRepo repositories.HouseRepository
}

func NewCheckStateScheduler(houseRepo repositories.HouseRepository) *CheckStateScheduler {
	return &CheckStateScheduler{houseRepo: houseRepo}
}

// RunCheckStateReset sets every house back to "Nada".
func (s *CheckStateScheduler) RunCheckStateReset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.CheckStateResetJobTimeout)
	defer cancel()

	changed, err := s.houseRepo.ResetCheckStates(ctx, models.CheckStateNone)
	if err != nil {
		return err
	}
	utils.Logger.WithField("housesChanged", changed).Info("Check states reset")
	return nil
}

// Register adds the reset job to c under the given cron spec.
func (s *CheckStateScheduler) Register(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		if e := s.RunCheckStateReset(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled check state reset failed")
		}
	})
}
