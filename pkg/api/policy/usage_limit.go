package policy

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/usage"
)

type UsageLimit struct {
	log        logutil.Log
	db         *gorm.DB
	accountant *usage.Accountant
}

func NewUsageLimit(log logutil.Log, db *gorm.DB, accountant *usage.Accountant) *UsageLimit {
	return &UsageLimit{
		log:        log,
		db:         db,
		accountant: accountant,
	}
}

// CheckQuota denies when the live count of r has already reached the
// plan limit, so admitting the current request would exceed it.
func (u UsageLimit) CheckQuota(tenantID uint, plan *models.Plan, r models.Resource) error {
	limit := plan.LimitFor(r)
	if limit == 0 { // the plan doesn't cap this resource
		return nil
	}

	current, err := u.accountant.Count(u.db, tenantID, r)
	if err != nil {
		return err
	}

	if current >= limit {
		u.log.Infof("Tenant %d reached %s limit: %d of %d", tenantID, r, current, limit)
		return ErrQuotaExceeded.WithMessage(fmt.Sprintf("%s usage %d reached plan limit %d", r, current, limit))
	}

	return nil
}
