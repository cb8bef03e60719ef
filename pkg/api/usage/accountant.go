package usage

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
)

// Accountant counts live tenant resource usage. Counts are always
// computed from the source tables: usage_metrics rows are periodic
// snapshots for reporting, never an enforcement source.
type Accountant struct {
	log logutil.Log
}

func NewAccountant(log logutil.Log) *Accountant {
	return &Accountant{
		log: log,
	}
}

func (a Accountant) Count(db *gorm.DB, tenantID uint, r models.Resource) (int64, error) {
	var count int
	var err error

	switch r {
	case models.ResourceProjects:
		count, err = models.NewProjectQuerySet(db).TenantIDEq(tenantID).Count()
	case models.ResourceUsers:
		count, err = models.NewUserQuerySet(db).TenantIDEq(tenantID).IsActiveEq(true).Count()
	case models.ResourceBeneficiaries:
		count, err = models.NewBeneficiaryQuerySet(db).TenantIDEq(tenantID).Count()
	case models.ResourceStorage:
		// Storage is accumulated by upload handlers, there is no
		// cheap live count for it yet.
		a.log.Infof("No live counter for storage usage of tenant %d, assuming zero", tenantID)
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown usage resource %q", r)
	}

	if err != nil {
		return 0, errors.Wrapf(err, "failed to count %s usage for tenant %d", r, tenantID)
	}

	return int64(count), nil
}

// Snapshot persists current usage of every countable resource for the tenant.
func (a Accountant) Snapshot(db *gorm.DB, tenantID uint, now time.Time) error {
	for _, r := range models.CountableResources {
		value, err := a.Count(db, tenantID, r)
		if err != nil {
			return err
		}

		metric := models.UsageMetric{
			TenantID:   tenantID,
			Metric:     r,
			Value:      value,
			RecordedAt: now,
		}
		if err := metric.Create(db); err != nil {
			return errors.Wrapf(err, "failed to save %s usage snapshot for tenant %d", r, tenantID)
		}
	}

	return nil
}
