package usage

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	usageacc "github.com/sahayog/sahayog-api/pkg/api/usage"
)

// Snapshotter periodically persists per-tenant usage counts so reports
// have history without recounting the source tables.
type Snapshotter struct {
	Cfg        config.Config
	DB         *gorm.DB
	Log        logutil.Log
	Accountant *usageacc.Accountant
}

func (s Snapshotter) Run() {
	interval := s.Cfg.GetDuration("USAGE_SNAPSHOT_INTERVAL", time.Hour*24)

	for range time.Tick(interval) {
		if _, err := s.RunIteration(); err != nil {
			s.Log.Warnf("Can't snapshot tenant usage: %s", err)
			continue
		}
	}
}

func (s Snapshotter) RunIteration() (int, error) {
	var tenants []models.Tenant
	err := models.NewTenantQuerySet(s.DB).
		StatusIn(models.TenantStatusTrial, models.TenantStatusActive).
		All(&tenants)
	if err != nil {
		return 0, errors.Wrap(err, "can't get live tenants")
	}

	now := time.Now()
	snapshotted := 0
	for _, tenant := range tenants {
		if err := s.Accountant.Snapshot(s.DB, tenant.ID, now); err != nil {
			s.Log.Errorf("Can't snapshot usage of tenant %d: %s", tenant.ID, err)
			continue
		}
		snapshotted++
	}

	return snapshotted, nil
}
