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

const nearLimitPercent = 80

// LimitsWatcher flags tenants close to or over their plan limits.
type LimitsWatcher struct {
	Cfg        config.Config
	DB         *gorm.DB
	Log        logutil.Log
	Accountant *usageacc.Accountant
}

func (w LimitsWatcher) Run() {
	interval := w.Cfg.GetDuration("USAGE_LIMITS_WATCH_INTERVAL", time.Hour*24)

	for range time.Tick(interval) {
		if _, err := w.RunIteration(); err != nil {
			w.Log.Warnf("Can't watch tenant limits: %s", err)
			continue
		}
	}
}

func (w LimitsWatcher) RunIteration() (int, error) {
	var tenants []models.Tenant
	err := models.NewTenantQuerySet(w.DB).
		StatusIn(models.TenantStatusTrial, models.TenantStatusActive).
		All(&tenants)
	if err != nil {
		return 0, errors.Wrap(err, "can't get live tenants")
	}

	flagged := 0
	for _, tenant := range tenants {
		tenantFlagged, err := w.watchTenant(&tenant)
		if err != nil {
			w.Log.Errorf("Can't watch limits of tenant %d: %s", tenant.ID, err)
			continue
		}
		if tenantFlagged {
			flagged++
		}
	}

	return flagged, nil
}

func (w LimitsWatcher) watchTenant(tenant *models.Tenant) (bool, error) {
	var sub models.Subscription
	err := models.NewSubscriptionQuerySet(w.DB).
		TenantIDEq(tenant.ID).
		StatusIn(models.CurrentSubscriptionStatuses...).
		OrderDescByCreatedAt().
		One(&sub)
	if err == gorm.ErrRecordNotFound {
		// Nothing to watch without a plan.
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to fetch current subscription")
	}

	var plan models.Plan
	if err := models.NewPlanQuerySet(w.DB).IDEq(sub.PlanID).One(&plan); err != nil {
		return false, errors.Wrapf(err, "failed to fetch plan %d", sub.PlanID)
	}

	flagged := false
	for _, r := range models.CountableResources {
		limit := plan.LimitFor(r)
		if limit == 0 { // unlimited
			continue
		}

		used, err := w.Accountant.Count(w.DB, tenant.ID, r)
		if err != nil {
			return flagged, err
		}

		switch {
		case used >= limit:
			w.Log.Warnf("Tenant %d is over %s limit: %d of %d", tenant.ID, r, used, limit)
			flagged = true
		case used*100 >= limit*nearLimitPercent:
			w.Log.Warnf("Tenant %d is at %d%% of %s limit: %d of %d",
				tenant.ID, used*100/limit, r, used, limit)
			flagged = true
		}
	}

	return flagged, nil
}
