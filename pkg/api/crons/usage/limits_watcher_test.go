package usage

import (
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	usageacc "github.com/sahayog/sahayog-api/pkg/api/usage"
	"github.com/sahayog/sahayog-api/test/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscribeTenant(t *testing.T, db *gorm.DB, tenant *models.Tenant, maxProjects int64) {
	plan := models.Plan{
		Name:        "Starter " + tenant.Subdomain,
		Price:       49900,
		Interval:    models.PlanIntervalMonthly,
		IsActive:    true,
		MaxProjects: maxProjects,
	}
	require.NoError(t, plan.Create(db))

	sub := models.Subscription{
		TenantID: tenant.ID,
		PlanID:   plan.ID,
		Status:   models.SubscriptionStatusActive,
	}
	require.NoError(t, sub.Create(db))
}

func addProjects(t *testing.T, db *gorm.DB, tenantID uint, n int) {
	for i := 0; i < n; i++ {
		p := models.Project{TenantID: tenantID, Name: "Project", Status: "ACTIVE"}
		require.NoError(t, p.Create(db))
	}
}

func TestLimitsWatcherRunIteration(t *testing.T) {
	db := dbtest.OpenDB(t)
	log := logutil.NewStderrLog("test")

	// At the limit: flagged.
	over := createCronTenant(t, db, "over", models.TenantStatusActive)
	subscribeTenant(t, db, over, 2)
	addProjects(t, db, over.ID, 2)

	// 4 of 5 is past the 80% threshold: flagged.
	near := createCronTenant(t, db, "near", models.TenantStatusActive)
	subscribeTenant(t, db, near, 5)
	addProjects(t, db, near.ID, 4)

	// Well under the limit.
	under := createCronTenant(t, db, "under", models.TenantStatusActive)
	subscribeTenant(t, db, under, 10)
	addProjects(t, db, under.ID, 1)

	// No subscription, nothing to watch.
	unsubscribed := createCronTenant(t, db, "unsubscribed", models.TenantStatusTrial)
	addProjects(t, db, unsubscribed.ID, 3)

	w := LimitsWatcher{
		Cfg:        config.NewEnvConfig(log),
		DB:         db,
		Log:        log,
		Accountant: usageacc.NewAccountant(log),
	}

	flagged, err := w.RunIteration()
	require.NoError(t, err)
	assert.Equal(t, 2, flagged)
}
