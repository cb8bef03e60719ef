package usage

import (
	"context"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/auth"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/policy"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	usageacc "github.com/sahayog/sahayog-api/pkg/api/usage"
	"github.com/sahayog/sahayog-api/test/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(db *gorm.DB) *BasicService {
	log := logutil.NewStderrLog("test")
	return NewBasicService(
		usageacc.NewAccountant(log),
		policy.NewSubscriptionFeatures(log, db, config.NewEnvConfig(log)))
}

func baseCtx(db *gorm.DB) request.BaseContext {
	log := logutil.NewStderrLog("test")
	return request.BaseContext{
		Ctx:       context.Background(),
		Log:       log,
		Lctx:      logutil.Context{},
		DB:        db,
		StartedAt: time.Now(),
	}
}

func setupUsageTenant(t *testing.T, db *gorm.DB) *models.Tenant {
	tenant := models.Tenant{
		Name:      "Asha Foundation",
		Subdomain: "asha",
		IsActive:  true,
		Status:    models.TenantStatusActive,
	}
	require.NoError(t, tenant.Create(db))

	plan := models.Plan{
		Name:        "Starter",
		Price:       49900,
		Interval:    models.PlanIntervalMonthly,
		IsActive:    true,
		MaxProjects: 5,
		MaxUsers:    10,
	}
	require.NoError(t, plan.Create(db))

	sub := models.Subscription{
		TenantID: tenant.ID,
		PlanID:   plan.ID,
		Status:   models.SubscriptionStatusActive,
	}
	require.NoError(t, sub.Create(db))

	for i := 0; i < 4; i++ {
		p := models.Project{TenantID: tenant.ID, Name: "Project", Status: "ACTIVE"}
		require.NoError(t, p.Create(db))
	}

	return &tenant
}

func TestGetUsage(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := setupUsageTenant(t, db)

	rc := &request.AuthorizedContext{
		BaseContext: baseCtx(db),
		Actor: &auth.AuthenticatedActor{
			User:   &models.User{},
			Tenant: tenant,
		},
	}

	ret, err := testService(db).Get(rc)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, ret.TenantID)
	require.Len(t, ret.Usage, len(models.CountableResources))

	byResource := map[string]int{}
	for i, u := range ret.Usage {
		byResource[u.Resource] = i
	}

	projects := ret.Usage[byResource["projects"]]
	assert.Equal(t, int64(4), projects.Used)
	assert.Equal(t, int64(5), projects.Limit)
	assert.False(t, projects.IsUnlimited)
	assert.True(t, projects.NearLimit) // 4 of 5 is 80%

	users := ret.Usage[byResource["users"]]
	assert.Equal(t, int64(0), users.Used)
	assert.False(t, users.NearLimit)

	beneficiaries := ret.Usage[byResource["beneficiaries"]]
	assert.True(t, beneficiaries.IsUnlimited)
}

func TestTriggerSnapshot(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := setupUsageTenant(t, db)

	rc := &request.InternalContext{BaseContext: baseCtx(db)}
	require.NoError(t, testService(db).TriggerSnapshot(rc))

	n, err := models.NewUsageMetricQuerySet(db).TenantIDEq(tenant.ID).Count()
	require.NoError(t, err)
	assert.Equal(t, len(models.CountableResources), n)
}
