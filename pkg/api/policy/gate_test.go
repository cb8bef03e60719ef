package policy

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/apierrors"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/auth"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/pkg/api/usage"
	"github.com/sahayog/sahayog-api/test/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGate(db *gorm.DB) *Gate {
	log := logutil.NewStderrLog("test")
	return NewGate(log, db, config.NewEnvConfig(log), usage.NewAccountant(log))
}

type gateFixture struct {
	tenant *models.Tenant
	role   *models.Role
	user   *models.User
}

func setupGateFixture(t *testing.T, db *gorm.DB) *gateFixture {
	tenant := models.Tenant{
		Name:      "Asha Foundation",
		Subdomain: "asha",
		IsActive:  true,
		Status:    models.TenantStatusActive,
	}
	require.NoError(t, tenant.Create(db))

	role := models.Role{Name: "coordinator"}
	require.NoError(t, role.Create(db))

	user := models.User{
		Email:    "user@asha.example",
		Name:     "Test User",
		TenantID: &tenant.ID,
		RoleID:   role.ID,
		IsActive: true,
	}
	require.NoError(t, user.Create(db))

	return &gateFixture{tenant: &tenant, role: &role, user: &user}
}

func (f gateFixture) rc(db *gorm.DB) *request.AuthorizedContext {
	log := logutil.NewStderrLog("test")
	return &request.AuthorizedContext{
		BaseContext: request.BaseContext{
			Ctx:       context.Background(),
			Log:       log,
			Lctx:      logutil.Context{},
			DB:        db,
			StartedAt: time.Now(),
		},
		Actor: &auth.AuthenticatedActor{
			User:   f.user,
			Tenant: f.tenant,
		},
	}
}

func (f gateFixture) grantPermission(t *testing.T, db *gorm.DB, resource models.Resource, action string) {
	perm := models.Permission{Resource: resource, Action: action}
	require.NoError(t, perm.Create(db))

	rp := models.RolePermission{RoleID: f.role.ID, PermissionID: perm.ID}
	require.NoError(t, rp.Create(db))
}

func (f gateFixture) subscribe(t *testing.T, db *gorm.DB, status models.SubscriptionStatus,
	planMod func(*models.Plan)) {

	plan := models.Plan{
		Name:     "Starter",
		Price:    49900,
		Interval: models.PlanIntervalMonthly,
		IsActive: true,
	}
	if planMod != nil {
		planMod(&plan)
	}
	require.NoError(t, plan.Create(db))

	sub := models.Subscription{
		TenantID: f.tenant.ID,
		PlanID:   plan.ID,
		Status:   status,
	}
	require.NoError(t, sub.Create(db))
}

func errCode(t *testing.T, err error) string {
	require.Error(t, err)
	ewc, ok := errors.Cause(err).(apierrors.ErrorWithCode)
	require.True(t, ok, "error %v has no code", err)
	return ewc.GetCode()
}

func TestGateDeniesWithoutPermission(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)

	err := testGate(db).Check(f.rc(db), Requirements{
		Permission: &PermissionRef{Resource: models.ResourceFinance, Action: ActionRead},
	})
	assert.Equal(t, "PERMISSION_DENIED", errCode(t, err))
}

func TestGateAllowsGrantedPermission(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)
	f.grantPermission(t, db, models.ResourceFinance, ActionRead)

	err := testGate(db).Check(f.rc(db), Requirements{
		Permission: &PermissionRef{Resource: models.ResourceFinance, Action: ActionRead},
	})
	assert.NoError(t, err)
}

func TestGateDeniesWithoutActiveSubscription(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)

	err := testGate(db).Check(f.rc(db), Requirements{Feature: models.FeatureFinance})
	assert.Equal(t, "NO_ACTIVE_SUBSCRIPTION", errCode(t, err))
}

func TestGateDeniesFeatureNotInPlan(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)
	f.subscribe(t, db, models.SubscriptionStatusActive, nil)

	err := testGate(db).Check(f.rc(db), Requirements{Feature: models.FeatureFinance})
	assert.Equal(t, "FEATURE_NOT_IN_PLAN", errCode(t, err))
}

func TestGateAllowsFeatureInPlan(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)
	f.subscribe(t, db, models.SubscriptionStatusActive, func(p *models.Plan) {
		p.FinanceEnabled = true
	})

	err := testGate(db).Check(f.rc(db), Requirements{Feature: models.FeatureFinance})
	assert.NoError(t, err)
}

func TestGateFeatureChecksCanBeDisabled(t *testing.T) {
	os.Setenv("NEED_CHECK_FEATURE_GATES", "false")
	defer os.Unsetenv("NEED_CHECK_FEATURE_GATES")

	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)
	f.subscribe(t, db, models.SubscriptionStatusActive, nil)

	err := testGate(db).Check(f.rc(db), Requirements{Feature: models.FeatureFinance})
	assert.NoError(t, err)
}

func TestGateQuota(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)
	f.subscribe(t, db, models.SubscriptionStatusActive, func(p *models.Plan) {
		p.MaxProjects = 2
	})

	g := testGate(db)
	req := Requirements{Resource: models.ResourceProjects}

	p1 := models.Project{TenantID: f.tenant.ID, Name: "Education", Status: "ACTIVE"}
	require.NoError(t, p1.Create(db))
	assert.NoError(t, g.Check(f.rc(db), req))

	p2 := models.Project{TenantID: f.tenant.ID, Name: "Health", Status: "ACTIVE"}
	require.NoError(t, p2.Create(db))
	assert.Equal(t, "QUOTA_EXCEEDED", errCode(t, g.Check(f.rc(db), req)))
}

func TestGateZeroLimitMeansUnlimited(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)
	f.subscribe(t, db, models.SubscriptionStatusActive, nil)

	for i := 0; i < 5; i++ {
		p := models.Project{TenantID: f.tenant.ID, Name: "Project", Status: "ACTIVE"}
		require.NoError(t, p.Create(db))
	}

	err := testGate(db).Check(f.rc(db), Requirements{Resource: models.ResourceProjects})
	assert.NoError(t, err)
}

func TestGateDeniesPastDueByDefault(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)
	f.subscribe(t, db, models.SubscriptionStatusPastDue, func(p *models.Plan) {
		p.FinanceEnabled = true
	})

	err := testGate(db).Check(f.rc(db), Requirements{Feature: models.FeatureFinance})
	assert.Equal(t, "NO_ACTIVE_SUBSCRIPTION", errCode(t, err))

	// Grace for past due subscriptions is opt-in.
	os.Setenv("PAST_DUE_GRACE_ENABLED", "true")
	defer os.Unsetenv("PAST_DUE_GRACE_ENABLED")

	err = testGate(db).Check(f.rc(db), Requirements{Feature: models.FeatureFinance})
	assert.NoError(t, err)
}

func TestGatePlatformAdminBypassesAllChecks(t *testing.T) {
	db := dbtest.OpenDB(t)
	f := setupGateFixture(t, db)
	f.user.IsPlatformAdmin = true

	err := testGate(db).Check(f.rc(db), Requirements{
		Permission: &PermissionRef{Resource: models.ResourceFinance, Action: ActionWrite},
		Feature:    models.FeatureFinance,
		Resource:   models.ResourceProjects,
	})
	assert.NoError(t, err)
}
