package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/apierrors"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/paymentgateway"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/auth"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/policy"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/pkg/api/usage"
	"github.com/sahayog/sahayog-api/test/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	createErr error
	cancelErr error

	created          []paymentgateway.SubscriptionCreatePayload
	cancelled        []string
	cancelAtCycleEnd bool
}

func (g *fakeGateway) Name() string {
	return "razorpay"
}

func (g *fakeGateway) VerifyWebhookSignature(body []byte, signature string) error {
	return nil
}

func (g *fakeGateway) CreateSubscription(ctx context.Context,
	payload paymentgateway.SubscriptionCreatePayload) (*paymentgateway.Subscription, error) {

	if g.createErr != nil {
		return nil, g.createErr
	}

	g.created = append(g.created, payload)
	return &paymentgateway.Subscription{
		ID:       "sub_ext_1",
		Status:   paymentgateway.SubscriptionStatusCreated,
		ShortURL: "https://rzp.io/i/checkout1",
	}, nil
}

func (g *fakeGateway) CancelSubscription(ctx context.Context, subID string, atCycleEnd bool) error {
	if g.cancelErr != nil {
		return g.cancelErr
	}

	g.cancelled = append(g.cancelled, subID)
	g.cancelAtCycleEnd = atCycleEnd
	return nil
}

type fakeGatewayFactory struct {
	gw paymentgateway.Gateway
}

func (f fakeGatewayFactory) Build(gateway string) (paymentgateway.Gateway, error) {
	return f.gw, nil
}

func testService(db *gorm.DB, gw paymentgateway.Gateway) *BasicService {
	log := logutil.NewStderrLog("test")
	cfg := config.NewEnvConfig(log)
	return NewBasicService(
		fakeGatewayFactory{gw: gw},
		policy.NewGate(log, db, cfg, usage.NewAccountant(log)),
		cfg)
}

func authorizedRC(db *gorm.DB, tenant *models.Tenant) *request.AuthorizedContext {
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
			User:   &models.User{},
			Tenant: tenant,
		},
	}
}

// adminRC skips the finance permission setup for manage operations.
func adminRC(db *gorm.DB, tenant *models.Tenant) *request.AuthorizedContext {
	rc := authorizedRC(db, tenant)
	rc.Actor.User.IsPlatformAdmin = true
	return rc
}

func createTenant(t *testing.T, db *gorm.DB, tenantMod func(*models.Tenant)) *models.Tenant {
	tenant := models.Tenant{
		Name:      "Asha Foundation",
		Subdomain: "asha",
		IsActive:  true,
		Status:    models.TenantStatusActive,
	}
	if tenantMod != nil {
		tenantMod(&tenant)
	}
	require.NoError(t, tenant.Create(db))
	return &tenant
}

func createPlan(t *testing.T, db *gorm.DB, planMod func(*models.Plan)) *models.Plan {
	plan := models.Plan{
		Name:           "Starter",
		Price:          49900,
		Interval:       models.PlanIntervalMonthly,
		IsActive:       true,
		RazorpayPlanID: "plan_rzp_1",
		MaxProjects:    10,
	}
	if planMod != nil {
		planMod(&plan)
	}
	require.NoError(t, plan.Create(db))
	return &plan
}

func createSubFixture(t *testing.T, db *gorm.DB, tenantMod func(*models.Tenant),
	subStatus models.SubscriptionStatus) *models.Tenant {

	tenant := createTenant(t, db, tenantMod)
	plan := createPlan(t, db, nil)

	sub := models.Subscription{
		TenantID: tenant.ID,
		PlanID:   plan.ID,
		Status:   subStatus,
	}
	require.NoError(t, sub.Create(db))

	return tenant
}

func fetchSub(t *testing.T, db *gorm.DB, id uint) models.Subscription {
	var sub models.Subscription
	require.NoError(t, models.NewSubscriptionQuerySet(db).IDEq(id).One(&sub))
	return sub
}

func assertCode(t *testing.T, err error, code string) {
	require.Error(t, err)
	ewc, ok := errors.Cause(err).(apierrors.ErrorWithCode)
	require.True(t, ok, "error %v has no code", err)
	assert.Equal(t, code, ewc.GetCode())
}

func TestGetCurrentSubscription(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createSubFixture(t, db, nil, models.SubscriptionStatusActive)

	ret, err := testService(db, &fakeGateway{}).Get(authorizedRC(db, tenant))
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", ret.Subscription.Status)
	assert.Equal(t, "Starter", ret.Subscription.Plan.Name)
	assert.Equal(t, int64(49900), ret.Subscription.Plan.Price)
	assert.False(t, ret.Subscription.IsTrialExpired)
}

func TestGetNoCurrentSubscription(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createSubFixture(t, db, nil, models.SubscriptionStatusCancelled)

	_, err := testService(db, &fakeGateway{}).Get(authorizedRC(db, tenant))
	assert.Equal(t, apierrors.ErrNotFound, errors.Cause(err))
}

func TestGetSurfacesExpiredTrial(t *testing.T) {
	db := dbtest.OpenDB(t)
	pastTrialEnd := time.Now().Add(-time.Hour)
	tenant := createSubFixture(t, db, func(tn *models.Tenant) {
		tn.Status = models.TenantStatusTrial
		tn.TrialEndsAt = &pastTrialEnd
	}, models.SubscriptionStatusTrial)

	ret, err := testService(db, &fakeGateway{}).Get(authorizedRC(db, tenant))
	require.NoError(t, err)
	assert.Equal(t, "EXPIRED", ret.Subscription.Status)
	assert.True(t, ret.Subscription.IsTrialExpired)
}

func TestGetPicksLatestCurrentSubscription(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createSubFixture(t, db, nil, models.SubscriptionStatusActive)

	// An older cancelled subscription must not shadow the current one.
	plan := models.Plan{Name: "Old", Price: 9900, Interval: models.PlanIntervalMonthly, IsActive: false}
	require.NoError(t, plan.Create(db))
	old := models.Subscription{
		TenantID: tenant.ID,
		PlanID:   plan.ID,
		Status:   models.SubscriptionStatusCancelled,
	}
	require.NoError(t, old.Create(db))

	ret, err := testService(db, &fakeGateway{}).Get(authorizedRC(db, tenant))
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", ret.Subscription.Status)
	assert.Equal(t, "Starter", ret.Subscription.Plan.Name)
}

func TestCreateSubscription(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createTenant(t, db, nil)
	plan := createPlan(t, db, nil)

	gw := &fakeGateway{}
	ret, err := testService(db, gw).Create(adminRC(db, tenant), &CreatePayload{PlanID: plan.ID})
	require.NoError(t, err)

	require.Len(t, gw.created, 1)
	assert.Equal(t, "plan_rzp_1", gw.created[0].GatewayPlanID)
	assert.Equal(t, 12, gw.created[0].TotalCount)

	assert.Equal(t, "sub_ext_1", ret.RazorpaySubscriptionID)
	assert.Equal(t, "https://rzp.io/i/checkout1", ret.ShortURL)
	assert.Equal(t, "created", ret.Status)

	sub := fetchSub(t, db, ret.SubscriptionID)
	assert.Equal(t, tenant.ID, sub.TenantID)
	assert.Equal(t, plan.ID, sub.PlanID)
	assert.Equal(t, "sub_ext_1", sub.RazorpaySubscriptionID)
	// Activation comes later via webhook.
	assert.Equal(t, models.SubscriptionStatusTrial, sub.Status)
}

func TestCreateSubscriptionSupersedesTrial(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createTenant(t, db, nil)
	plan := createPlan(t, db, nil)

	trial := models.Subscription{
		TenantID: tenant.ID,
		PlanID:   plan.ID,
		Status:   models.SubscriptionStatusTrial,
	}
	require.NoError(t, trial.Create(db))

	ret, err := testService(db, &fakeGateway{}).Create(adminRC(db, tenant), &CreatePayload{PlanID: plan.ID})
	require.NoError(t, err)

	oldSub := fetchSub(t, db, trial.ID)
	assert.Equal(t, models.SubscriptionStatusCancelled, oldSub.Status)
	assert.NotNil(t, oldSub.CanceledAt)

	newSub := fetchSub(t, db, ret.SubscriptionID)
	assert.Equal(t, "sub_ext_1", newSub.RazorpaySubscriptionID)
}

func TestCreateSubscriptionDeniedWhenAlreadyCurrent(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createSubFixture(t, db, nil, models.SubscriptionStatusActive)
	plan := createPlan(t, db, func(p *models.Plan) { p.Name = "Growth" })

	gw := &fakeGateway{}
	_, err := testService(db, gw).Create(adminRC(db, tenant), &CreatePayload{PlanID: plan.ID})
	assertCode(t, err, "SUBSCRIPTION_EXISTS")
	assert.Empty(t, gw.created)
}

func TestCreateSubscriptionUnknownPlan(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createTenant(t, db, nil)

	_, err := testService(db, &fakeGateway{}).Create(adminRC(db, tenant), &CreatePayload{PlanID: 777})
	assert.Equal(t, apierrors.ErrNotFound, errors.Cause(err))
}

func TestCreateSubscriptionPlanNotOnGateway(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createTenant(t, db, nil)
	plan := createPlan(t, db, func(p *models.Plan) { p.RazorpayPlanID = "" })

	_, err := testService(db, &fakeGateway{}).Create(adminRC(db, tenant), &CreatePayload{PlanID: plan.ID})
	assert.Equal(t, apierrors.ErrBadRequest, errors.Cause(err))
}

func TestCancelSubscription(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createTenant(t, db, nil)
	plan := createPlan(t, db, nil)

	periodEnd := time.Now().AddDate(0, 1, 0)
	sub := models.Subscription{
		TenantID:               tenant.ID,
		PlanID:                 plan.ID,
		Status:                 models.SubscriptionStatusActive,
		RazorpaySubscriptionID: "sub_ext_9",
		CurrentPeriodEnd:       &periodEnd,
	}
	require.NoError(t, sub.Create(db))

	gw := &fakeGateway{}
	require.NoError(t, testService(db, gw).Cancel(adminRC(db, tenant)))

	require.Len(t, gw.cancelled, 1)
	assert.Equal(t, "sub_ext_9", gw.cancelled[0])
	assert.True(t, gw.cancelAtCycleEnd)

	gotSub := fetchSub(t, db, sub.ID)
	// The cancelled status arrives with the gateway's webhook.
	assert.Equal(t, models.SubscriptionStatusActive, gotSub.Status)
	require.NotNil(t, gotSub.CancelAt)
	assert.Equal(t, periodEnd.Unix(), gotSub.CancelAt.Unix())
}

func TestCancelTrialSubscriptionLocally(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createSubFixture(t, db, nil, models.SubscriptionStatusTrial)

	gw := &fakeGateway{}
	require.NoError(t, testService(db, gw).Cancel(adminRC(db, tenant)))
	assert.Empty(t, gw.cancelled)

	var sub models.Subscription
	require.NoError(t, models.NewSubscriptionQuerySet(db).TenantIDEq(tenant.ID).One(&sub))
	assert.Equal(t, models.SubscriptionStatusCancelled, sub.Status)
	assert.NotNil(t, sub.CanceledAt)
}

func TestCancelWithoutSubscription(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createTenant(t, db, nil)

	err := testService(db, &fakeGateway{}).Cancel(adminRC(db, tenant))
	assert.Equal(t, apierrors.ErrNotFound, errors.Cause(err))
}

func TestCreateSubscriptionRequiresPermission(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := createTenant(t, db, nil)
	plan := createPlan(t, db, nil)

	role := models.Role{Name: "viewer"}
	require.NoError(t, role.Create(db))
	user := models.User{
		Email:    "viewer@asha.example",
		TenantID: &tenant.ID,
		RoleID:   role.ID,
		IsActive: true,
	}
	require.NoError(t, user.Create(db))

	rc := authorizedRC(db, tenant)
	rc.Actor.User = &user

	gw := &fakeGateway{}
	_, err := testService(db, gw).Create(rc, &CreatePayload{PlanID: plan.ID})
	assertCode(t, err, "PERMISSION_DENIED")
	assert.Empty(t, gw.created)
}
