package billing

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
	"github.com/sahayog/sahayog-api/internal/shared/queue"
	"github.com/sahayog/sahayog-api/internal/shared/queue/producers"
	"github.com/sahayog/sahayog-api/pkg/api/auth"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/policy"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/pkg/api/usage"
	"github.com/sahayog/sahayog-api/pkg/api/workers/primaryqueue/billingevents"
	"github.com/sahayog/sahayog-api/test/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	verifyErr error
}

func (g fakeGateway) Name() string {
	return "fake"
}

func (g fakeGateway) VerifyWebhookSignature(body []byte, signature string) error {
	return g.verifyErr
}

func (g fakeGateway) CreateSubscription(ctx context.Context,
	payload paymentgateway.SubscriptionCreatePayload) (*paymentgateway.Subscription, error) {

	return nil, errors.New("not implemented")
}

func (g fakeGateway) CancelSubscription(ctx context.Context, subID string, atCycleEnd bool) error {
	return errors.New("not implemented")
}

type fakeGatewayFactory struct {
	gw paymentgateway.Gateway
}

func (f fakeGatewayFactory) Build(gateway string) (paymentgateway.Gateway, error) {
	if f.gw == nil {
		return nil, errors.New("unknown gateway")
	}

	return f.gw, nil
}

type recordingQueue struct {
	messages []queue.Message
}

func (q *recordingQueue) Put(message queue.Message) error {
	q.messages = append(q.messages, message)
	return nil
}

func testEventService(t *testing.T, gw paymentgateway.Gateway) (*BasicService, *recordingQueue) {
	log := logutil.NewStderrLog("test")

	rq := &recordingQueue{}
	qp := &billingevents.CreatorProducer{}
	require.NoError(t, qp.Register(producers.NewMultiplexer(rq)))

	svc := NewBasicService(fakeGatewayFactory{gw: gw}, nil, config.NewEnvConfig(log), qp)
	return svc, rq
}

func anonymousRC(db *gorm.DB) *request.AnonymousContext {
	log := logutil.NewStderrLog("test")
	return &request.AnonymousContext{
		BaseContext: request.BaseContext{
			Ctx:       context.Background(),
			Log:       log,
			Lctx:      logutil.Context{},
			DB:        db,
			StartedAt: time.Now(),
		},
	}
}

func TestEventCreateRejectsUnknownGateway(t *testing.T) {
	svc, rq := testEventService(t, nil)

	err := svc.EventCreate(anonymousRC(nil), &EventRequestContext{Gateway: "paypal"}, request.Body("{}"))
	assert.Equal(t, apierrors.ErrBadRequest, errors.Cause(err))
	assert.Empty(t, rq.messages)
}

func TestEventCreateRejectsTooBigBody(t *testing.T) {
	svc, rq := testEventService(t, fakeGateway{})

	body := make(request.Body, maxWebhookBodyLen+1)
	err := svc.EventCreate(anonymousRC(nil), &EventRequestContext{Gateway: "razorpay"}, body)
	assert.Equal(t, apierrors.ErrBadRequest, errors.Cause(err))
	assert.Empty(t, rq.messages)
}

func TestEventCreateRejectsInvalidSignature(t *testing.T) {
	svc, rq := testEventService(t, fakeGateway{verifyErr: errors.New("signature mismatch")})

	err := svc.EventCreate(anonymousRC(nil),
		&EventRequestContext{Gateway: "razorpay", Signature: "bad"}, request.Body("{}"))
	assert.Equal(t, apierrors.ErrNotAuthorized, errors.Cause(err))
	assert.Empty(t, rq.messages)
}

func TestEventCreateEnqueuesEvent(t *testing.T) {
	svc, rq := testEventService(t, fakeGateway{})

	reqCtx := &EventRequestContext{
		Gateway:   "razorpay",
		Signature: "good",
		EventID:   "evt_1",
	}
	err := svc.EventCreate(anonymousRC(nil), reqCtx, request.Body(`{"event": "subscription.activated"}`))
	require.NoError(t, err)
	assert.Len(t, rq.messages, 1)
}

func setupBillingHistory(t *testing.T, db *gorm.DB) *request.AuthorizedContext {
	tenant := models.Tenant{
		Name:      "Asha Foundation",
		Subdomain: "asha",
		IsActive:  true,
		Status:    models.TenantStatusActive,
	}
	require.NoError(t, tenant.Create(db))

	plan := models.Plan{Name: "Starter", Price: 49900, Interval: models.PlanIntervalMonthly, IsActive: true}
	require.NoError(t, plan.Create(db))

	sub := models.Subscription{TenantID: tenant.ID, PlanID: plan.ID, Status: models.SubscriptionStatusActive}
	require.NoError(t, sub.Create(db))

	paidAt := time.Now()
	payment := models.Payment{
		SubscriptionID:    sub.ID,
		Amount:            49900,
		Currency:          "INR",
		Status:            models.PaymentStatusSuccess,
		RazorpayPaymentID: "pay_1",
		Method:            "upi",
		PaidAt:            &paidAt,
	}
	require.NoError(t, payment.Create(db))

	invoice := models.Invoice{
		SubscriptionID: sub.ID,
		PaymentID:      &payment.ID,
		InvoiceNumber:  models.BuildInvoiceNumber(paidAt, 1),
		Amount:         49900,
		Total:          49900,
		Currency:       "INR",
		Status:         models.InvoiceStatusPaid,
		PaidAt:         &paidAt,
	}
	require.NoError(t, invoice.Create(db))

	// Platform admin bypasses the finance gate.
	user := models.User{
		Email:           "admin@sahayog.example",
		Name:            "Admin",
		TenantID:        &tenant.ID,
		RoleID:          1,
		IsActive:        true,
		IsPlatformAdmin: true,
	}
	require.NoError(t, user.Create(db))

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
			User:   &user,
			Tenant: &tenant,
		},
	}
}

func testHistoryService(db *gorm.DB) *BasicService {
	log := logutil.NewStderrLog("test")
	cfg := config.NewEnvConfig(log)
	gate := policy.NewGate(log, db, cfg, usage.NewAccountant(log))
	return NewBasicService(fakeGatewayFactory{}, gate, cfg, nil)
}

func TestListPayments(t *testing.T) {
	db := dbtest.OpenDB(t)
	rc := setupBillingHistory(t, db)

	ret, err := testHistoryService(db).ListPayments(rc)
	require.NoError(t, err)
	require.Len(t, ret.Payments, 1)
	assert.Equal(t, int64(49900), ret.Payments[0].Amount)
	assert.Equal(t, "SUCCESS", ret.Payments[0].Status)
	assert.Equal(t, "upi", ret.Payments[0].Method)
}

func TestListInvoices(t *testing.T) {
	db := dbtest.OpenDB(t)
	rc := setupBillingHistory(t, db)

	ret, err := testHistoryService(db).ListInvoices(rc)
	require.NoError(t, err)
	require.Len(t, ret.Invoices, 1)
	assert.Equal(t, "PAID", ret.Invoices[0].Status)
	assert.Equal(t, int64(49900), ret.Invoices[0].Total)
	assert.NotEmpty(t, ret.Invoices[0].InvoiceNumber)
}

func TestListPaymentsWithoutSubscriptions(t *testing.T) {
	db := dbtest.OpenDB(t)
	rc := setupBillingHistory(t, db)

	// Point the actor at a tenant with no billing history.
	other := models.Tenant{Name: "Other", Subdomain: "other", IsActive: true, Status: models.TenantStatusActive}
	require.NoError(t, other.Create(db))
	rc.Actor.Tenant = &other

	ret, err := testHistoryService(db).ListPayments(rc)
	require.NoError(t, err)
	assert.Empty(t, ret.Payments)
}
