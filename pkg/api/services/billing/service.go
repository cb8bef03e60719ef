package billing

import (
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/apierrors"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/policy"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/pkg/api/returntypes"
	"github.com/sahayog/sahayog-api/pkg/api/workers/primaryqueue/billingevents"
)

// SQS message size limit, minus headroom for the message envelope.
const maxWebhookBodyLen = 256 * 1024

const historyLimit = 100

type EventRequestContext struct {
	Gateway   string `request:"gateway,urlPart,"`
	Signature string `request:"X-Razorpay-Signature,header,optional"`
	EventID   string `request:"X-Razorpay-Event-Id,header,optional"`
}

func (r EventRequestContext) FillLogContext(lctx logutil.Context) {
	lctx["gateway"] = r.Gateway
}

type Service interface {
	//url:/v1/billing/{gateway}/events method:POST
	EventCreate(rc *request.AnonymousContext, reqCtx *EventRequestContext, body request.Body) error

	//url:/v1/billing/payments
	ListPayments(rc *request.AuthorizedContext) (*returntypes.PaymentListResponse, error)

	//url:/v1/billing/invoices
	ListInvoices(rc *request.AuthorizedContext) (*returntypes.InvoiceListResponse, error)
}

func NewBasicService(gf paymentgateways.Factory, authGate *policy.Gate, cfg config.Config,
	eventCreateQueue *billingevents.CreatorProducer) *BasicService {

	return &BasicService{
		gatewayFactory:   gf,
		authGate:         authGate,
		cfg:              cfg,
		eventCreateQueue: eventCreateQueue,
	}
}

type BasicService struct {
	gatewayFactory paymentgateways.Factory
	authGate       *policy.Gate
	cfg            config.Config

	eventCreateQueue *billingevents.CreatorProducer
}

func (s BasicService) EventCreate(rc *request.AnonymousContext, reqCtx *EventRequestContext, body request.Body) error {
	gw, err := s.gatewayFactory.Build(reqCtx.Gateway)
	if err != nil {
		return errors.Wrapf(apierrors.ErrBadRequest, "unknown gateway %q", reqCtx.Gateway)
	}

	if len(body) > maxWebhookBodyLen {
		return errors.Wrapf(apierrors.ErrBadRequest, "too big webhook body of len %d", len(body))
	}

	if err := gw.VerifyWebhookSignature(body, reqCtx.Signature); err != nil {
		rc.Log.Warnf("Rejected %s webhook: %s", reqCtx.Gateway, err)
		// Don't tell the caller what exactly is wrong with the signature.
		return errors.Wrap(apierrors.ErrNotAuthorized, "invalid signature")
	}

	if err := s.eventCreateQueue.Put(reqCtx.Gateway, reqCtx.EventID, string(body)); err != nil {
		return errors.Wrap(err, "failed to put to event create queue")
	}

	rc.Log.Infof("Enqueued %s webhook event %q of len %d", reqCtx.Gateway, reqCtx.EventID, len(body))
	return nil
}

func (s BasicService) financeRequirements() policy.Requirements {
	return policy.Requirements{
		Permission: &policy.PermissionRef{
			Resource: models.ResourceFinance,
			Action:   policy.ActionRead,
		},
		Feature: models.FeatureFinance,
	}
}

func (s BasicService) tenantSubscriptionIDs(rc *request.AuthorizedContext) ([]uint, error) {
	var subs []models.Subscription
	err := models.NewSubscriptionQuerySet(rc.DB).TenantIDEq(rc.Actor.Tenant.ID).All(&subs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch tenant subscriptions")
	}

	ids := make([]uint, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ID)
	}
	return ids, nil
}

func (s BasicService) ListPayments(rc *request.AuthorizedContext) (*returntypes.PaymentListResponse, error) {
	if err := s.authGate.Check(rc, s.financeRequirements()); err != nil {
		return nil, err
	}

	subIDs, err := s.tenantSubscriptionIDs(rc)
	if err != nil {
		return nil, err
	}

	ret := returntypes.PaymentListResponse{
		Payments: []returntypes.PaymentInfo{},
	}
	if len(subIDs) == 0 {
		return &ret, nil
	}

	var payments []models.Payment
	err = models.NewPaymentQuerySet(rc.DB).
		SubscriptionIDIn(subIDs...).
		OrderDescByCreatedAt().
		Limit(historyLimit).
		All(&payments)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch payments")
	}

	for _, p := range payments {
		ret.Payments = append(ret.Payments, returntypes.PaymentInfo{
			ID:            p.ID,
			Amount:        p.Amount,
			Currency:      p.Currency,
			Status:        string(p.Status),
			Method:        p.Method,
			FailureReason: p.FailureReason,
			PaidAt:        p.PaidAt,
		})
	}

	return &ret, nil
}

func (s BasicService) ListInvoices(rc *request.AuthorizedContext) (*returntypes.InvoiceListResponse, error) {
	if err := s.authGate.Check(rc, s.financeRequirements()); err != nil {
		return nil, err
	}

	subIDs, err := s.tenantSubscriptionIDs(rc)
	if err != nil {
		return nil, err
	}

	ret := returntypes.InvoiceListResponse{
		Invoices: []returntypes.InvoiceInfo{},
	}
	if len(subIDs) == 0 {
		return &ret, nil
	}

	var invoices []models.Invoice
	err = models.NewInvoiceQuerySet(rc.DB).
		SubscriptionIDIn(subIDs...).
		OrderDescByCreatedAt().
		Limit(historyLimit).
		All(&invoices)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch invoices")
	}

	for _, inv := range invoices {
		ret.Invoices = append(ret.Invoices, returntypes.InvoiceInfo{
			ID:                 inv.ID,
			InvoiceNumber:      inv.InvoiceNumber,
			Amount:             inv.Amount,
			Tax:                inv.Tax,
			Total:              inv.Total,
			Currency:           inv.Currency,
			Status:             string(inv.Status),
			BillingPeriodStart: inv.BillingPeriodStart,
			BillingPeriodEnd:   inv.BillingPeriodEnd,
			PaidAt:             inv.PaidAt,
		})
	}

	return &ret, nil
}
