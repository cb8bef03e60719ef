package razorpay

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/internal/shared/queue/consumers"
	"github.com/sahayog/sahayog-api/pkg/api/models"
)

type EventProcessor struct {
	Tx  *gorm.DB
	Log logutil.Log
}

const (
	eventSubActivated  = "subscription.activated"
	eventSubCharged    = "subscription.charged"
	eventSubCompleted  = "subscription.completed"
	eventSubCancelled  = "subscription.cancelled"
	eventSubPaused     = "subscription.paused"
	eventSubResumed    = "subscription.resumed"
	eventPaymentFailed = "payment.failed"
)

func (ep EventProcessor) parseEvent(payload string) (*webhookEvent, error) {
	var ev webhookEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return nil, errors.Wrapf(err, "failed to parse body of len %d", len(payload))
	}

	if ev.Event == "" {
		return nil, errors.New("no event key")
	}

	ep.Log.Infof("Got razorpay event of type %s", ev.Event)
	return &ev, nil
}

// Process applies one webhook event inside the transaction ep.Tx.
// Parse failures are permanent; store failures roll the transaction
// back and the message gets redelivered.
func (ep EventProcessor) Process(payload string, gatewayEventID string, eventUUID string) error {
	ev, err := ep.parseEvent(payload)
	if err != nil {
		return errors.Wrapf(consumers.ErrBadMessage, "failed to parse razorpay event: %s", err)
	}

	dedupeID := gatewayEventID
	if dedupeID == "" {
		// Old gateway webhooks don't send the event id header.
		dedupeID = eventUUID
	}

	var existingEv models.BillingEvent
	err = models.NewBillingEventQuerySet(ep.Tx).GatewayEventIDEq(dedupeID).One(&existingEv)
	if err == nil {
		ep.Log.Infof("Event with id %s was already processed: it exists in db", dedupeID)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return errors.Wrapf(err, "failed to check event %s for existence", dedupeID)
	}

	switch ev.Event {
	case eventSubActivated:
		err = ep.processSubActivated(ev)
	case eventSubCharged:
		err = ep.processSubCharged(ev)
	case eventSubCompleted:
		err = ep.processSubCompleted(ev)
	case eventSubCancelled:
		err = ep.processSubCancelled(ev)
	case eventSubPaused, eventSubResumed:
		// Pause/resume doesn't change entitlements yet, only journal it.
		ep.Log.Infof("Journaling %s event without state change", ev.Event)
	case eventPaymentFailed:
		err = ep.processPaymentFailed(ev)
	default:
		ep.Log.Warnf("Ignoring unknown razorpay event type %s", ev.Event)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to process %s event", ev.Event)
	}

	return ep.saveEvent(ev, dedupeID)
}

func (ep EventProcessor) saveEvent(ev *webhookEvent, dedupeID string) error {
	payloadJSON, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "failed to marshal json")
	}

	dbEvent := models.BillingEvent{
		Gateway:        GatewayName,
		GatewayEventID: dedupeID,
		Type:           ev.Event,
		Data:           payloadJSON,
	}
	if err := dbEvent.Create(ep.Tx); err != nil {
		return errors.Wrap(err, "failed to save event to db")
	}

	return nil
}

func (ep EventProcessor) fetchSubscription(ev *webhookEvent) (*models.Subscription, *subscriptionEntity, error) {
	if ev.Payload.Subscription == nil {
		return nil, nil, errors.New("no subscription in payload")
	}

	entity := ev.Payload.Subscription.Entity
	var sub models.Subscription
	err := models.NewSubscriptionQuerySet(ep.Tx).RazorpaySubscriptionIDEq(entity.ID).One(&sub)
	if err == gorm.ErrRecordNotFound {
		return nil, &entity, nil
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to fetch sub with gateway id %s", entity.ID)
	}

	return &sub, &entity, nil
}

func (ep EventProcessor) processSubActivated(ev *webhookEvent) error {
	sub, entity, err := ep.fetchSubscription(ev)
	if err != nil {
		return err
	}
	if sub == nil {
		ep.Log.Warnf("No subscription with gateway id %s, skipping activation", entity.ID)
		return nil
	}

	periodStart := time.Unix(entity.CurrentStart, 0)
	periodEnd := time.Unix(entity.CurrentEnd, 0)
	err = models.NewSubscriptionQuerySet(ep.Tx).IDEq(sub.ID).GetUpdater().
		SetStatus(models.SubscriptionStatusActive).
		SetCurrentPeriodStart(&periodStart).
		SetCurrentPeriodEnd(&periodEnd).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to activate subscription %d", sub.ID)
	}

	if err = ep.activateTenant(sub.TenantID); err != nil {
		return err
	}

	ep.Log.Infof("Activated subscription %d of tenant %d", sub.ID, sub.TenantID)
	return nil
}

func (ep EventProcessor) activateTenant(tenantID uint) error {
	err := models.NewTenantQuerySet(ep.Tx).IDEq(tenantID).GetUpdater().
		SetStatus(models.TenantStatusActive).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to activate tenant %d", tenantID)
	}

	return nil
}

func (ep EventProcessor) processSubCharged(ev *webhookEvent) error {
	if ev.Payload.Payment == nil {
		return errors.New("no payment in payload")
	}
	pe := ev.Payload.Payment.Entity

	sub, entity, err := ep.fetchSubscription(ev)
	if err != nil {
		return err
	}
	if sub == nil {
		ep.Log.Warnf("No subscription with gateway id %s, skipping charge", entity.ID)
		return nil
	}

	var existingPayment models.Payment
	err = models.NewPaymentQuerySet(ep.Tx).RazorpayPaymentIDEq(pe.ID).One(&existingPayment)
	if err == nil {
		ep.Log.Infof("Payment %s was already recorded as id %d", pe.ID, existingPayment.ID)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return errors.Wrapf(err, "failed to check payment %s for existence", pe.ID)
	}

	paidAt := time.Unix(pe.CreatedAt, 0)
	payment := models.Payment{
		SubscriptionID:    sub.ID,
		Amount:            pe.Amount,
		Currency:          pe.Currency,
		Status:            models.PaymentStatusSuccess,
		RazorpayPaymentID: pe.ID,
		RazorpayOrderID:   pe.OrderID,
		Method:            pe.Method,
		PaidAt:            &paidAt,
	}
	if err = payment.Create(ep.Tx); err != nil {
		return errors.Wrap(err, "failed to save payment to db")
	}

	invoice, err := ep.buildInvoice(sub, &payment, entity, paidAt)
	if err != nil {
		return err
	}
	if err = invoice.Create(ep.Tx); err != nil {
		return errors.Wrap(err, "failed to save invoice to db")
	}

	periodStart := time.Unix(entity.CurrentStart, 0)
	periodEnd := time.Unix(entity.CurrentEnd, 0)
	err = models.NewSubscriptionQuerySet(ep.Tx).IDEq(sub.ID).GetUpdater().
		SetStatus(models.SubscriptionStatusActive).
		SetCurrentPeriodStart(&periodStart).
		SetCurrentPeriodEnd(&periodEnd).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to advance period of subscription %d", sub.ID)
	}

	if err = ep.activateTenant(sub.TenantID); err != nil {
		return err
	}

	ep.Log.Infof("Recorded charge %s of %d %s for subscription %d, invoice %s",
		pe.ID, pe.Amount, pe.Currency, sub.ID, invoice.InvoiceNumber)
	return nil
}

func (ep EventProcessor) buildInvoice(sub *models.Subscription, payment *models.Payment,
	entity *subscriptionEntity, paidAt time.Time) (*models.Invoice, error) {

	// The sequence is scoped to the processing month. Scoping it to the
	// charge's own timestamp would make a late delivery count over a
	// closed month and reuse its numbers.
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	monthCount, err := models.NewInvoiceQuerySet(ep.Tx).
		CreatedAtGte(monthStart).
		CreatedAtLt(nextMonthStart).
		Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count invoices of current month")
	}

	periodStart := time.Unix(entity.CurrentStart, 0)
	periodEnd := time.Unix(entity.CurrentEnd, 0)
	return &models.Invoice{
		SubscriptionID:     sub.ID,
		PaymentID:          &payment.ID,
		InvoiceNumber:      models.BuildInvoiceNumber(now, monthCount+1),
		Amount:             payment.Amount,
		Tax:                0,
		Total:              payment.Amount,
		Currency:           payment.Currency,
		Status:             models.InvoiceStatusPaid,
		BillingPeriodStart: &periodStart,
		BillingPeriodEnd:   &periodEnd,
		PaidAt:             &paidAt,
	}, nil
}

func (ep EventProcessor) processSubCompleted(ev *webhookEvent) error {
	sub, entity, err := ep.fetchSubscription(ev)
	if err != nil {
		return err
	}
	if sub == nil {
		ep.Log.Warnf("No subscription with gateway id %s, skipping completion", entity.ID)
		return nil
	}

	err = models.NewSubscriptionQuerySet(ep.Tx).IDEq(sub.ID).GetUpdater().
		SetStatus(models.SubscriptionStatusExpired).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to expire subscription %d", sub.ID)
	}

	ep.Log.Infof("Subscription %d completed all cycles, marked expired", sub.ID)
	return nil
}

func (ep EventProcessor) processSubCancelled(ev *webhookEvent) error {
	sub, entity, err := ep.fetchSubscription(ev)
	if err != nil {
		return err
	}
	if sub == nil {
		ep.Log.Warnf("No subscription with gateway id %s, skipping cancellation", entity.ID)
		return nil
	}

	canceledAt := time.Now()
	if entity.EndedAt != nil {
		canceledAt = time.Unix(*entity.EndedAt, 0)
	}

	err = models.NewSubscriptionQuerySet(ep.Tx).IDEq(sub.ID).GetUpdater().
		SetStatus(models.SubscriptionStatusCancelled).
		SetCanceledAt(&canceledAt).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to cancel subscription %d", sub.ID)
	}

	err = models.NewTenantQuerySet(ep.Tx).IDEq(sub.TenantID).GetUpdater().
		SetStatus(models.TenantStatusCancelled).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to mark tenant %d cancelled", sub.TenantID)
	}

	ep.Log.Infof("Cancelled subscription %d of tenant %d", sub.ID, sub.TenantID)
	return nil
}

func (ep EventProcessor) processPaymentFailed(ev *webhookEvent) error {
	if ev.Payload.Payment == nil {
		return errors.New("no payment in payload")
	}
	pe := ev.Payload.Payment.Entity

	var existingPayment models.Payment
	err := models.NewPaymentQuerySet(ep.Tx).RazorpayPaymentIDEq(pe.ID).One(&existingPayment)
	if err == nil {
		ep.Log.Infof("Payment %s was already recorded as id %d", pe.ID, existingPayment.ID)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return errors.Wrapf(err, "failed to check payment %s for existence", pe.ID)
	}

	sub, entity, err := ep.fetchSubscription(ev)
	if err != nil {
		if ev.Payload.Subscription == nil {
			// Failed payments outside subscriptions: journal only.
			ep.Log.Warnf("Failed payment %s has no subscription in payload", pe.ID)
			return nil
		}

		return err
	}
	if sub == nil {
		ep.Log.Warnf("No subscription with gateway id %s, skipping failed payment", entity.ID)
		return nil
	}

	failureReason := pe.ErrorDescription
	if failureReason == "" {
		failureReason = pe.ErrorCode
	}
	if failureReason == "" {
		failureReason = fmt.Sprintf("payment status %s", pe.Status)
	}

	payment := models.Payment{
		SubscriptionID:    sub.ID,
		Amount:            pe.Amount,
		Currency:          pe.Currency,
		Status:            models.PaymentStatusFailed,
		RazorpayPaymentID: pe.ID,
		RazorpayOrderID:   pe.OrderID,
		Method:            pe.Method,
		FailureReason:     failureReason,
	}
	if err = payment.Create(ep.Tx); err != nil {
		return errors.Wrap(err, "failed to save payment to db")
	}

	err = models.NewSubscriptionQuerySet(ep.Tx).IDEq(sub.ID).GetUpdater().
		SetStatus(models.SubscriptionStatusPastDue).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to mark subscription %d past due", sub.ID)
	}

	ep.Log.Infof("Recorded failed payment %s for subscription %d: %s", pe.ID, sub.ID, failureReason)
	return nil
}
