package subscription

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/apierrors"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/implementations/razorpay"
	"github.com/sahayog/sahayog-api/internal/api/paymentgateways/paymentgateway"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/policy"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/pkg/api/returntypes"
)

var ErrAlreadySubscribed = apierrors.NewNotAcceptableError("SUBSCRIPTION_EXISTS")

type CreatePayload struct {
	PlanID uint `json:"planId"`
}

type Service interface {
	//url:/v1/subscription
	Get(rc *request.AuthorizedContext) (*returntypes.WrappedSubscriptionInfo, error)

	//url:/v1/subscription method:POST
	Create(rc *request.AuthorizedContext, payload *CreatePayload) (*returntypes.CheckoutInfo, error)

	//url:/v1/subscription method:DELETE
	Cancel(rc *request.AuthorizedContext) error
}

func NewBasicService(gf paymentgateways.Factory, authGate *policy.Gate, cfg config.Config) *BasicService {
	return &BasicService{
		gatewayFactory: gf,
		authGate:       authGate,
		cfg:            cfg,
	}
}

type BasicService struct {
	gatewayFactory paymentgateways.Factory
	authGate       *policy.Gate
	cfg            config.Config
}

func planInfoFromModel(plan *models.Plan) returntypes.PlanInfo {
	return returntypes.PlanInfo{
		ID:                plan.ID,
		Name:              plan.Name,
		Price:             plan.Price,
		Interval:          string(plan.Interval),
		MaxProjects:       plan.MaxProjects,
		MaxUsers:          plan.MaxUsers,
		MaxBeneficiaries:  plan.MaxBeneficiaries,
		MaxStorageMB:      plan.MaxStorageMB,
		FinanceEnabled:    plan.FinanceEnabled,
		ComplianceEnabled: plan.ComplianceEnabled,
		APIAccess:         plan.APIAccess,
		CustomBranding:    plan.CustomBranding,
	}
}

func (s BasicService) Get(rc *request.AuthorizedContext) (*returntypes.WrappedSubscriptionInfo, error) {
	tenant := rc.Actor.Tenant

	var sub models.Subscription
	err := models.NewSubscriptionQuerySet(rc.DB).
		TenantIDEq(tenant.ID).
		StatusIn(models.CurrentSubscriptionStatuses...).
		OrderDescByCreatedAt().
		One(&sub)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.Wrapf(apierrors.ErrNotFound, "no current subscription for tenant %d", tenant.ID)
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to fetch current subscription")
	}

	var plan models.Plan
	if err := models.NewPlanQuerySet(rc.DB).IDEq(sub.PlanID).One(&plan); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch plan %d", sub.PlanID)
	}

	status := string(sub.Status)
	isTrialExpired := tenant.IsTrialExpired(time.Now())
	if isTrialExpired && sub.Status == models.SubscriptionStatusTrial {
		// Expiry is surfaced lazily: the row stays TRIAL until a sweep
		// or webhook moves it on.
		status = string(models.SubscriptionStatusExpired)
	}

	return &returntypes.WrappedSubscriptionInfo{
		Subscription: returntypes.SubscriptionInfo{
			ID:                 sub.ID,
			Status:             status,
			Plan:               planInfoFromModel(&plan),
			CurrentPeriodStart: sub.CurrentPeriodStart,
			CurrentPeriodEnd:   sub.CurrentPeriodEnd,
			CanceledAt:         sub.CanceledAt,
			TrialEndsAt:        tenant.TrialEndsAt,
			IsTrialExpired:     isTrialExpired,
		},
	}, nil
}

func (s BasicService) manageRequirements() policy.Requirements {
	return policy.Requirements{
		Permission: &policy.PermissionRef{
			Resource: models.ResourceFinance,
			Action:   policy.ActionWrite,
		},
	}
}

func (s BasicService) gatewayName() string {
	if n := s.cfg.GetString("PAYMENT_GATEWAY"); n != "" {
		return n
	}

	return razorpay.GatewayName
}

// gatewayCycleCount returns how many billing cycles to authorize
// upfront: razorpay requires the total count at creation time.
func gatewayCycleCount(interval models.PlanInterval) int {
	switch interval {
	case models.PlanIntervalMonthly:
		return 12
	case models.PlanIntervalQuarterly:
		return 4
	case models.PlanIntervalYearly:
		return 1
	}

	return 12
}

func (s BasicService) Create(rc *request.AuthorizedContext, payload *CreatePayload) (*returntypes.CheckoutInfo, error) {
	if err := s.authGate.Check(rc, s.manageRequirements()); err != nil {
		return nil, err
	}

	var plan models.Plan
	err := models.NewPlanQuerySet(rc.DB).IDEq(payload.PlanID).IsActiveEq(true).One(&plan)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.Wrapf(apierrors.ErrNotFound, "no active plan %d", payload.PlanID)
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch plan %d", payload.PlanID)
	}
	if plan.RazorpayPlanID == "" {
		return nil, errors.Wrapf(apierrors.ErrBadRequest, "plan %d isn't registered with the payment gateway", plan.ID)
	}

	tenant := rc.Actor.Tenant
	var cur models.Subscription
	err = models.NewSubscriptionQuerySet(rc.DB).
		TenantIDEq(tenant.ID).
		StatusIn(models.SubscriptionStatusActive, models.SubscriptionStatusPastDue).
		OrderDescByCreatedAt().
		One(&cur)
	if err == nil {
		return nil, ErrAlreadySubscribed.WithMessage(fmt.Sprintf("subscription %d is still current", cur.ID))
	}
	if err != gorm.ErrRecordNotFound {
		return nil, errors.Wrap(err, "failed to check for current subscription")
	}

	gw, err := s.gatewayFactory.Build(s.gatewayName())
	if err != nil {
		return nil, errors.Wrap(err, "failed to build payment gateway")
	}

	gwSub, err := gw.CreateSubscription(rc.Ctx, paymentgateway.SubscriptionCreatePayload{
		GatewayPlanID: plan.RazorpayPlanID,
		TotalCount:    gatewayCycleCount(plan.Interval),
		Notes: map[string]string{
			"tenant_id": fmt.Sprintf("%d", tenant.ID),
			"plan":      plan.Name,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create subscription on %s", s.gatewayName())
	}

	// A leftover trial subscription is superseded by the purchase.
	now := time.Now()
	err = models.NewSubscriptionQuerySet(rc.DB).
		TenantIDEq(tenant.ID).
		StatusEq(models.SubscriptionStatusTrial).
		GetUpdater().
		SetStatus(models.SubscriptionStatusCancelled).
		SetCanceledAt(&now).
		Update()
	if err != nil {
		return nil, errors.Wrap(err, "failed to supersede trial subscription")
	}

	// The new subscription stays on trial entitlements until the
	// gateway confirms activation via webhook.
	sub := models.Subscription{
		TenantID:               tenant.ID,
		PlanID:                 plan.ID,
		Status:                 models.SubscriptionStatusTrial,
		RazorpaySubscriptionID: gwSub.ID,
	}
	if err := sub.Create(rc.DB); err != nil {
		return nil, errors.Wrap(err, "failed to save subscription to db")
	}

	rc.Log.Infof("Created gateway subscription %s for tenant %d on plan %s", gwSub.ID, tenant.ID, plan.Name)
	return &returntypes.CheckoutInfo{
		SubscriptionID:         sub.ID,
		RazorpaySubscriptionID: gwSub.ID,
		ShortURL:               gwSub.ShortURL,
		Status:                 string(gwSub.Status),
	}, nil
}

func (s BasicService) Cancel(rc *request.AuthorizedContext) error {
	if err := s.authGate.Check(rc, s.manageRequirements()); err != nil {
		return err
	}

	tenant := rc.Actor.Tenant
	var sub models.Subscription
	err := models.NewSubscriptionQuerySet(rc.DB).
		TenantIDEq(tenant.ID).
		StatusIn(models.CurrentSubscriptionStatuses...).
		OrderDescByCreatedAt().
		One(&sub)
	if err == gorm.ErrRecordNotFound {
		return errors.Wrapf(apierrors.ErrNotFound, "no current subscription for tenant %d", tenant.ID)
	} else if err != nil {
		return errors.Wrap(err, "failed to fetch current subscription")
	}

	now := time.Now()
	if sub.RazorpaySubscriptionID == "" {
		// Trial subscriptions have no gateway side, cancel right away.
		err = models.NewSubscriptionQuerySet(rc.DB).IDEq(sub.ID).GetUpdater().
			SetStatus(models.SubscriptionStatusCancelled).
			SetCanceledAt(&now).
			Update()
		if err != nil {
			return errors.Wrapf(err, "failed to cancel subscription %d", sub.ID)
		}

		rc.Log.Infof("Cancelled trial subscription %d of tenant %d", sub.ID, tenant.ID)
		return nil
	}

	gw, err := s.gatewayFactory.Build(s.gatewayName())
	if err != nil {
		return errors.Wrap(err, "failed to build payment gateway")
	}

	if err := gw.CancelSubscription(rc.Ctx, sub.RazorpaySubscriptionID, true); err != nil {
		return errors.Wrapf(err, "failed to cancel subscription %s on %s",
			sub.RazorpaySubscriptionID, s.gatewayName())
	}

	// The status flips when the gateway confirms via webhook; until
	// then only the scheduled cancellation point is recorded.
	cancelAt := sub.CurrentPeriodEnd
	if cancelAt == nil {
		cancelAt = &now
	}
	err = models.NewSubscriptionQuerySet(rc.DB).IDEq(sub.ID).GetUpdater().
		SetCancelAt(cancelAt).
		Update()
	if err != nil {
		return errors.Wrapf(err, "failed to schedule cancellation of subscription %d", sub.ID)
	}

	rc.Log.Infof("Requested cancellation of subscription %d of tenant %d at cycle end", sub.ID, tenant.ID)
	return nil
}
