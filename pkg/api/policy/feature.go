package policy

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
)

type SubscriptionFeatures struct {
	log logutil.Log
	db  *gorm.DB
	cfg config.Config
}

func NewSubscriptionFeatures(log logutil.Log, db *gorm.DB, cfg config.Config) *SubscriptionFeatures {
	return &SubscriptionFeatures{
		log: log,
		db:  db,
		cfg: cfg,
	}
}

// CurrentEntitlement fetches the tenant's current subscription and its plan.
func (s SubscriptionFeatures) CurrentEntitlement(tenantID uint) (*models.Subscription, *models.Plan, error) {
	var sub models.Subscription
	err := models.NewSubscriptionQuerySet(s.db).
		TenantIDEq(tenantID).
		StatusIn(models.CurrentSubscriptionStatuses...).
		OrderDescByCreatedAt().
		One(&sub)
	if err == gorm.ErrRecordNotFound {
		s.log.Infof("No current subscription for tenant %d", tenantID)
		return nil, nil, ErrNoActiveSubscription
	} else if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to fetch subscription of tenant %d", tenantID)
	}

	if !sub.IsUsable() {
		if !s.cfg.GetBool("PAST_DUE_GRACE_ENABLED", false) {
			return nil, nil, ErrNoActiveSubscription
		}

		s.log.Infof("Subscription %d of tenant %d is %s, allowing by grace", sub.ID, tenantID, sub.Status)
	}

	var plan models.Plan
	if err := models.NewPlanQuerySet(s.db).IDEq(sub.PlanID).One(&plan); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to fetch plan %d of subscription %d", sub.PlanID, sub.ID)
	}

	return &sub, &plan, nil
}

func (s SubscriptionFeatures) CheckFeature(plan *models.Plan, f models.Feature) error {
	if !s.cfg.GetBool("NEED_CHECK_FEATURE_GATES", true) {
		s.log.Infof("Don't check feature gates by config")
		return nil
	}

	if !plan.HasFeature(f) {
		return ErrFeatureNotInPlan.WithMessage(string(f))
	}

	return nil
}
