package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionIsCurrent(t *testing.T) {
	assert.True(t, Subscription{Status: SubscriptionStatusActive}.IsCurrent())
	assert.True(t, Subscription{Status: SubscriptionStatusTrial}.IsCurrent())
	assert.True(t, Subscription{Status: SubscriptionStatusPastDue}.IsCurrent())
	assert.False(t, Subscription{Status: SubscriptionStatusCancelled}.IsCurrent())
	assert.False(t, Subscription{Status: SubscriptionStatusExpired}.IsCurrent())
}

func TestSubscriptionIsUsable(t *testing.T) {
	assert.True(t, Subscription{Status: SubscriptionStatusActive}.IsUsable())
	assert.True(t, Subscription{Status: SubscriptionStatusTrial}.IsUsable())
	assert.False(t, Subscription{Status: SubscriptionStatusPastDue}.IsUsable())
	assert.False(t, Subscription{Status: SubscriptionStatusCancelled}.IsUsable())
}

func TestTenantIsTrialExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, Tenant{Status: TenantStatusTrial, TrialEndsAt: &past}.IsTrialExpired(now))
	assert.False(t, Tenant{Status: TenantStatusTrial, TrialEndsAt: &future}.IsTrialExpired(now))
	assert.False(t, Tenant{Status: TenantStatusTrial}.IsTrialExpired(now))
	assert.False(t, Tenant{Status: TenantStatusActive, TrialEndsAt: &past}.IsTrialExpired(now))
}

func TestPlanLimitFor(t *testing.T) {
	plan := Plan{MaxProjects: 10, MaxUsers: 5}
	assert.Equal(t, int64(10), plan.LimitFor(ResourceProjects))
	assert.Equal(t, int64(5), plan.LimitFor(ResourceUsers))
	assert.Equal(t, int64(0), plan.LimitFor(ResourceBeneficiaries))
	assert.Equal(t, int64(0), plan.LimitFor(ResourceStorage))
}

func TestPlanHasFeature(t *testing.T) {
	plan := Plan{FinanceEnabled: true, APIAccess: true}
	assert.True(t, plan.HasFeature(FeatureFinance))
	assert.True(t, plan.HasFeature(FeatureAPIAccess))
	assert.False(t, plan.HasFeature(FeatureCompliance))
	assert.False(t, plan.HasFeature(FeatureCustomBranding))
	assert.False(t, plan.HasFeature(Feature("unknown")))
}
