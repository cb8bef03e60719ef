package usage

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/policy"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/pkg/api/returntypes"
	"github.com/sahayog/sahayog-api/pkg/api/usage"
)

// nearLimitPercent matches the limits watcher threshold.
const nearLimitPercent = 80

type Service interface {
	//url:/v1/usage
	Get(rc *request.AuthorizedContext) (*returntypes.UsageResponse, error)

	//url:/v1/internal/usage/snapshot method:POST
	TriggerSnapshot(rc *request.InternalContext) error
}

func NewBasicService(accountant *usage.Accountant, features *policy.SubscriptionFeatures) *BasicService {
	return &BasicService{
		accountant: accountant,
		features:   features,
	}
}

type BasicService struct {
	accountant *usage.Accountant
	features   *policy.SubscriptionFeatures
}

func (s BasicService) Get(rc *request.AuthorizedContext) (*returntypes.UsageResponse, error) {
	tenantID := rc.Actor.Tenant.ID

	_, plan, err := s.features.CurrentEntitlement(tenantID)
	if err != nil {
		return nil, err
	}

	ret := returntypes.UsageResponse{
		TenantID: tenantID,
		Usage:    []returntypes.ResourceUsage{},
	}
	for _, r := range models.CountableResources {
		used, err := s.accountant.Count(rc.DB, tenantID, r)
		if err != nil {
			return nil, err
		}

		limit := plan.LimitFor(r)
		ret.Usage = append(ret.Usage, returntypes.ResourceUsage{
			Resource:    string(r),
			Used:        used,
			Limit:       limit,
			IsUnlimited: limit == 0,
			NearLimit:   limit > 0 && used*100 >= limit*nearLimitPercent,
		})
	}

	return &ret, nil
}

// TriggerSnapshot writes usage snapshots for all live tenants on demand,
// the same work the daily snapshotter does on schedule.
func (s BasicService) TriggerSnapshot(rc *request.InternalContext) error {
	var tenants []models.Tenant
	err := models.NewTenantQuerySet(rc.DB).
		StatusIn(models.TenantStatusTrial, models.TenantStatusActive).
		All(&tenants)
	if err != nil {
		return errors.Wrap(err, "failed to fetch live tenants")
	}

	now := time.Now()
	var failedCount int
	for _, tenant := range tenants {
		if err := s.accountant.Snapshot(rc.DB, tenant.ID, now); err != nil {
			rc.Log.Errorf("Failed to snapshot usage of tenant %d: %s", tenant.ID, err)
			failedCount++
		}
	}

	if failedCount != 0 {
		return errors.Errorf("failed to snapshot usage of %d/%d tenants", failedCount, len(tenants))
	}

	rc.Log.Infof("Snapshotted usage of %d tenants", len(tenants))
	return nil
}
