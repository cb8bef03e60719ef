package policy

import (
	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/pkg/api/usage"
)

// Gate runs the policy checks an authorized request must pass before
// the service handler executes: role permission, then plan feature,
// then resource quota. The first failed check wins.
type Gate struct {
	log logutil.Log

	permissions *PermissionChecker
	features    *SubscriptionFeatures
	limits      *UsageLimit
}

func NewGate(log logutil.Log, db *gorm.DB, cfg config.Config, accountant *usage.Accountant) *Gate {
	return &Gate{
		log:         log,
		permissions: NewPermissionChecker(log, db),
		features:    NewSubscriptionFeatures(log, db, cfg),
		limits:      NewUsageLimit(log, db, accountant),
	}
}

func (g Gate) Check(rc *request.AuthorizedContext, req Requirements) error {
	if rc.Actor.User.IsPlatformAdmin {
		return nil
	}

	if req.Permission != nil {
		if err := g.permissions.Check(rc.Actor.User.RoleID, req.Permission); err != nil {
			return err
		}
	}

	if req.Feature == "" && req.Resource == "" {
		return nil
	}

	tenantID := rc.Actor.Tenant.ID
	_, plan, err := g.features.CurrentEntitlement(tenantID)
	if err != nil {
		return err
	}

	if req.Feature != "" {
		if err := g.features.CheckFeature(plan, req.Feature); err != nil {
			return err
		}
	}

	if req.Resource != "" {
		if err := g.limits.CheckQuota(tenantID, plan, req.Resource); err != nil {
			return err
		}
	}

	return nil
}
