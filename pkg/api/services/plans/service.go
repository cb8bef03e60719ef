package plans

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/shared/cache"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/pkg/api/returntypes"
)

const plansCacheKey = "plans/active"

type Service interface {
	//url:/v1/plans
	List(rc *request.AnonymousContext) (*returntypes.PlanListResponse, error)
}

func NewBasicService(cache cache.Cache, cfg config.Config) *BasicService {
	return &BasicService{
		cache: cache,
		cfg:   cfg,
	}
}

type BasicService struct {
	cache cache.Cache
	cfg   config.Config
}

// List returns active plans, reference data cached aggressively: plans
// change on deploys, not at runtime.
func (s BasicService) List(rc *request.AnonymousContext) (*returntypes.PlanListResponse, error) {
	var cached returntypes.PlanListResponse
	if err := s.cache.Get(plansCacheKey, &cached); err != nil {
		rc.Log.Warnf("Failed to fetch plans from cache: %s", err)
	} else if len(cached.Plans) != 0 {
		return &cached, nil
	}

	var planModels []models.Plan
	err := models.NewPlanQuerySet(rc.DB).
		IsActiveEq(true).
		OrderAscByPrice().
		All(&planModels)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch plans from db")
	}

	ret := returntypes.PlanListResponse{
		Plans: []returntypes.PlanInfo{},
	}
	for _, plan := range planModels {
		ret.Plans = append(ret.Plans, returntypes.PlanInfo{
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
		})
	}

	cacheTimeout := s.cfg.GetDuration("PLANS_CACHE_TIMEOUT", time.Hour)
	if err := s.cache.Set(plansCacheKey, cacheTimeout, ret); err != nil {
		rc.Log.Warnf("Failed to save plans to cache: %s", err)
	}

	return &ret, nil
}
