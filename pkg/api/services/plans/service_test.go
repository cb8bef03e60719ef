package plans

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/pkg/api/request"
	"github.com/sahayog/sahayog-api/test/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	values map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{values: map[string][]byte{}}
}

func (c *memCache) Get(key string, dest interface{}) error {
	data, ok := c.values[key]
	if !ok {
		return nil
	}

	return json.Unmarshal(data, dest)
}

func (c *memCache) Set(key string, expireTimeout time.Duration, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.values[key] = data
	return nil
}

func plansRC(db *gorm.DB) *request.AnonymousContext {
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

func createPlans(t *testing.T, db *gorm.DB) {
	plans := []models.Plan{
		{Name: "Growth", Price: 149900, Interval: models.PlanIntervalMonthly, IsActive: true, FinanceEnabled: true},
		{Name: "Starter", Price: 49900, Interval: models.PlanIntervalMonthly, IsActive: true},
		{Name: "Legacy", Price: 9900, Interval: models.PlanIntervalMonthly, IsActive: false},
	}
	for i := range plans {
		require.NoError(t, plans[i].Create(db))
	}
}

func TestListReturnsActivePlansOrderedByPrice(t *testing.T) {
	db := dbtest.OpenDB(t)
	createPlans(t, db)

	log := logutil.NewStderrLog("test")
	svc := NewBasicService(newMemCache(), config.NewEnvConfig(log))

	ret, err := svc.List(plansRC(db))
	require.NoError(t, err)
	require.Len(t, ret.Plans, 2)
	assert.Equal(t, "Starter", ret.Plans[0].Name)
	assert.Equal(t, "Growth", ret.Plans[1].Name)
	assert.True(t, ret.Plans[1].FinanceEnabled)
}

func TestListServesFromCache(t *testing.T) {
	db := dbtest.OpenDB(t)
	createPlans(t, db)

	log := logutil.NewStderrLog("test")
	cache := newMemCache()
	svc := NewBasicService(cache, config.NewEnvConfig(log))

	first, err := svc.List(plansRC(db))
	require.NoError(t, err)
	require.Len(t, first.Plans, 2)

	// Deactivate everything: the cached response must still be served.
	require.NoError(t, db.Model(&models.Plan{}).Update("is_active", false).Error)

	second, err := svc.List(plansRC(db))
	require.NoError(t, err)
	assert.Equal(t, first.Plans, second.Plans)
}
