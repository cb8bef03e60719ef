package usage

import (
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	usageacc "github.com/sahayog/sahayog-api/pkg/api/usage"
	"github.com/sahayog/sahayog-api/test/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCronTenant(t *testing.T, db *gorm.DB, subdomain string, status models.TenantStatus) *models.Tenant {
	tenant := models.Tenant{
		Name:      subdomain,
		Subdomain: subdomain,
		IsActive:  true,
		Status:    status,
	}
	require.NoError(t, tenant.Create(db))
	return &tenant
}

func TestSnapshotterRunIteration(t *testing.T) {
	db := dbtest.OpenDB(t)
	log := logutil.NewStderrLog("test")

	active := createCronTenant(t, db, "active", models.TenantStatusActive)
	trial := createCronTenant(t, db, "trial", models.TenantStatusTrial)
	cancelled := createCronTenant(t, db, "cancelled", models.TenantStatusCancelled)

	s := Snapshotter{
		Cfg:        config.NewEnvConfig(log),
		DB:         db,
		Log:        log,
		Accountant: usageacc.NewAccountant(log),
	}

	snapshotted, err := s.RunIteration()
	require.NoError(t, err)
	assert.Equal(t, 2, snapshotted)

	for _, tenant := range []*models.Tenant{active, trial} {
		n, err := models.NewUsageMetricQuerySet(db).TenantIDEq(tenant.ID).Count()
		require.NoError(t, err)
		assert.Equal(t, len(models.CountableResources), n)
	}

	n, err := models.NewUsageMetricQuerySet(db).TenantIDEq(cancelled.ID).Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
