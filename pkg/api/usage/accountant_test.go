package usage

import (
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/sahayog/sahayog-api/test/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUsageFixture(t *testing.T, db *gorm.DB) *models.Tenant {
	tenant := models.Tenant{
		Name:      "Asha Foundation",
		Subdomain: "asha",
		IsActive:  true,
		Status:    models.TenantStatusActive,
	}
	require.NoError(t, tenant.Create(db))

	other := models.Tenant{
		Name:      "Other NGO",
		Subdomain: "other",
		IsActive:  true,
		Status:    models.TenantStatusActive,
	}
	require.NoError(t, other.Create(db))

	for i := 0; i < 3; i++ {
		p := models.Project{TenantID: tenant.ID, Name: "Project", Status: "ACTIVE"}
		require.NoError(t, p.Create(db))
	}
	foreign := models.Project{TenantID: other.ID, Name: "Foreign", Status: "ACTIVE"}
	require.NoError(t, foreign.Create(db))

	active := models.User{Email: "a@asha.example", Name: "A", TenantID: &tenant.ID, RoleID: 1, IsActive: true}
	require.NoError(t, active.Create(db))
	inactive := models.User{Email: "b@asha.example", Name: "B", TenantID: &tenant.ID, RoleID: 1, IsActive: false}
	require.NoError(t, inactive.Create(db))

	b := models.Beneficiary{TenantID: tenant.ID, Name: "Beneficiary"}
	require.NoError(t, b.Create(db))

	return &tenant
}

func TestAccountantCount(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := setupUsageFixture(t, db)
	a := NewAccountant(logutil.NewStderrLog("test"))

	testCases := []struct {
		resource models.Resource
		want     int64
	}{
		{models.ResourceProjects, 3},
		{models.ResourceUsers, 1}, // inactive users don't count
		{models.ResourceBeneficiaries, 1},
		{models.ResourceStorage, 0},
	}
	for _, tc := range testCases {
		got, err := a.Count(db, tenant.ID, tc.resource)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "resource %s", tc.resource)
	}
}

func TestAccountantCountUnknownResource(t *testing.T) {
	db := dbtest.OpenDB(t)
	a := NewAccountant(logutil.NewStderrLog("test"))

	_, err := a.Count(db, 1, models.Resource("donations"))
	assert.Error(t, err)
}

func TestAccountantSnapshot(t *testing.T) {
	db := dbtest.OpenDB(t)
	tenant := setupUsageFixture(t, db)
	a := NewAccountant(logutil.NewStderrLog("test"))

	now := time.Now()
	require.NoError(t, a.Snapshot(db, tenant.ID, now))

	var metrics []models.UsageMetric
	require.NoError(t, models.NewUsageMetricQuerySet(db).TenantIDEq(tenant.ID).All(&metrics))
	require.Len(t, metrics, len(models.CountableResources))

	byMetric := map[models.Resource]int64{}
	for _, m := range metrics {
		byMetric[m.Metric] = m.Value
		assert.Equal(t, now.Unix(), m.RecordedAt.Unix())
	}
	assert.Equal(t, int64(3), byMetric[models.ResourceProjects])
	assert.Equal(t, int64(1), byMetric[models.ResourceUsers])
	assert.Equal(t, int64(1), byMetric[models.ResourceBeneficiaries])
	assert.Equal(t, int64(0), byMetric[models.ResourceStorage])
}
