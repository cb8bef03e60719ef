// Package dbtest opens isolated in-memory databases for tests.
package dbtest

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // test db driver
	"github.com/joho/godotenv"
	"github.com/sahayog/sahayog-api/internal/api/util"
	"github.com/sahayog/sahayog-api/pkg/api/models"
	"github.com/stretchr/testify/require"
)

var envFileNames = []string{".env", ".env.test"}

// InitEnv loads env files from the project root so tests see the same
// config the app does. Missing files are fine.
func InitEnv() {
	root := util.GetProjectRoot()
	for _, name := range envFileNames {
		fpath := filepath.Join(root, name)
		if _, err := os.Stat(fpath); err != nil {
			continue
		}

		if err := godotenv.Overload(fpath); err != nil {
			log.Fatalf("Can't load %s: %s", fpath, err)
		}
	}
}

// OpenDB returns a fresh database with the full schema migrated.
func OpenDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// The in-memory db lives per connection.
	db.DB().SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.RolePermission{},
		&models.Plan{},
		&models.Subscription{},
		&models.Payment{},
		&models.Invoice{},
		&models.BillingEvent{},
		&models.UsageMetric{},
		&models.Project{},
		&models.Beneficiary{},
	).Error
	require.NoError(t, err)

	return db
}
