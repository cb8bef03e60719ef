package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/apierrors"
	"github.com/sahayog/sahayog-api/internal/api/credentials"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
)

type Authorizer struct {
	db       *gorm.DB
	verifier credentials.Verifier
	log      logutil.Log
}

func NewAuthorizer(db *gorm.DB, verifier credentials.Verifier, log logutil.Log) *Authorizer {
	return &Authorizer{
		db:       db,
		verifier: verifier,
		log:      log,
	}
}

type AuthenticatedActor struct {
	Claims *credentials.Claims

	User *models.User

	// Tenant is nil for platform admins not attached to any tenant.
	Tenant *models.Tenant
}

func (a Authorizer) Authorize(r *http.Request) (*AuthenticatedActor, error) {
	claims, err := a.verifyRequestCredentials(r)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := models.NewUserQuerySet(a.db).IDEq(claims.UserID).One(&user); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.Wrapf(apierrors.ErrNotAuthorized, "no user with id %d", claims.UserID)
		}

		return nil, errors.Wrapf(err, "failed to fetch user with id %d", claims.UserID)
	}

	if !user.IsActive {
		return nil, ErrActorInactive
	}

	actor := AuthenticatedActor{
		Claims: claims,
		User:   &user,
	}

	if user.IsPlatformAdmin {
		// Platform admins operate across tenants and skip tenant scoping.
		if user.TenantID != nil {
			actor.Tenant = a.fetchTenantIgnoringScope(*user.TenantID)
		}
		return &actor, nil
	}

	tenant, err := a.checkTenantScope(&user)
	if err != nil {
		return nil, err
	}

	actor.Tenant = tenant
	return &actor, nil
}

func (a Authorizer) verifyRequestCredentials(r *http.Request) (*credentials.Claims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, apierrors.ErrNotAuthorized
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return nil, errors.Wrap(apierrors.ErrNotAuthorized, "authorization header is not a bearer token")
	}

	claims, err := a.verifier.Verify(token)
	if err != nil {
		a.log.Infof("Rejected credentials: %s", err)
		return nil, errors.Wrap(apierrors.ErrNotAuthorized, "invalid token")
	}

	return claims, nil
}

func (a Authorizer) checkTenantScope(user *models.User) (*models.Tenant, error) {
	if user.TenantID == nil {
		return nil, ErrNoTenant
	}

	var tenant models.Tenant
	if err := models.NewTenantQuerySet(a.db).IDEq(*user.TenantID).One(&tenant); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTenantNotFound
		}

		return nil, errors.Wrapf(err, "failed to fetch tenant with id %d", *user.TenantID)
	}

	if !tenant.IsActive || tenant.Status == models.TenantStatusCancelled {
		return nil, ErrTenantInactive
	}

	switch tenant.Status {
	case models.TenantStatusSuspended:
		return nil, ErrTenantSuspended
	case models.TenantStatusExpired:
		return nil, ErrTenantExpired
	case models.TenantStatusTrial:
		if tenant.IsTrialExpired(time.Now()) {
			return nil, ErrTenantExpired
		}
	}

	return &tenant, nil
}

func (a Authorizer) fetchTenantIgnoringScope(tenantID uint) *models.Tenant {
	var tenant models.Tenant
	if err := models.NewTenantQuerySet(a.db).IDEq(tenantID).One(&tenant); err != nil {
		a.log.Warnf("Failed to fetch tenant %d for platform admin: %s", tenantID, err)
		return nil
	}

	return &tenant
}
