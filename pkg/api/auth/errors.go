package auth

import "github.com/sahayog/sahayog-api/internal/api/apierrors"

var ErrActorInactive = apierrors.NewNotAcceptableError("ACTOR_INACTIVE")
var ErrNoTenant = apierrors.NewNotAcceptableError("NO_TENANT")
var ErrTenantNotFound = apierrors.NewNotAcceptableError("TENANT_NOT_FOUND")
var ErrTenantInactive = apierrors.NewNotAcceptableError("TENANT_INACTIVE")
var ErrTenantSuspended = apierrors.NewNotAcceptableError("TENANT_SUSPENDED")
var ErrTenantExpired = apierrors.NewNotAcceptableError("TENANT_EXPIRED")
