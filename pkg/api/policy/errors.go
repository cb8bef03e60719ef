package policy

import "github.com/sahayog/sahayog-api/internal/api/apierrors"

var ErrPermissionDenied = apierrors.NewNotAcceptableError("PERMISSION_DENIED")
var ErrNoActiveSubscription = apierrors.NewNotAcceptableError("NO_ACTIVE_SUBSCRIPTION")
var ErrFeatureNotInPlan = apierrors.NewNotAcceptableError("FEATURE_NOT_IN_PLAN")
var ErrQuotaExceeded = apierrors.NewNotAcceptableError("QUOTA_EXCEEDED")
