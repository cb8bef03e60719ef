package endpointutil

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/api/apierrors"
	"github.com/sahayog/sahayog-api/internal/shared/apperrors"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/request"
)

type contextKey string

const (
	contextKeyRequestContext contextKey = "endpoint/requestContext"
	contextKeyError          contextKey = "endpoint/error"
)

func RequestContext(ctx context.Context) request.Context {
	rc := ctx.Value(contextKeyRequestContext)
	if rc == nil {
		return nil
	}
	return rc.(request.Context)
}

func StoreRequestContext(ctx context.Context, rc request.Context) context.Context {
	return context.WithValue(ctx, contextKeyRequestContext, rc)
}

func StoreError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, contextKeyError, err)
}

func Error(ctx context.Context) error {
	v := ctx.Value(contextKeyError)
	if v == nil {
		return nil
	}

	return v.(error)
}

func makeBaseRequestContext(ctx context.Context, hctx *HandlerRegContext) *request.BaseContext {
	lctx := logutil.Context{}
	log := hctx.Log
	log = logutil.WrapLogWithContext(log, lctx)
	log = apperrors.WrapLogWithTracker(log, lctx, hctx.ErrTracker)

	return &request.BaseContext{
		Ctx:       ctx,
		Log:       log,
		Lctx:      lctx,
		DB:        hctx.DB,
		StartedAt: time.Now(),
	}
}

func MakeAnonymousRequestContext(ctx context.Context, hctx *HandlerRegContext) *request.AnonymousContext {
	return &request.AnonymousContext{
		BaseContext: *makeBaseRequestContext(ctx, hctx),
	}
}

func MakeInternalRequestContext(ctx context.Context, hctx *HandlerRegContext,
	requestAccessToken string) (*request.InternalContext, error) {

	validAccessToken := hctx.Cfg.GetString("INTERNAL_ACCESS_TOKEN")
	if len(validAccessToken) <= 8 {
		return nil, errors.Wrap(apierrors.ErrNotAuthorized, "too short INTERNAL_ACCESS_TOKEN")
	}

	if validAccessToken != requestAccessToken {
		hctx.Log.Warnf("Invalid internal request access token %q, must be %q",
			requestAccessToken, validAccessToken)
		return nil, errors.Wrap(apierrors.ErrNotAuthorized, "invalid internal access token")
	}

	return &request.InternalContext{
		BaseContext: *makeBaseRequestContext(ctx, hctx),
	}, nil
}

func MakeAuthorizedRequestContext(ctx context.Context, hctx *HandlerRegContext,
	r *http.Request) (*request.AuthorizedContext, error) {

	actor, err := hctx.Authorizer.Authorize(r)
	if err != nil {
		return nil, err
	}

	baseCtx := makeBaseRequestContext(ctx, hctx)
	baseCtx.Lctx["user_id"] = actor.User.ID
	baseCtx.Lctx["email"] = actor.User.Email
	if actor.Tenant != nil {
		baseCtx.Lctx["tenant_id"] = actor.Tenant.ID
	}

	return &request.AuthorizedContext{
		BaseContext: *baseCtx,
		Actor:       actor,
	}, nil
}
