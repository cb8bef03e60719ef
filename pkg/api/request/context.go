package request

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/auth"
)

type Context interface {
	RequestStartedAt() time.Time
	Logger() logutil.Log
}

type BaseContext struct {
	Ctx  context.Context
	Log  logutil.Log
	Lctx logutil.Context
	DB   *gorm.DB

	StartedAt time.Time
}

func (ctx BaseContext) RequestStartedAt() time.Time {
	return ctx.StartedAt
}

func (ctx BaseContext) Logger() logutil.Log {
	return ctx.Log
}

type AnonymousContext struct {
	BaseContext
}

type InternalContext struct {
	BaseContext
}

type AuthorizedContext struct {
	BaseContext

	Actor *auth.AuthenticatedActor
}

func (ac AuthorizedContext) ToAnonumousContext() *AnonymousContext {
	return &AnonymousContext{
		BaseContext: ac.BaseContext,
	}
}
