package transportutil

import (
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/api/endpointutil"
	"github.com/sahayog/sahayog-api/internal/shared/apperrors"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/auth"
)

type HandlerRegContext struct {
	Router     *mux.Router
	Log        logutil.Log
	ErrTracker apperrors.Tracker
	Cfg        config.Config
	DB         *gorm.DB
	Authorizer *auth.Authorizer
}

func (hctx HandlerRegContext) EndpointRegContext() endpointutil.HandlerRegContext {
	return endpointutil.HandlerRegContext{
		Authorizer: hctx.Authorizer,
		Log:        hctx.Log,
		ErrTracker: hctx.ErrTracker,
		Cfg:        hctx.Cfg,
		DB:         hctx.DB,
	}
}
