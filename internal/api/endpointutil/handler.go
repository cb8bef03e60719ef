package endpointutil

import (
	"github.com/jinzhu/gorm"
	"github.com/sahayog/sahayog-api/internal/shared/apperrors"
	"github.com/sahayog/sahayog-api/internal/shared/config"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/auth"
)

type HandlerRegContext struct {
	Authorizer *auth.Authorizer
	Log        logutil.Log
	ErrTracker apperrors.Tracker
	Cfg        config.Config
	DB         *gorm.DB
}
