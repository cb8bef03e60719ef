package gormdb

import (
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
)

type logger struct {
	log logutil.Log
}

func (lg logger) Print(values ...interface{}) {
	lg.log.Debugf("sql", "gorm: %v", values)
}
