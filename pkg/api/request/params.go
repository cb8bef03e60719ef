package request

import "github.com/sahayog/sahayog-api/internal/shared/logutil"

type TenantID struct {
	TenantID uint `request:"tenant_id,urlPart,"`
}

func (t TenantID) FillLogContext(lctx logutil.Context) {
	lctx["tenant_id"] = t.TenantID
}

type PlanID struct {
	PlanID uint `request:"plan_id,urlPart,"`
}

func (p PlanID) FillLogContext(lctx logutil.Context) {
	lctx["plan_id"] = p.PlanID
}

type SubID struct {
	SubID uint `request:"sub_id,urlPart,"`
}

func (s SubID) FillLogContext(lctx logutil.Context) {
	lctx["sub_id"] = s.SubID
}
