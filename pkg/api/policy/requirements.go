package policy

import "github.com/sahayog/sahayog-api/pkg/api/models"

const (
	ActionRead  = "read"
	ActionWrite = "write"
)

type PermissionRef struct {
	Resource models.Resource
	Action   string
}

// Requirements describes what an operation demands from the caller:
// a role permission, a plan feature, and headroom in a resource quota.
// Zero values skip the corresponding check.
type Requirements struct {
	Permission *PermissionRef
	Feature    models.Feature
	Resource   models.Resource
}
