package policy

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sahayog/sahayog-api/internal/shared/logutil"
	"github.com/sahayog/sahayog-api/pkg/api/models"
)

type PermissionChecker struct {
	log logutil.Log
	db  *gorm.DB
}

func NewPermissionChecker(log logutil.Log, db *gorm.DB) *PermissionChecker {
	return &PermissionChecker{
		log: log,
		db:  db,
	}
}

func (c PermissionChecker) Check(roleID uint, ref *PermissionRef) error {
	var perm models.Permission
	err := models.NewPermissionQuerySet(c.db).
		ResourceEq(ref.Resource).
		ActionEq(ref.Action).
		One(&perm)
	if err == gorm.ErrRecordNotFound {
		c.log.Warnf("Permission %s:%s isn't defined, denying", ref.Resource, ref.Action)
		return ErrPermissionDenied
	} else if err != nil {
		return errors.Wrapf(err, "failed to fetch permission %s:%s", ref.Resource, ref.Action)
	}

	count, err := models.NewRolePermissionQuerySet(c.db).
		RoleIDEq(roleID).
		PermissionIDEq(perm.ID).
		Count()
	if err != nil {
		return errors.Wrapf(err, "failed to check role %d for permission %d", roleID, perm.ID)
	}

	if count == 0 {
		return ErrPermissionDenied
	}

	return nil
}
