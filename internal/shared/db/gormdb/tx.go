package gormdb

import (
	"database/sql"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// StartTx begins a gorm transaction and returns a finisher for defer:
// it commits when *retErr is nil and rolls back otherwise.
func StartTx(db *gorm.DB) (*gorm.DB, func(*error), error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, nil, errors.Wrap(tx.Error, "failed to start transaction")
	}

	finish := func(retErr *error) {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}

		if *retErr != nil {
			if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
				*retErr = errors.Wrapf(*retErr, "failed to rollback transaction: %s", rollbackErr)
			}
			return
		}

		if commitErr := tx.Commit().Error; commitErr != nil {
			*retErr = errors.Wrap(commitErr, "failed to commit transaction")
		}
	}

	return tx, finish, nil
}

// FinishTx commits tx if *err is nil and rolls it back otherwise.
// Use it in defer with a named error return.
func FinishTx(tx *sql.Tx, err *error) {
	if *err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			*err = errors.Wrapf(*err, "failed to rollback transaction: %s", rollbackErr)
		}
		return
	}

	if commitErr := tx.Commit(); commitErr != nil {
		*err = errors.Wrap(commitErr, "failed to commit transaction")
	}
}
