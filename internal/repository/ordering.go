package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Scope narrows an ordered table to the rows that share one display order sequence
type Scope func(*gorm.DB) *gorm.DB

// GlobalScope orders every row of a table as one sequence
func GlobalScope(db *gorm.DB) *gorm.DB {
	return db
}

// ColumnScope orders rows grouped by column = value
func ColumnScope(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// NullableScope orders rows grouped by a nullable foreign key; nil selects the NULL group
func NullableScope(column string, value *uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db.Where(column + " IS NULL")
		}
		return db.Where(column+" = ?", *value)
	}
}

// maxDisplayOrder returns the highest display_order in scope, or -1 when the scope is empty
func maxDisplayOrder(ctx context.Context, db *gorm.DB, model interface{}, scope Scope) (int, error) {
	var maxOrder *int
	err := db.WithContext(ctx).
		Model(model).
		Scopes(scope).
		Select("MAX(display_order)").
		Scan(&maxOrder).Error
	if err != nil {
		return 0, err
	}
	if maxOrder == nil {
		return -1, nil
	}
	return *maxOrder, nil
}

// countInScope returns the number of rows in scope
func countInScope(ctx context.Context, db *gorm.DB, model interface{}, scope Scope) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Scopes(scope).Count(&count).Error
	return count, err
}

// reorder sets display_order to each id's index inside one transaction.
// An id outside the scope aborts and rolls back the whole reorder.
func reorder(ctx context.Context, db *gorm.DB, model interface{}, entity string, scope Scope, orderedIDs []uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			result := tx.Model(model).
				Scopes(scope).
				Where("id = ?", id).
				Update("display_order", i)

			if result.Error != nil {
				return fmt.Errorf("failed to update %s %s: %w", entity, id, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s %s", ErrNotInScope, entity, id)
			}
		}
		return nil
	})
}
