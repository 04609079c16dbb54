package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// CascadeCoordinator removes an aggregate together with everything booked
// under it. Children go first and the whole walk runs in one transaction,
// so a failure partway leaves every record in place.
type CascadeCoordinator struct {
	db *gorm.DB
}

// NewCascadeCoordinator creates a cascade coordinator
func NewCascadeCoordinator(db *gorm.DB) *CascadeCoordinator {
	return &CascadeCoordinator{db: db}
}

// DeleteProject removes a project and its expenses, payments and manpower.
// Deleting an absent project reports ErrNotFound.
func (c *CascadeCoordinator) DeleteProject(ctx context.Context, projectID uuid.UUID) (ledger.CascadeResult, error) {
	var result ledger.CascadeResult
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := c.deleteProjectChildren(tx, "project_id = ?", projectID)
		if err != nil {
			return err
		}
		result = removed

		res := tx.Delete(&ledger.Project{}, "id = ?", projectID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		result.Projects = res.RowsAffected
		return nil
	})
	if err != nil {
		return ledger.CascadeResult{}, err
	}
	return result, nil
}

// DeleteCompany removes a company, all its projects, and every record booked
// against those projects. Children carry the owning company reference, so
// the walk deletes by company rather than per project.
func (c *CascadeCoordinator) DeleteCompany(ctx context.Context, companyID uuid.UUID) (ledger.CascadeResult, error) {
	var result ledger.CascadeResult
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := c.deleteProjectChildren(tx, "company_id = ?", companyID)
		if err != nil {
			return err
		}
		result = removed

		res := tx.Delete(&ledger.Project{}, "company_id = ?", companyID)
		if res.Error != nil {
			return res.Error
		}
		result.Projects = res.RowsAffected

		res = tx.Delete(&ledger.Company{}, "id = ?", companyID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return ledger.CascadeResult{}, err
	}
	return result, nil
}

func (c *CascadeCoordinator) deleteProjectChildren(tx *gorm.DB, cond string, arg uuid.UUID) (ledger.CascadeResult, error) {
	var result ledger.CascadeResult

	res := tx.Delete(&ledger.Expense{}, cond, arg)
	if res.Error != nil {
		return result, res.Error
	}
	result.Expenses = res.RowsAffected

	res = tx.Delete(&ledger.Payment{}, cond, arg)
	if res.Error != nil {
		return result, res.Error
	}
	result.Payments = res.RowsAffected

	res = tx.Delete(&ledger.Manpower{}, cond, arg)
	if res.Error != nil {
		return result, res.Error
	}
	result.Manpower = res.RowsAffected

	return result, nil
}
