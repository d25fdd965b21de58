package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company's rows. Every list/detail
// query in the cadastro slices goes through it.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}
