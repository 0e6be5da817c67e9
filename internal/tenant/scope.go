package tenant

import "gorm.io/gorm"

// ForCaller returns a GORM scope restricting rows to the caller's tenant.
// Global admins get no predicate.
func ForCaller(caller Caller) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if caller.IsAdmin() {
			return db
		}
		return db.Where("tenant_id = ?", caller.TenantID)
	}
}
