package models

// Admin represents an administrative principal allowed to manage the
// catalog. Admin records are provisioned out of band and are read-only
// from the application's perspective.
type Admin struct {
	AdminID      int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Admin model.
func (a Admin) TableName() string {
	return "admins"
}
