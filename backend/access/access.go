// Package access holds the authorization and entitlement predicates.
// They are pure functions of the resolved caller and the rows the
// handler already loaded, so the gates can be tested without a request
// or a database.
package access

import "coursehub/backend/models"

// IsAdmin reports whether the caller may perform administrative actions.
func IsAdmin(u *models.User) bool {
	return u != nil && u.IsAdmin
}

// CanViewLessons reports whether the caller may read lesson content of a
// course: an existing purchase grants access, administrators bypass the
// check unconditionally.
func CanViewLessons(u *models.User, purchase *models.Purchase) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin {
		return true
	}
	return purchase != nil
}

// CanToggleAdmin reports whether the caller may flip the target's admin
// flag. Admins may never change their own.
func CanToggleAdmin(caller, target *models.User) bool {
	if !IsAdmin(caller) || target == nil {
		return false
	}
	return caller.ID != target.ID
}
