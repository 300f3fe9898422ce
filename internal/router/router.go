// Package router decides which view a session is allowed to see.
//
// Resolve is a pure function: it reads the requested view and the session
// and returns the view to render. It never records the outcome anywhere.
// Callers that want the request to follow the resolution do so explicitly on
// their event path (see app.Controller.Settle).
package router

import "storefront/internal/model"

// View names a page of the storefront.
type View string

const (
	Home              View = "home"
	Login             View = "login"
	Register          View = "register"
	Products          View = "products"
	Orders            View = "orders"
	Cart              View = "cart"
	AdminDashboard    View = "adminDashboard"
	SupplierDashboard View = "supplierDashboard"
)

// All lists every known view in header order.
var All = []View{Home, Products, Orders, Cart, SupplierDashboard, AdminDashboard, Login, Register}

// Session is the read-only slice of session state the router needs.
type Session interface {
	Authenticated() bool
	Role() model.Role
}

// IsPublic reports whether v is reachable without logging in.
func IsPublic(v View) bool {
	switch v {
	case Home, Login, Register:
		return true
	}
	return false
}

func isCustomerView(v View) bool {
	switch v {
	case Home, Products, Orders, Cart:
		return true
	}
	return false
}

// Resolve maps a requested view to the view that may be rendered.
func Resolve(requested View, s Session) View {
	if IsPublic(requested) {
		return requested
	}
	if s == nil || !s.Authenticated() {
		return Login
	}

	switch s.Role() {
	case model.RoleAdmin:
		return AdminDashboard
	case model.RoleSupplier:
		return SupplierDashboard
	case model.RoleCustomer:
		if isCustomerView(requested) {
			return requested
		}
		return Home
	default:
		return Home
	}
}

// LandingView is where a role goes after login or restore.
func LandingView(role model.Role) View {
	switch role {
	case model.RoleAdmin:
		return AdminDashboard
	case model.RoleSupplier:
		return SupplierDashboard
	default:
		return Home
	}
}

// Parse converts user input to a View.
func Parse(s string) (View, bool) {
	for _, v := range All {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}
