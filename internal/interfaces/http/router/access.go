package router

import (
	"net/http"

	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
)

// accessTable is the only place route requirements are declared. Anything
// not listed here is public.
var accessTable = []middleware.RouteAccess{
	{Method: http.MethodPost, Path: "/products", Level: middleware.AccessAuthenticated},
	{Method: http.MethodDelete, Path: "/products/:id", Level: middleware.AccessAuthenticated},
	{Method: http.MethodPost, Path: "/orders", Level: middleware.AccessAuthenticated},
	{Method: http.MethodPost, Path: "/create-payment-intent", Level: middleware.AccessAuthenticated},
	{Method: http.MethodPost, Path: "/advertisements", Level: middleware.AccessAuthenticated},
	{Method: http.MethodPost, Path: "/report-items", Level: middleware.AccessAuthenticated},

	{Method: http.MethodDelete, Path: "/users/:id", Level: middleware.AccessAdmin},
	{Method: http.MethodPut, Path: "/users/seller/:id", Level: middleware.AccessAdmin},
	{Method: http.MethodPost, Path: "/categories", Level: middleware.AccessAdmin},
	{Method: http.MethodDelete, Path: "/orders/:id", Level: middleware.AccessAdmin},
	{Method: http.MethodGet, Path: "/payments/:orderId", Level: middleware.AccessAdmin},
	{Method: http.MethodDelete, Path: "/reported-products/:id", Level: middleware.AccessAdmin},
}

// AccessRoutes returns a copy of the route requirements
func AccessRoutes() []middleware.RouteAccess {
	routes := make([]middleware.RouteAccess, len(accessTable))
	copy(routes, accessTable)
	return routes
}

// NewAccessPolicy builds the marketplace access policy
func NewAccessPolicy() *middleware.AccessPolicy {
	return middleware.NewAccessPolicy(accessTable...)
}
