package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/romhuset/rehearsal-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/romhuset/rehearsal-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication‑related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts a refresh_token body or a bearer token; it does not
	// require the JWT middleware so that expired sessions can still log out.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("MEMBER", "ADMIN"))
	auth.GET("/me", a.Me)

	// Alias outside the protected group; either path works with a valid
	// refresh token in the body.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated read endpoints: the room
// catalogue, the day schedule and the utilization/revenue/energy stats.
// These are the routes the response cache and rate limiter cover.
func RegisterPublic(e *echo.Echo, rooms *handler.RoomHandler, b *handler.BookingHandler, s *handler.StatsHandler) {
	e.GET("/v1/rooms", rooms.List)
	e.GET("/v1/schedule/:date", b.Schedule)
	e.GET("/v1/stats", s.Range)
	e.GET("/v1/stats/day/:date", s.Day)
	e.GET("/v1/stats/week/:date", s.Week)
	e.GET("/v1/stats/month/:date", s.Month)
}

// RegisterMember registers MEMBER-scoped endpoints under /v1.  All routes
// require a valid JWT; both roles may book.
func RegisterMember(e *echo.Echo, b *handler.BookingHandler, v *handler.VoucherHandler, ac *handler.AccessHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("MEMBER", "ADMIN"),
	)

	g.POST("/bookings", b.Create)
	g.DELETE("/bookings/:date/:room/:hour", b.Delete)
	g.GET("/my-bookings", b.Mine)

	// The booking form needs voucher balances to offer a selection.
	g.GET("/vouchers", v.List)

	// Door credential for a booked slot; creator only.
	g.GET("/bookings/:date/:room/:hour/access", ac.Get)
}

// RegisterAdmin registers ADMIN-scoped endpoints under /v1: room and
// voucher management.
func RegisterAdmin(e *echo.Echo, rooms *handler.RoomHandler, v *handler.VoucherHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ADMIN"),
	)

	// ---- Rooms ----
	g.POST("/rooms", rooms.Create)
	g.DELETE("/rooms/:id", rooms.Delete)

	// ---- Vouchers ----
	g.POST("/vouchers", v.Create)
	g.DELETE("/vouchers/:id", v.Delete)
	g.PATCH("/vouchers/:id/adjust", v.Adjust)
}
