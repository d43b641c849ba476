package rest

import (
	"net/http"

	"github.com/SoloAk21/library-manager-backend/internal/transport/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth   *AuthHandler
	Book   *BookHandler
	Genre  *GenreHandler
	Member *MemberHandler
	Staff  *StaffHandler
	Borrow *BorrowHandler
	Health *HealthHandler
}

// NewRouter builds the full route table. Health probes, login, and token
// refresh are reachable anonymously; everything else sits behind requireAuth.
func NewRouter(h Handlers, requireAuth middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health probes.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Anonymous auth endpoints.
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)

	// Everything below requires a valid access token.
	protected := http.NewServeMux()

	protected.HandleFunc("POST /api/auth/signup", h.Auth.Signup)
	protected.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	protected.HandleFunc("GET /api/auth/profile", h.Auth.Profile)

	protected.HandleFunc("GET /api/books", h.Book.List)
	protected.HandleFunc("POST /api/books", h.Book.Create)
	protected.HandleFunc("GET /api/books/{id}", h.Book.Get)
	protected.HandleFunc("PATCH /api/books/{id}", h.Book.Update)
	protected.HandleFunc("DELETE /api/books/{id}", h.Book.Delete)

	protected.HandleFunc("GET /api/genres", h.Genre.List)
	protected.HandleFunc("POST /api/genres", h.Genre.Create)
	protected.HandleFunc("GET /api/genres/{id}", h.Genre.Get)
	protected.HandleFunc("PATCH /api/genres/{id}", h.Genre.Update)
	protected.HandleFunc("DELETE /api/genres/{id}", h.Genre.Delete)

	protected.HandleFunc("GET /api/members", h.Member.List)
	protected.HandleFunc("POST /api/members", h.Member.Create)
	protected.HandleFunc("GET /api/members/{id}", h.Member.Get)
	protected.HandleFunc("PATCH /api/members/{id}", h.Member.Update)
	protected.HandleFunc("DELETE /api/members/{id}", h.Member.Delete)
	protected.HandleFunc("GET /api/members/{id}/borrowing-history", h.Member.BorrowingHistory)

	protected.HandleFunc("GET /api/staff", h.Staff.List)
	protected.HandleFunc("GET /api/staff/{id}", h.Staff.Get)
	protected.HandleFunc("PATCH /api/staff/{id}", h.Staff.Update)
	protected.HandleFunc("DELETE /api/staff/{id}", h.Staff.Delete)

	// Literal report segments take precedence over the {id} wildcard.
	protected.HandleFunc("GET /api/borrow-records/reports/overdue", h.Borrow.Overdue)
	protected.HandleFunc("GET /api/borrow-records/reports/popular-genres", h.Borrow.PopularGenres)
	protected.HandleFunc("GET /api/borrow-records/reports/summary", h.Borrow.Summary)
	protected.HandleFunc("GET /api/borrow-records", h.Borrow.List)
	protected.HandleFunc("POST /api/borrow-records/borrow", h.Borrow.Borrow)
	protected.HandleFunc("POST /api/borrow-records/return", h.Borrow.Return)
	protected.HandleFunc("GET /api/borrow-records/{id}", h.Borrow.Get)
	protected.HandleFunc("DELETE /api/borrow-records/{id}", h.Borrow.Delete)

	mux.Handle("/api/", requireAuth(protected))

	return mux
}
