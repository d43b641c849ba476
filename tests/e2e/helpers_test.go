//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/SoloAk21/library-manager-backend/internal/adapter/postgres"
	bookrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/book"
	borrowrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/borrow"
	genrerepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/genre"
	memberrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/member"
	staffrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/staff"
	"github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/token"
	authpkg "github.com/SoloAk21/library-manager-backend/internal/auth"
	"github.com/SoloAk21/library-manager-backend/internal/config"
	"github.com/SoloAk21/library-manager-backend/internal/domain"
	authsvc "github.com/SoloAk21/library-manager-backend/internal/service/auth"
	booksvc "github.com/SoloAk21/library-manager-backend/internal/service/book"
	borrowsvc "github.com/SoloAk21/library-manager-backend/internal/service/borrow"
	genresvc "github.com/SoloAk21/library-manager-backend/internal/service/genre"
	membersvc "github.com/SoloAk21/library-manager-backend/internal/service/member"
	staffsvc "github.com/SoloAk21/library-manager-backend/internal/service/staff"
	"github.com/SoloAk21/library-manager-backend/internal/transport/middleware"
	"github.com/SoloAk21/library-manager-backend/internal/transport/rest"
)

// seedPassword matches the fixed hash used by testhelper.SeedStaff.
const seedPassword = "password123"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	books := bookrepo.New(pool)
	genres := genrerepo.New(pool)
	members := memberrepo.New(pool)
	records := borrowrepo.New(pool)
	staff := staffrepo.New(pool)
	tokens := tokenrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4, // bcrypt.MinCost, keeps the suite fast
	}
	libraryCfg := config.LibraryConfig{
		LoanPeriodDays:   14,
		MinPublishedYear: 1800,
	}

	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	hasher := authpkg.NewPasswordHasher(authCfg.PasswordHashCost)

	authService := authsvc.NewService(logger, staff, tokens, jwtMgr, hasher, authCfg)
	bookService := booksvc.NewService(logger, books, genres, records, libraryCfg)
	genreService := genresvc.NewService(logger, genres, books)
	memberService := membersvc.NewService(logger, members, records)
	staffService := staffsvc.NewService(logger, staff)
	borrowService := borrowsvc.NewService(logger, books, members, records, txm, libraryCfg)

	handlers := rest.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger),
		Book:   rest.NewBookHandler(bookService, logger),
		Genre:  rest.NewGenreHandler(genreService, logger),
		Member: rest.NewMemberHandler(memberService, logger),
		Staff:  rest.NewStaffHandler(staffService, logger),
		Borrow: rest.NewBorrowHandler(borrowService, logger),
		Health: rest.NewHealthHandler(pool, "test-version"),
	}

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
	)(rest.NewRouter(handlers, middleware.Auth(authService)))

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a JSON request and returns status + decoded body. A nil body
// sends no payload; an empty token sends no Authorization header.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	// DELETE returns 204 with an empty body.
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints that return a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path string, token string) (int, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// login seeds a staff account with the given role and returns its access token.
func (ts *testServer) login(t *testing.T, role domain.Role) string {
	t.Helper()

	account := testhelper.SeedStaff(t, ts.Pool, role)

	status, body := ts.doJSON(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    account.Email,
		"password": seedPassword,
	}, "")
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)

	token, ok := body["access_token"].(string)
	require.True(t, ok, "expected access_token in login response: %v", body)
	return token
}

// createGenreAndBook seeds catalogue rows through the API with admin rights.
func (ts *testServer) createGenreAndBook(t *testing.T, adminToken string, copies int) (genreID, bookID string) {
	t.Helper()

	status, genre := ts.doJSON(t, http.MethodPost, "/api/genres", map[string]any{
		"name": fmt.Sprintf("Fiction-%d", time.Now().UnixNano()),
	}, adminToken)
	require.Equal(t, http.StatusCreated, status, "create genre: %v", genre)

	status, book := ts.doJSON(t, http.MethodPost, "/api/books", map[string]any{
		"title":            "Dune",
		"author":           "Frank Herbert",
		"published_year":   1965,
		"genre_id":         genre["id"],
		"available_copies": copies,
	}, adminToken)
	require.Equal(t, http.StatusCreated, status, "create book: %v", book)

	return genre["id"].(string), book["id"].(string)
}

// createMember seeds a member through the API.
func (ts *testServer) createMember(t *testing.T, token string) string {
	t.Helper()

	status, m := ts.doJSON(t, http.MethodPost, "/api/members", map[string]any{
		"name":  "Alice Reader",
		"email": fmt.Sprintf("alice-%d@example.com", time.Now().UnixNano()),
		"phone": "(555) 123-4567",
	}, token)
	require.Equal(t, http.StatusCreated, status, "create member: %v", m)
	return m["id"].(string)
}
