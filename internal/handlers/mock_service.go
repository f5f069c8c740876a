package handlers

import (
	"context"
	"net/http"

	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpErr    error
	signInResult service.SignInResult
	signInErr    error
	user         *models.User
	userErr      error

	lastSignUp service.SignUpInput
	lastSignIn service.SignInInput
	lastUserID int64
}

func (m *mockAuth) SignUp(ctx context.Context, in service.SignUpInput) error {
	m.lastSignUp = in
	return m.signUpErr
}

func (m *mockAuth) SignIn(ctx context.Context, in service.SignInInput) (service.SignInResult, error) {
	m.lastSignIn = in
	return m.signInResult, m.signInErr
}

func (m *mockAuth) UserByID(ctx context.Context, id int64) (*models.User, error) {
	m.lastUserID = id
	return m.user, m.userErr
}

type mockSessions struct {
	createToken string
	createErr   error
	resolveID   int64
	resolveErr  error

	lastCreateUserID int64
	lastResolveToken string
}

func (m *mockSessions) Create(ctx context.Context, userID int64) (string, error) {
	m.lastCreateUserID = userID
	return m.createToken, m.createErr
}

func (m *mockSessions) Resolve(ctx context.Context, token string) (int64, error) {
	m.lastResolveToken = token
	return m.resolveID, m.resolveErr
}

type mockLedger struct {
	appendErr error
	entries   []models.LedgerEntry
	listErr   error

	lastAppendUserID int64
	lastAppendInput  service.EntryInput
	lastListUserID   int64
	appendCalls      int
}

func (m *mockLedger) Append(ctx context.Context, userID int64, in service.EntryInput) error {
	m.appendCalls++
	m.lastAppendUserID = userID
	m.lastAppendInput = in
	return m.appendErr
}

func (m *mockLedger) List(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	m.lastListUserID = userID
	return m.entries, m.listErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
