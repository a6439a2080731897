package devserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"signupform/models"
)

// ============================================================================
// Dev Stub Server
//
// A local stand-in for the remote signup service so the form client can
// be exercised end to end without real infrastructure. It enforces the
// same field rules the client validates (shared via the models
// package), hashes passwords, and answers in a { success, data } JSON
// envelope with a signed token — the client only classifies the status
// code, but the shape matches what a real service would return.
// ============================================================================

// Service bundles the stub server with its in-memory account store.
type Service struct {
	Store  *AccountStore
	srv    *rweb.Server
	secret []byte
}

// New creates a stub service listening on addr (e.g. ":8087").
func New(addr string) *Service {
	svc := &Service{
		Store:  NewAccountStore(),
		secret: loadSecret(),
	}

	s := rweb.NewServer(rweb.ServerOptions{
		Address: addr,
		Verbose: true,
	})
	s.Use(rweb.RequestInfo)

	s.Get("/", func(ctx rweb.Context) error {
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(svc.renderIndex())
	})
	s.Get("/health", svc.health)
	s.Post("/signup", svc.signup)

	svc.srv = s
	return svc
}

// Run starts the stub server (blocking).
func (svc *Service) Run() error {
	logger.Info("Signup stub server starting")
	return svc.srv.Run()
}

// APIResponse is the standard JSON envelope for all endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess sends a success JSON response with the given status.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// signupInput is the request body the form client posts.
type signupInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// signupData is the payload returned on successful registration.
type signupData struct {
	Account *Account `json:"account"`
	Token   string   `json:"token"`
}

// health answers liveness probes.
func (svc *Service) health(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

// signup creates a new account and returns a token.
// POST /signup
//
// Request body:
//
//	{ "email": "a@b.com", "username": "bob", "password": "Sup3r$ecret" }
//
// Success (201):
//
//	{ "success": true, "data": { "account": {...}, "token": "..." } }
//
// Errors:
//   - 400: Invalid JSON or a field failing the registration rules
//   - 409: Username or email already taken
func (svc *Service) signup(ctx rweb.Context) error {
	var input signupInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}

	// Same rules the client checks — clients are advisory, the
	// service is authoritative
	if !models.EmailValid(input.Email) {
		return writeError(ctx, http.StatusBadRequest, "invalid email address")
	}
	if !models.UsernameValid(input.Username) {
		return writeError(ctx, http.StatusBadRequest, "username is required")
	}
	if !models.EvaluatePassword(input.Password).AllMet() {
		return writeError(ctx, http.StatusBadRequest,
			"password must be at least 8 characters with uppercase, lowercase, number, and special character")
	}

	account, err := svc.Store.Create(input.Email, input.Username, input.Password)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return writeError(ctx, http.StatusConflict, err.Error())
		}
		logger.LogErr(serr.Wrap(err, "failed to create account"), "username", input.Username)
		return writeError(ctx, http.StatusInternalServerError, "failed to create account")
	}

	token, err := generateToken(svc.secret, account)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to generate token"), "account_guid", account.GUID)
		return writeError(ctx, http.StatusInternalServerError, "failed to generate token")
	}

	logger.Info("Account registered", "username", account.Username, "guid", account.GUID)
	return writeSuccess(ctx, http.StatusCreated, signupData{Account: account, Token: token})
}
