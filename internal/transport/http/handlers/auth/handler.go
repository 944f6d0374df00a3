package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pquerna/otp/totp"

	"hrms/internal/domain/auth"
	"hrms/internal/platform/config"
	"hrms/internal/platform/crypto"
	"hrms/internal/platform/email"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store  *auth.Store
	Crypto *crypto.Service
	Mailer email.Mailer
	Cfg    config.Config
}

func NewHandler(store *auth.Store, cryptoSvc *crypto.Service, mailer email.Mailer, cfg config.Config) *Handler {
	return &Handler{Store: store, Crypto: cryptoSvc, Mailer: mailer, Cfg: cfg}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
		r.Post("/password/request-reset", h.requestPasswordReset)
		r.Post("/password/reset", h.resetPassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/logout", h.logout)
			r.Get("/me", h.me)
			r.Post("/mfa/setup", h.mfaSetup)
			r.Post("/mfa/enable", h.mfaEnable)
			r.Post("/mfa/disable", h.mfaDisable)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.With(middleware.Authorize(auth.EntityUsers, auth.ActionView)).Get("/", h.listUsers)
		r.With(middleware.Authorize(auth.EntityUsers, auth.ActionView)).Get("/{id}", h.getUser)
		r.With(middleware.Authorize(auth.EntityUsers, auth.ActionCreate)).Post("/", h.createUser)
		r.With(middleware.Authorize(auth.EntityUsers, auth.ActionEdit)).Put("/{id}", h.updateUser)
		r.With(middleware.Authorize(auth.EntityUsers, auth.ActionDelete)).Delete("/{id}", h.deleteUser)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	MFACode  string `json:"mfaCode,omitempty"`
}

type tokenPair struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         *auth.User `json:"user"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("username", req.Username, "username is required")
	v.Required("password", req.Password, "password is required")
	if v.Reject(w, requestID) {
		return
	}

	row, err := h.Store.FindByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", requestID)
		return
	}
	if err := auth.CheckPassword(row.PasswordHash, req.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", requestID)
		return
	}

	if row.User.MFAEnabled {
		if req.MFACode == "" {
			api.Fail(w, http.StatusUnauthorized, "mfa_required", "multi-factor code required", requestID)
			return
		}
		secret, err := h.Crypto.DecryptString(row.MFASecretEnc)
		if err != nil || !totp.Validate(req.MFACode, secret) {
			api.Fail(w, http.StatusUnauthorized, "invalid_mfa_code", "multi-factor code rejected", requestID)
			return
		}
	}

	pair, err := h.issueTokens(r, row.User)
	if err != nil {
		slog.Error("issue tokens failed", "err", err, "userId", row.User.ID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "login failed", requestID)
		return
	}
	if err := h.Store.UpdateLastLogin(r.Context(), row.User.ID); err != nil {
		slog.Warn("update last login failed", "err", err, "userId", row.User.ID)
	}
	api.Success(w, pair, requestID)
}

func (h *Handler) issueTokens(r *http.Request, user auth.User) (*tokenPair, error) {
	claims := auth.Claims{UserID: user.ID, Role: user.Role}
	if user.EmployeeID != nil {
		claims.EmployeeID = *user.EmployeeID
	}
	access, err := auth.GenerateToken(h.Cfg.JWTSecret, claims, h.Cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh := auth.NewRefreshToken()
	expires := time.Now().Add(h.Cfg.RefreshTokenTTL)
	if err := h.Store.CreateRefreshToken(r.Context(), user.ID, auth.HashToken(refresh), expires); err != nil {
		return nil, err
	}
	return &tokenPair{AccessToken: access, RefreshToken: refresh, User: &user}, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "refreshToken is required", requestID)
		return
	}

	oldHash := auth.HashToken(req.RefreshToken)
	userID, err := h.Store.RefreshTokenUserID(r.Context(), oldHash)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_refresh_token", "refresh token is invalid or expired", requestID)
		return
	}
	user, err := h.Store.GetUser(r.Context(), userID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_refresh_token", "refresh token is invalid or expired", requestID)
		return
	}

	newRefresh := auth.NewRefreshToken()
	expires := time.Now().Add(h.Cfg.RefreshTokenTTL)
	if err := h.Store.RotateRefreshToken(r.Context(), userID, oldHash, auth.HashToken(newRefresh), expires); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_refresh_token", "refresh token is invalid or expired", requestID)
		return
	}

	claims := auth.Claims{UserID: user.ID, Role: user.Role}
	if user.EmployeeID != nil {
		claims.EmployeeID = *user.EmployeeID
	}
	access, err := auth.GenerateToken(h.Cfg.JWTSecret, claims, h.Cfg.AccessTokenTTL)
	if err != nil {
		slog.Error("generate access token failed", "err", err, "userId", user.ID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "refresh failed", requestID)
		return
	}
	api.Success(w, tokenPair{AccessToken: access, RefreshToken: newRefresh, User: user}, requestID)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "refreshToken is required", requestID)
		return
	}
	if err := h.Store.RevokeRefreshToken(r.Context(), user.UserID, auth.HashToken(req.RefreshToken)); err != nil {
		slog.Warn("revoke refresh token failed", "err", err, "userId", user.UserID)
	}
	api.Success(w, map[string]string{"status": "logged out"}, requestID)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	userCtx, _ := middleware.GetUser(r.Context())

	user, err := h.Store.GetUser(r.Context(), userCtx.UserID)
	if err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	api.Success(w, user, requestID)
}

type requestResetRequest struct {
	Username string `json:"username"`
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req requestResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "username is required", requestID)
		return
	}

	// Always answer 200 so usernames cannot be probed.
	accepted := map[string]string{"status": "reset email sent if the account exists"}

	row, err := h.Store.FindByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		api.Success(w, accepted, requestID)
		return
	}

	token := auth.NewRefreshToken()
	if err := h.Store.CreatePasswordReset(r.Context(), row.User.ID, auth.HashToken(token), time.Now().Add(time.Hour)); err != nil {
		slog.Error("create password reset failed", "err", err, "userId", row.User.ID)
		api.Success(w, accepted, requestID)
		return
	}

	address, err := h.Store.EmployeeEmail(r.Context(), row.User.ID)
	if err != nil || address == "" {
		slog.Warn("no reset address for user", "userId", row.User.ID)
		api.Success(w, accepted, requestID)
		return
	}
	body := "A password reset was requested for your account.\r\n\r\nReset token: " + token +
		"\r\n\r\nThe token expires in one hour. Ignore this mail if you did not ask for it."
	if err := h.Mailer.Send(r.Context(), h.Cfg.EmailFrom, address, "Password reset", body); err != nil {
		slog.Warn("send reset mail failed", "err", err, "userId", row.User.ID)
	}
	api.Success(w, accepted, requestID)
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("token", req.Token, "token is required")
	if len(req.NewPassword) < 8 {
		v.Add("newPassword", "must be at least 8 characters")
	}
	if v.Reject(w, requestID) {
		return
	}

	tokenHash := auth.HashToken(req.Token)
	userID, err := h.Store.PasswordResetUserID(r.Context(), tokenHash)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_reset_token", "reset token is invalid or expired", requestID)
		return
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("hash password failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "password reset failed", requestID)
		return
	}
	if err := h.Store.UpdatePassword(r.Context(), userID, hash); err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	if err := h.Store.MarkPasswordResetUsed(r.Context(), tokenHash); err != nil {
		slog.Warn("mark reset used failed", "err", err, "userId", userID)
	}
	api.Success(w, map[string]string{"status": "password updated"}, requestID)
}

func (h *Handler) mfaSetup(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	userCtx, _ := middleware.GetUser(r.Context())

	user, err := h.Store.GetUser(r.Context(), userCtx.UserID)
	if err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "hrms",
		AccountName: user.Username,
	})
	if err != nil {
		slog.Error("generate totp key failed", "err", err, "userId", user.ID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "mfa setup failed", requestID)
		return
	}
	secretEnc, err := h.Crypto.EncryptString(key.Secret())
	if err != nil {
		slog.Error("encrypt mfa secret failed", "err", err, "userId", user.ID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "mfa setup failed", requestID)
		return
	}
	if err := h.Store.UpdateMFASecret(r.Context(), user.ID, secretEnc); err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	api.Success(w, map[string]string{"secret": key.Secret(), "otpauthUrl": key.URL()}, requestID)
}

type mfaCodeRequest struct {
	Code string `json:"code"`
}

func (h *Handler) mfaEnable(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	userCtx, _ := middleware.GetUser(r.Context())

	var req mfaCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "code is required", requestID)
		return
	}

	secretEnc, err := h.Store.GetMFASecret(r.Context(), userCtx.UserID)
	if err != nil || len(secretEnc) == 0 {
		api.Fail(w, http.StatusBadRequest, "mfa_not_set_up", "run mfa setup first", requestID)
		return
	}
	secret, err := h.Crypto.DecryptString(secretEnc)
	if err != nil || !totp.Validate(req.Code, secret) {
		api.Fail(w, http.StatusUnauthorized, "invalid_mfa_code", "multi-factor code rejected", requestID)
		return
	}
	if err := h.Store.SetMFAEnabled(r.Context(), userCtx.UserID, true); err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	api.Success(w, map[string]bool{"mfaEnabled": true}, requestID)
}

func (h *Handler) mfaDisable(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	userCtx, _ := middleware.GetUser(r.Context())

	if err := h.Store.SetMFAEnabled(r.Context(), userCtx.UserID, false); err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	if err := h.Store.UpdateMFASecret(r.Context(), userCtx.UserID, nil); err != nil {
		slog.Warn("clear mfa secret failed", "err", err, "userId", userCtx.UserID)
	}
	api.Success(w, map[string]bool{"mfaEnabled": false}, requestID)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	users, err := h.Store.ListUsers(r.Context())
	if err != nil {
		shared.WriteStoreError(w, err, "users", requestID)
		return
	}
	api.Success(w, users, requestID)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	user, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	api.Success(w, user, requestID)
}

type userRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password,omitempty"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("username", req.Username, "username is required")
	if len(req.Password) < 8 {
		v.Add("password", "must be at least 8 characters")
	}
	if !auth.ValidRole(req.Role) {
		v.Add("role", "must be one of admin, HR, Employee")
	}
	if v.Reject(w, requestID) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("hash password failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "user creation failed", requestID)
		return
	}
	id, err := h.Store.CreateUser(r.Context(), strings.TrimSpace(req.Username), hash, req.Role, req.EmployeeID)
	if err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "request body must be valid JSON", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("username", req.Username, "username is required")
	if !auth.ValidRole(req.Role) {
		v.Add("role", "must be one of admin, HR, Employee")
	}
	if req.Password != "" && len(req.Password) < 8 {
		v.Add("password", "must be at least 8 characters")
	}
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Store.UpdateUser(r.Context(), id, strings.TrimSpace(req.Username), req.Role, req.EmployeeID); err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			slog.Error("hash password failed", "err", err)
			api.Fail(w, http.StatusInternalServerError, "internal_error", "user update failed", requestID)
			return
		}
		if err := h.Store.UpdatePassword(r.Context(), id, hash); err != nil {
			shared.WriteStoreError(w, err, "user", requestID)
			return
		}
	}
	api.Success(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	id := shared.URLID(r, "id")
	if id == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer", requestID)
		return
	}
	userCtx, _ := middleware.GetUser(r.Context())
	if userCtx.UserID == id {
		api.Fail(w, http.StatusConflict, "constraint_violation", "cannot delete the account you are signed in with", requestID)
		return
	}
	if err := h.Store.DeleteUser(r.Context(), id); err != nil {
		shared.WriteStoreError(w, err, "user", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}
