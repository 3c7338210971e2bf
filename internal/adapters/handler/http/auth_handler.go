package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
)

const refreshTokenCookie = "refresh_token"

type CookieConfig struct {
	Domain     string
	SameSite   http.SameSite
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	redirectURL string
	cookies     CookieConfig
	validator   *requestValidator
}

func NewAuthHandler(authService ports.AuthService, redirectURL string, cookies CookieConfig) *AuthHandler {
	if cookies.AccessTTL == 0 {
		cookies.AccessTTL = 15 * time.Minute
	}
	if cookies.RefreshTTL == 0 {
		cookies.RefreshTTL = 7 * 24 * time.Hour
	}
	return &AuthHandler{
		authService: authService,
		redirectURL: redirectURL,
		cookies:     cookies,
		validator:   newRequestValidator(),
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type accessResponse struct {
	Access string `json:"access"`
}

// Login godoc
// @Summary      Obtain a token pair
// @Description  Exchanges username and password for an access and a refresh token. Both are also set as HttpOnly cookies.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400
// @Failure      401
// @Router       /auth/token [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(w, r, err)
		return
	}

	pair, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setAccessTokenCookie(w, pair.Access)
	h.setRefreshTokenCookie(w, pair.Refresh)
	writeJSON(w, http.StatusOK, pair)
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	credential := r.FormValue("credential")
	if credential == "" {
		writeJSON(w, http.StatusBadRequest, fieldErrors{"credential": {"This field is required."}})
		return
	}

	pair, err := h.authService.LoginWithGoogle(r.Context(), credential)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setAccessTokenCookie(w, pair.Access)
	h.setRefreshTokenCookie(w, pair.Refresh)

	http.Redirect(w, r, h.redirectURL, http.StatusSeeOther)
}

// Refresh godoc
// @Summary      Refreshes the access token
// @Description  Creates a new access token from the refresh token cookie or the "refresh" body field.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := h.refreshToken(r)
	if token == "" {
		writeDetail(w, http.StatusUnauthorized, "Missing refresh token")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			h.expireCookies(w)
		}
		writeError(w, r, err)
		return
	}

	h.setAccessTokenCookie(w, accessToken)
	writeJSON(w, http.StatusOK, accessResponse{Access: accessToken})
}

// Logout godoc
// @Summary      Logs the authenticated user out
// @Description  Revokes the refresh token and clears the auth cookies
// @Tags         auth
// @Accept       json
// @Success      200
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := h.refreshToken(r); token != "" {
		if err := h.authService.Logout(r.Context(), token); err != nil {
			writeError(w, r, err)
			return
		}
	}

	h.expireCookies(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// refreshToken prefers the cookie and falls back to a JSON body.
func (h *AuthHandler) refreshToken(r *http.Request) string {
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if r.Body == nil || r.ContentLength == 0 {
		return ""
	}
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		return ""
	}
	return req.Refresh
}

func (h *AuthHandler) setAccessTokenCookie(w http.ResponseWriter, token string) {
	h.setCookie(w, accessTokenCookie, token, h.cookies.AccessTTL)
}

func (h *AuthHandler) setRefreshTokenCookie(w http.ResponseWriter, token string) {
	h.setCookie(w, refreshTokenCookie, token, h.cookies.RefreshTTL)
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cookies.Domain,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
		MaxAge:   int(ttl.Seconds()),
	})
}

func (h *AuthHandler) expireCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: accessTokenCookie, MaxAge: -1, Path: "/", Domain: h.cookies.Domain})
	http.SetCookie(w, &http.Cookie{Name: refreshTokenCookie, MaxAge: -1, Path: "/", Domain: h.cookies.Domain})
}
