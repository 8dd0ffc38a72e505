// internal/handlers/http/login_handler.go
package http

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopfloor-tracker/internal/middleware"
	"shopfloor-tracker/internal/util"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // epoch seconds
	User      string `json:"user"`
	Role      string `json:"role"`
}

// LoginHandler memverifikasi kredensial admin (bcrypt) dan menerbitkan JWT.
type LoginHandler struct {
	User     string
	PassHash string
	Secret   string
	TTL      time.Duration
}

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in loginReq
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		util.WriteError(w, http.StatusBadRequest, util.BadInput("bad request"))
		return
	}
	if h.User == "" || h.PassHash == "" || h.Secret == "" {
		util.WriteError(w, http.StatusForbidden, util.AppError{Code: "forbidden", Message: "admin not configured"})
		return
	}
	if in.Username != h.User ||
		bcrypt.CompareHashAndPassword([]byte(h.PassHash), []byte(in.Password)) != nil {
		util.WriteError(w, http.StatusUnauthorized, util.Unauthorized("invalid credentials"))
		return
	}

	ttl := h.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, exp, err := middleware.GenerateToken(h.Secret, h.User, "admin", ttl)
	if err != nil {
		util.WriteError(w, http.StatusInternalServerError, util.Internal("token error"))
		return
	}
	util.WriteJSON(w, http.StatusOK, loginResp{Token: token, ExpiresAt: exp, User: h.User, Role: "admin"})
}
