package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	sharedauth "screening-backend/internal/shared/auth"
	"screening-backend/internal/shared/server/respond"
	"screening-backend/internal/users"
)

// LoginHandler issues role-bearing access tokens for password logins.
type LoginHandler struct {
	Users *users.Service
}

// NewLoginHandler constructs a LoginHandler.
func NewLoginHandler(svc *users.Service) *LoginHandler {
	return &LoginHandler{Users: svc}
}

// RegisterRoutes attaches the login route to the auth group.
func (h *LoginHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (h *LoginHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "email and password are required", nil)
		return
	}
	if req.Role != "" && !sharedauth.ValidRole(req.Role) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown role", []map[string]string{
			{"field": "role", "issue": "must be user, hr, or admin"},
		})
		return
	}

	user, err := h.Users.VerifyCredentials(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to log in", nil)
		return
	}

	token, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"access_token": token,
		"role":         user.Role,
	})
}
