package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/recyclezone/marketplace/internal/application/identity"
	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/interfaces/http/dto"
	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
)

// TokenHandler issues access tokens
type TokenHandler struct {
	BaseHandler
	tokenService *identityapp.TokenService
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokenService *identityapp.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// TokenRequest is the query of GET /jwt
type TokenRequest struct {
	Email string `form:"email" binding:"required,email"`
}

// TokenResponse carries an access token. Unknown users get an empty token.
type TokenResponse struct {
	AccessToken string     `json:"accessToken"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// Issue godoc
// @Summary      Issue an access token
// @Description  Signs a bearer token for a registered email
// @Tags         auth
// @Produce      json
// @Param        email query string true "Registered email"
// @Success      200 {object} dto.Response{data=TokenResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{data=TokenResponse}
// @Failure      429 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /jwt [get]
func (h *TokenHandler) Issue(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.tokenService.Issue(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrUnknownUser) {
			code := dto.ErrCodeUnknownUser
			c.JSON(dto.GetHTTPStatus(code), dto.Response{
				Success: false,
				Data:    TokenResponse{AccessToken: ""},
				Error: &dto.ErrorInfo{
					Code:      code,
					Message:   shared.ErrUnknownUser.Message,
					RequestID: middleware.GetRequestID(c),
				},
			})
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, TokenResponse{AccessToken: result.AccessToken, ExpiresAt: &result.ExpiresAt})
}
