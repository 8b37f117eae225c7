package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/recyclezone/marketplace/internal/application/identity"
	"github.com/recyclezone/marketplace/internal/domain/identity"
)

// UserHandler handles accounts, role checks and seller verification
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRequest is the body of POST /users
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=buyer seller admin"`
	PhotoURL string `json:"photoURL" binding:"omitempty,url"`
}

// RoleCheckResponse answers the per-role lookups. Only the checked role is set.
type RoleCheckResponse struct {
	IsBuyer  *bool `json:"isBuyer,omitempty"`
	IsSeller *bool `json:"isSeller,omitempty"`
	IsAdmin  *bool `json:"isAdmin,omitempty"`
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {object} dto.Response{data=[]identityapp.UserResponse}
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, users)
}

// Register godoc
// @Summary      Register a user
// @Description  Creates a buyer or seller account. Admin accounts cannot self-register.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterUserRequest true "New user"
// @Success      201 {object} dto.Response{data=shared.InsertResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.userService.Register(c.Request.Context(), identityapp.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     identity.Role(req.Role),
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Delete godoc
// @Summary      Delete a user
// @Description  Removes the account and revokes its outstanding tokens
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=shared.DeleteResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id", "user")
	if !ok {
		return
	}

	result, err := h.userService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// IsBuyer godoc
// @Summary      Check the buyer role
// @Tags         users
// @Produce      json
// @Param        email path string true "Email"
// @Success      200 {object} dto.Response{data=RoleCheckResponse}
// @Router       /users/buyer/{email} [get]
func (h *UserHandler) IsBuyer(c *gin.Context) {
	ok, err := h.userService.IsBuyer(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, RoleCheckResponse{IsBuyer: &ok})
}

// IsSeller godoc
// @Summary      Check the seller role
// @Tags         users
// @Produce      json
// @Param        email path string true "Email"
// @Success      200 {object} dto.Response{data=RoleCheckResponse}
// @Router       /users/seller/{email} [get]
func (h *UserHandler) IsSeller(c *gin.Context) {
	ok, err := h.userService.IsSeller(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, RoleCheckResponse{IsSeller: &ok})
}

// IsAdmin godoc
// @Summary      Check the admin role
// @Tags         users
// @Produce      json
// @Param        email path string true "Email"
// @Success      200 {object} dto.Response{data=RoleCheckResponse}
// @Router       /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c *gin.Context) {
	ok, err := h.userService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, RoleCheckResponse{IsAdmin: &ok})
}

// ListSellers returns every seller account
func (h *UserHandler) ListSellers(c *gin.Context) {
	h.listByRole(c, identity.RoleSeller)
}

// ListBuyers returns every buyer account
func (h *UserHandler) ListBuyers(c *gin.Context) {
	h.listByRole(c, identity.RoleBuyer)
}

func (h *UserHandler) listByRole(c *gin.Context, role identity.Role) {
	users, err := h.userService.ListByRole(c.Request.Context(), role)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, users)
}

// VerifySeller godoc
// @Summary      Verify a seller
// @Description  Marks the user verified. Repeating the call leaves modifiedCount at 0.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=shared.UpdateResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /users/seller/{id} [put]
func (h *UserHandler) VerifySeller(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id", "user")
	if !ok {
		return
	}

	result, err := h.userService.VerifySeller(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetVerifiedSeller godoc
// @Summary      Look up a verified seller
// @Description  Returns the user when verified, otherwise null
// @Tags         users
// @Produce      json
// @Param        email path string true "Email"
// @Success      200 {object} dto.Response{data=identityapp.UserResponse}
// @Router       /veryfied/seller/{email} [get]
func (h *UserHandler) GetVerifiedSeller(c *gin.Context) {
	user, err := h.userService.GetVerifiedSeller(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if user == nil {
		h.Success(c, nil)
		return
	}
	h.Success(c, user)
}
