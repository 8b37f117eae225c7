package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/recyclezone/marketplace/internal/application/catalog"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest is the body of POST /categories
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	ImageURL string `json:"image" binding:"omitempty,url"`
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.CategoryResponse}
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category"
// @Success      201 {object} dto.Response{data=shared.InsertResult}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.categoryService.Create(c.Request.Context(), req.Name, req.ImageURL)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
