package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/recyclezone/marketplace/internal/application/catalog"
	"github.com/recyclezone/marketplace/internal/domain/catalog"
	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
)

// ProductHandler handles listings
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest is the body of POST /products. The seller is the
// authenticated caller; any seller email in the body is ignored.
type CreateProductRequest struct {
	SellerName    string          `json:"sellerName" binding:"max=100"`
	Name          string          `json:"name" binding:"required,max=200"`
	Category      string          `json:"category" binding:"required,max=100"`
	Description   string          `json:"description" binding:"max=4000"`
	Condition     string          `json:"condition" binding:"max=50"`
	Location      string          `json:"location" binding:"max=200"`
	Phone         string          `json:"phone" binding:"max=30"`
	ImageURL      string          `json:"image" binding:"omitempty,url"`
	Price         decimal.Decimal `json:"resalePrice"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	YearsOfUse    int             `json:"yearsOfUse" binding:"gte=0"`
	Quantity      *int            `json:"quantity" binding:"omitempty,gte=0"`
}

// ListProductsQuery filters GET /products
type ListProductsQuery struct {
	Category    string `form:"category"`
	SellerEmail string `form:"sellerEmail"`
}

// List godoc
// @Summary      List products
// @Description  Newest first, optionally filtered by category and seller
// @Tags         products
// @Produce      json
// @Param        category query string false "Category name"
// @Param        sellerEmail query string false "Seller email"
// @Success      200 {object} dto.Response{data=[]catalogapp.ProductResponse}
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	h.list(c, catalog.ProductFilter{Category: query.Category, SellerEmail: query.SellerEmail})
}

// ListBySeller returns the listings of the seller in the path
func (h *ProductHandler) ListBySeller(c *gin.Context) {
	h.list(c, catalog.ProductFilter{SellerEmail: c.Param("email")})
}

// ListByCategory returns the listings in the category in the path
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	h.list(c, catalog.ProductFilter{Category: c.Param("categoryName")})
}

func (h *ProductHandler) list(c *gin.Context, filter catalog.ProductFilter) {
	products, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Create godoc
// @Summary      List a product for sale
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body CreateProductRequest true "Listing"
// @Success      201 {object} dto.Response{data=shared.InsertResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.productService.Create(c.Request.Context(), middleware.GetCallerEmail(c), catalogapp.CreateProductInput{
		SellerName:    req.SellerName,
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Condition:     req.Condition,
		Location:      req.Location,
		Phone:         req.Phone,
		ImageURL:      req.ImageURL,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		YearsOfUse:    req.YearsOfUse,
		Quantity:      req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Delete godoc
// @Summary      Delete a product
// @Description  Only the seller who listed it or an admin may delete a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response{data=shared.DeleteResult}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id", "product")
	if !ok {
		return
	}

	result, err := h.productService.Delete(c.Request.Context(), middleware.GetCallerEmail(c), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// StockOut godoc
// @Summary      Mark a product sold out
// @Description  Sets quantity to zero. Repeating the call reports modifiedCount 0.
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.Response{data=shared.UpdateResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /stockout/{id} [patch]
func (h *ProductHandler) StockOut(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id", "product")
	if !ok {
		return
	}

	result, err := h.productService.StockOut(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
