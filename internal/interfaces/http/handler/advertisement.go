package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/recyclezone/marketplace/internal/application/catalog"
	"github.com/recyclezone/marketplace/internal/interfaces/http/dto"
	"github.com/recyclezone/marketplace/internal/interfaces/http/middleware"
)

// AdvertisementHandler handles seller advertisements
type AdvertisementHandler struct {
	BaseHandler
	adService *catalogapp.AdvertisementService
}

// NewAdvertisementHandler creates a new AdvertisementHandler
func NewAdvertisementHandler(adService *catalogapp.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{adService: adService}
}

// Create godoc
// @Summary      Post an advertisement
// @Description  Stores any JSON object on behalf of the caller
// @Tags         advertisements
// @Accept       json
// @Produce      json
// @Success      201 {object} dto.Response{data=shared.InsertResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /advertisements [post]
func (h *AdvertisementHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body too large")
		return
	}

	result, err := h.adService.Create(c.Request.Context(), middleware.GetCallerEmail(c), json.RawMessage(body))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List godoc
// @Summary      List advertisements
// @Tags         advertisements
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.AdvertisementResponse}
// @Router       /advertisements [get]
func (h *AdvertisementHandler) List(c *gin.Context) {
	ads, err := h.adService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ads)
}
