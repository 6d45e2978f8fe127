package donation

import (
	"log"
	"net/http"
	"strconv"

	"lifeline/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/donations", h.Create)
	rg.GET("/donations/me", h.ListMine)
	rg.DELETE("/donations/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date is required")
		return
	}

	uid := c.GetString("uid")

	d, err := h.service.Create(c.Request.Context(), uid, req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date is required")
			return
		}
		log.Printf("donation create failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record donation")
		return
	}

	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) ListMine(c *gin.Context) {
	uid := c.GetString("uid")

	list, err := h.service.ListMine(c.Request.Context(), uid)
	if err != nil {
		log.Printf("donation list failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load donations")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Delete(c *gin.Context) {
	uid := c.GetString("uid")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Donation not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uid, id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Donation not found")
			return
		}
		log.Printf("donation delete failed uid=%s id=%d error=%v", uid, id, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete donation")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
