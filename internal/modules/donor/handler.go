package donor

import (
	"log"
	"net/http"

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
	rg.PUT("/donors/me", h.UpsertMe)
	rg.GET("/donors/me", h.GetMe)
}

func (h *Handler) UpsertMe(c *gin.Context) {
	var req UpsertDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	uid := c.GetString("uid")
	email := c.GetString("email")

	d, err := h.service.Upsert(c.Request.Context(), uid, email, req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "firstName, lastName and phone are required")
			return
		}
		log.Printf("donor upsert failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save donor profile")
		return
	}

	response.Success(c, http.StatusOK, d)
}

func (h *Handler) GetMe(c *gin.Context) {
	uid := c.GetString("uid")

	d, err := h.service.GetMine(c.Request.Context(), uid)
	if err != nil {
		log.Printf("donor fetch failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load donor profile")
		return
	}

	// null when no profile exists yet, matching the wire contract
	response.Success(c, http.StatusOK, d)
}
