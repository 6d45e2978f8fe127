package stats

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
	rg.GET("/stats/public", h.Public)
}

func (h *Handler) Public(c *gin.Context) {
	s, err := h.service.Public(c.Request.Context())
	if err != nil {
		log.Printf("stats fetch failed error=%v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Stats fetch failed")
		return
	}

	response.Success(c, http.StatusOK, s)
}
