package feedback

import (
	"log"
	"net/http"
	"strconv"

	"lifeline/internal/pkg/response"
	"lifeline/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.Create)
	rg.GET("/feedback/public", h.ListPublic)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid feedback", errs)
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message must be at least 5 characters")
			return
		}
		log.Printf("feedback create failed error=%v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Feedback save failed")
		return
	}

	response.Success(c, http.StatusCreated, f)
}

func (h *Handler) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	list, err := h.service.ListPublic(c.Request.Context(), limit)
	if err != nil {
		log.Printf("feedback list failed error=%v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Feedback list failed")
		return
	}

	response.Success(c, http.StatusOK, list)
}
