package request

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
	rg.POST("/requests", h.Create)
	rg.GET("/requests/me", h.ListMine)
	rg.PATCH("/requests/:id/close", h.Close)
	rg.DELETE("/requests/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "bloodGroup is required")
		return
	}

	uid := c.GetString("uid")
	email := c.GetString("email")

	b, err := h.service.Create(c.Request.Context(), uid, email, req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "bloodGroup is required")
			return
		}
		log.Printf("request create failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create request")
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) ListMine(c *gin.Context) {
	uid := c.GetString("uid")

	list, err := h.service.ListMine(c.Request.Context(), uid)
	if err != nil {
		log.Printf("request list failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load requests")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Close(c *gin.Context) {
	uid := c.GetString("uid")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
		return
	}

	b, err := h.service.Close(c.Request.Context(), uid, id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
			return
		}
		log.Printf("request close failed uid=%s id=%d error=%v", uid, id, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to close request")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	uid := c.GetString("uid")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), uid, id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
			return
		}
		log.Printf("request delete failed uid=%s id=%d error=%v", uid, id, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
