package notification

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
	rg.POST("/notifications/send", h.Send)
	rg.GET("/notifications/me", h.ListMine)
	rg.GET("/notifications/unread-count", h.UnreadCount)
	rg.GET("/notifications/:id", h.GetByID)
	rg.PATCH("/notifications/:id/read", h.MarkRead)
	rg.PATCH("/notifications/mark-all-read/me", h.MarkAllRead)
}

func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "toUid and requestId are required")
		return
	}

	uid := c.GetString("uid")

	n, err := h.service.Send(c.Request.Context(), uid, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "toUid and requestId are required")
		case ErrRequestNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Blood request not found")
		case ErrRequestNotOpen:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "Only open requests can be sent")
		default:
			log.Printf("notification send failed uid=%s error=%v", uid, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Send request failed")
		}
		return
	}

	response.Success(c, http.StatusCreated, n)
}

func (h *Handler) ListMine(c *gin.Context) {
	uid := c.GetString("uid")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	list, err := h.service.ListForRecipient(c.Request.Context(), uid, limit)
	if err != nil {
		log.Printf("notification list failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notifications")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	uid := c.GetString("uid")

	unread, err := h.service.UnreadCount(c.Request.Context(), uid)
	if err != nil {
		log.Printf("unread count failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unread count failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread": unread})
}

func (h *Handler) GetByID(c *gin.Context) {
	uid := c.GetString("uid")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
		return
	}

	n, err := h.service.GetByID(c.Request.Context(), uid, id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		log.Printf("notification fetch failed uid=%s id=%d error=%v", uid, id, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notification")
		return
	}

	response.Success(c, http.StatusOK, n)
}

func (h *Handler) MarkRead(c *gin.Context) {
	uid := c.GetString("uid")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), uid, id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		log.Printf("mark read failed uid=%s id=%d error=%v", uid, id, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Mark read failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	uid := c.GetString("uid")

	if err := h.service.MarkAllRead(c.Request.Context(), uid); err != nil {
		log.Printf("mark all read failed uid=%s error=%v", uid, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Mark all read failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true})
}
