package search

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
	rg.GET("/find/donors", h.FindDonors)
}

// FindDonors is public: discovery must work for visitors who have not
// signed in yet.
func (h *Handler) FindDonors(c *gin.Context) {
	criteria := Criteria{
		BloodGroup:    c.Query("bloodGroup"),
		District:      c.Query("district"),
		Division:      c.Query("division"),
		AvailableOnly: c.Query("availableOnly") == "true",
	}

	results, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		if err == ErrInvalidQuery {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", err.Error())
			return
		}
		log.Printf("donor search failed criteria=%+v error=%v", criteria, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}

	response.Success(c, http.StatusOK, results)
}
