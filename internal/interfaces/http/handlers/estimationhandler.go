package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/estimation"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// EstimationHandler serves the estimation endpoints. The caller's
// authorization level comes from the bearer token, not from a session.
type EstimationHandler struct {
	service *estimation.Service
	logger  logger.Interface
}

func NewEstimationHandler(service *estimation.Service, logger logger.Interface) *EstimationHandler {
	return &EstimationHandler{
		service: service,
		logger:  logger,
	}
}

// EstimateRequest takes title and category as plain strings. The heuristic
// only counts characters, so unknown categories and missing titles are fine.
type EstimateRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// BatchTicketRequest is one ticket in a batch. The id is echoed back in the
// matching result.
type BatchTicketRequest struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type EstimateBatchRequest struct {
	Tickets []BatchTicketRequest `json:"tickets"`
}

// Estimate returns an effort estimate for a single ticket.
func (h *EstimationHandler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Estimate(c.Request.Context(), estimation.EstimateCommand{
		Title:    req.Title,
		Category: req.Category,
		Role:     tokenRole(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "estimation produced", result)
}

// EstimateBatch estimates several tickets at once. Admin tokens only.
func (h *EstimationHandler) EstimateBatch(c *gin.Context) {
	var req EstimateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]estimation.BatchItem, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		items = append(items, estimation.BatchItem{
			ID:       t.ID,
			Title:    t.Title,
			Category: t.Category,
		})
	}

	results, err := h.service.EstimateBatch(c.Request.Context(), items, tokenRole(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "estimations produced", results)
}

func tokenRole(c *gin.Context) authorization.UserRole {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyTokenRole))
}
