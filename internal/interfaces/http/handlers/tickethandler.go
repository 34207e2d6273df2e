package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUseCase   usecases.CreateTicketExecutor
	createBlockUseCase    usecases.CreateBlockExecutor
	toggleStateUseCase    usecases.ToggleStateExecutor
	changeCategoryUseCase usecases.ChangeCategoryExecutor
	getTicketUseCase      usecases.GetTicketExecutor
	listTicketsUseCase    usecases.ListTicketsExecutor
	listBlocksUseCase     usecases.ListBlocksExecutor
	logger                logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	createBlockUC usecases.CreateBlockExecutor,
	toggleStateUC usecases.ToggleStateExecutor,
	changeCategoryUC usecases.ChangeCategoryExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listBlocksUC usecases.ListBlocksExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUseCase:   createTicketUC,
		createBlockUseCase:    createBlockUC,
		toggleStateUseCase:    toggleStateUC,
		changeCategoryUseCase: changeCategoryUC,
		getTicketUseCase:      getTicketUC,
		listTicketsUseCase:    listTicketsUC,
		listBlocksUseCase:     listBlocksUC,
		logger:                logger,
	}
}

type CreateTicketRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Body     string `json:"body" binding:"required,max=5000"`
	Category string `json:"category" binding:"required,ticketcategory"`
}

type CreateBlockRequest struct {
	Text string `json:"text" binding:"required,max=5000"`
}

type ChangeCategoryRequest struct {
	Category string `json:"category" binding:"required,ticketcategory"`
}

// Create opens a new ticket owned by the caller.
func (h *TicketHandler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createTicketUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		OwnerID:  c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created")
}

// List returns every ticket, newest first. This endpoint is public.
func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.listTicketsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", tickets)
}

// Get returns a single ticket.
func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListBlocks returns the ticket's thread, oldest first.
func (h *TicketHandler) ListBlocks(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	blocks, err := h.listBlocksUseCase.Execute(c.Request.Context(), usecases.ListBlocksQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", blocks)
}

// CreateBlock appends a follow-up to an open ticket. The author is the
// caller's username, not a client-supplied value.
func (h *TicketHandler) CreateBlock(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createBlockUseCase.Execute(c.Request.Context(), usecases.CreateBlockCommand{
		TicketID: ticketID,
		Author:   c.GetString(constants.ContextKeyUsername),
		Text:     req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "block created")
}

// ToggleState flips a ticket between open and close.
func (h *TicketHandler) ToggleState(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleStateUseCase.Execute(c.Request.Context(), usecases.ToggleStateCommand{
		TicketID: ticketID,
		CallerID: c.GetUint(constants.ContextKeyUserID),
		IsAdmin:  isAdminContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "state changed", result)
}

// ChangeCategory re-files a ticket. Admin only.
func (h *TicketHandler) ChangeCategory(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.changeCategoryUseCase.Execute(c.Request.Context(), usecases.ChangeCategoryCommand{
		TicketID:    ticketID,
		NewCategory: req.Category,
		IsAdmin:     isAdminContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "category changed", result)
}

func isAdminContext(c *gin.Context) bool {
	return authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)).IsAdmin()
}
