package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"reward-ops.backend/internal/domain/entities"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/internal/interfaces/http/middleware"
	"reward-ops.backend/internal/interfaces/http/response"
	"reward-ops.backend/internal/usecases"
)

// ApprovalHandler handles the reviewer endpoints
type ApprovalHandler struct {
	approval *usecases.ApprovalUsecase
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(approval *usecases.ApprovalUsecase) *ApprovalHandler {
	return &ApprovalHandler{approval: approval}
}

// ListPending returns the caller's review queue
// GET /api/v1/approvals/pending?page=1&limit=10
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	accounts, meta, err := h.approval.ListPending(c.Request.Context(), middleware.GetAccountID(c), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accounts":   accounts,
		"pagination": meta,
	})
}

// Approve advances an account one review tier
// POST /api/v1/approvals/:id/approve
func (h *ApprovalHandler) Approve(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid account id"))
		return
	}

	account, err := h.approval.Approve(c.Request.Context(), middleware.GetAccountID(c), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, account)
}

// Reject finalizes an account as rejected
// POST /api/v1/approvals/:id/reject
func (h *ApprovalHandler) Reject(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid account id"))
		return
	}

	var input entities.RejectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	account, err := h.approval.Reject(c.Request.Context(), middleware.GetAccountID(c), targetID, input.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, account)
}

// History returns the audit trail for an account
// GET /api/v1/approvals/:id/history
func (h *ApprovalHandler) History(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid account id"))
		return
	}

	records, err := h.approval.History(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"history": records})
}
