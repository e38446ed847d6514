package controllers

import (
	"net/http"
	"time"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/service"
	"github.com/gin-gonic/gin"
)

type AuditController struct {
	auditService *service.AuditService
}

type ChangeItemResponse struct {
	Field  string `json:"field"`
	Before any    `json:"before"`
	After  any    `json:"after"`
}

type AuditEntryResponse struct {
	ProductID     string               `json:"productId"`
	Action        string               `json:"action"`
	ChangedAt     time.Time            `json:"changedAt"`
	ChangedByRole string               `json:"changedByRole"`
	Changes       []ChangeItemResponse `json:"changes"`
	Version       int                  `json:"version"`
}

func NewAuditEntryResponse(entry *domain.AuditEntry) AuditEntryResponse {
	props := entry.Snapshot()

	changes := make([]ChangeItemResponse, len(props.Changes))
	for i, change := range props.Changes {
		changes[i] = ChangeItemResponse{Field: change.Field, Before: change.Before, After: change.After}
	}

	return AuditEntryResponse{
		ProductID:     props.ProductID,
		Action:        string(props.Action),
		ChangedAt:     props.ChangedAt,
		ChangedByRole: string(props.ChangedByRole),
		Changes:       changes,
		Version:       props.Version,
	}
}

func NewAuditController(auditService *service.AuditService) *AuditController {
	return &AuditController{auditService: auditService}
}

// GetProductAudit godoc
// @Summary     Product audit trail
// @Description Returns every recorded mutation of a product, oldest first
// @Tags        audit
// @Produce     json
// @Param       id path string true "Product id (GTIN)"
// @Success     200 {array} AuditEntryResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/audit [get]
func (ac *AuditController) GetProductAudit(c *gin.Context) {
	res := ac.auditService.GetProductAudit(c.Request.Context(), c.Param("id"))
	respond(c, http.StatusOK, res, func(entries []*domain.AuditEntry) any {
		response := make([]AuditEntryResponse, len(entries))
		for i, entry := range entries {
			response[i] = NewAuditEntryResponse(entry)
		}
		return response
	})
}
