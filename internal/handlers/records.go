package handlers

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/tupyy/record-manager/api/v1"
	"github.com/tupyy/record-manager/internal/models"
)

// CreateRecord adds a record
// (POST /records)
func (h *Handler) CreateRecord(c *gin.Context) {
	var req v1.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(c, models.Command{
		Kind:  models.CmdAdd,
		Name:  req.Name,
		Email: req.Email,
		Role:  models.Role(req.Role),
	})
}

// UpdateRecord applies a partial update
// (PATCH /records/{id})
func (h *Handler) UpdateRecord(c *gin.Context) {
	var req v1.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(c, models.Command{
		Kind:   models.CmdEdit,
		ID:     c.Param("id"),
		Fields: req.ToFields(),
	})
}

// DeleteRecord removes one record
// (DELETE /records/{id})
func (h *Handler) DeleteRecord(c *gin.Context) {
	h.dispatch(c, models.Command{Kind: models.CmdDelete, ID: c.Param("id")})
}

// CopyRecord duplicates one record
// (POST /records/{id}/copy)
func (h *Handler) CopyRecord(c *gin.Context) {
	h.dispatch(c, models.Command{Kind: models.CmdCopy, ID: c.Param("id")})
}

// BulkDeleteRecords removes every selected record
// (POST /records/bulk-delete?confirm=true)
func (h *Handler) BulkDeleteRecords(c *gin.Context) {
	h.dispatch(c, models.Command{Kind: models.CmdBulkDelete, Confirmed: confirmed(c)})
}

// ClearRecords removes every record
// (DELETE /records?confirm=true)
func (h *Handler) ClearRecords(c *gin.Context) {
	h.dispatch(c, models.Command{Kind: models.CmdClearAll, Confirmed: confirmed(c)})
}
