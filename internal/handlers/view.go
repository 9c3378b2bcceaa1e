package handlers

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/tupyy/record-manager/api/v1"
	"github.com/tupyy/record-manager/internal/models"
)

// GetView returns the current table state
// (GET /view)
func (h *Handler) GetView(c *gin.Context) {
	h.dispatch(c, models.Command{Kind: models.CmdRefresh})
}

// SetQuery sets the search text
// (PUT /view/query)
func (h *Handler) SetQuery(c *gin.Context) {
	var req v1.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(c, models.Command{Kind: models.CmdSearch, Query: req.Query})
}

// SetSort sets the sort keys
// (PUT /view/sort)
func (h *Handler) SetSort(c *gin.Context) {
	var req v1.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	sort, err := models.ParseSort(req.Sort)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	h.dispatch(c, models.Command{Kind: models.CmdSort, Sort: sort})
}

// SetPerPage sets the page size
// (PUT /view/per-page)
func (h *Handler) SetPerPage(c *gin.Context) {
	var req v1.PerPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(c, models.Command{Kind: models.CmdPerPage, PerPage: req.PerPage})
}

// SetPage moves the page cursor
// (PUT /view/page)
func (h *Handler) SetPage(c *gin.Context) {
	var req v1.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	cmd := models.Command{Kind: models.CmdGoToPage, Page: req.Page}
	if req.Move != nil {
		move, err := v1.ParsePageMove(*req.Move)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		cmd.Move = move
	}

	h.dispatch(c, cmd)
}

// SelectRecord checks or unchecks one record
// (PUT /selection/{id})
func (h *Handler) SelectRecord(c *gin.Context) {
	var req v1.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(c, models.Command{Kind: models.CmdToggle, ID: c.Param("id"), Checked: req.Checked})
}

// SelectPage checks or unchecks every record of the visible page
// (PUT /selection)
func (h *Handler) SelectPage(c *gin.Context) {
	var req v1.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	h.dispatch(c, models.Command{Kind: models.CmdToggleAll, Checked: req.Checked})
}
