package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/record-manager/api/v1"
	"github.com/tupyy/record-manager/internal/models"
	"github.com/tupyy/record-manager/internal/services"
	srvErrors "github.com/tupyy/record-manager/pkg/errors"
)

type Handler struct {
	mgr *services.Manager
}

func New(mgr *services.Manager) *Handler {
	return &Handler{
		mgr: mgr,
	}
}

// RegisterHandlers mounts every endpoint on router.
func RegisterHandlers(router gin.IRouter, h *Handler) {
	router.GET("/view", h.GetView)
	router.PUT("/view/query", h.SetQuery)
	router.PUT("/view/sort", h.SetSort)
	router.PUT("/view/per-page", h.SetPerPage)
	router.PUT("/view/page", h.SetPage)

	router.POST("/records", h.CreateRecord)
	router.DELETE("/records", h.ClearRecords)
	router.POST("/records/bulk-delete", h.BulkDeleteRecords)
	router.PATCH("/records/:id", h.UpdateRecord)
	router.DELETE("/records/:id", h.DeleteRecord)
	router.POST("/records/:id/copy", h.CopyRecord)

	router.PUT("/selection", h.SelectPage)
	router.PUT("/selection/:id", h.SelectRecord)

	router.GET("/export.csv", h.ExportCSV)
	router.GET("/export.xlsx", h.ExportXLSX)
}

// dispatch runs cmd and writes the resulting view, mapping refused commands
// to their status code.
func (h *Handler) dispatch(c *gin.Context, cmd models.Command) {
	model, err := h.mgr.Dispatch(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, cmd, model, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewViewFromModel(model, h.mgr.PerPageChoices()))
}

func (h *Handler) writeError(c *gin.Context, cmd models.Command, model models.RenderModel, err error) {
	view := v1.NewViewFromModel(model, h.mgr.PerPageChoices())

	var verr *srvErrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error(), Fields: verr.Fields, View: &view})
	case srvErrors.IsConfirmationRequiredError(err):
		c.JSON(http.StatusConflict, v1.ErrorResponse{Error: err.Error(), View: &view})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, v1.ErrorResponse{Error: "request canceled"})
	default:
		zap.S().Named("handler").Errorw("command failed", "command", cmd.Kind.String(), "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: msg})
}

func confirmed(c *gin.Context) bool {
	ok, err := strconv.ParseBool(c.DefaultQuery("confirm", "false"))
	return err == nil && ok
}
