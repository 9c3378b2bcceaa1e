package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/record-manager/api/v1"
	"github.com/tupyy/record-manager/internal/export"
	"github.com/tupyy/record-manager/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCSV downloads the records as CSV
// (GET /export.csv?filtered=true)
func (h *Handler) ExportCSV(c *gin.Context) {
	records, ok := h.exportRecords(c)
	if !ok {
		return
	}

	attachment(c, export.CSVFilename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.CSV(records))
}

// ExportXLSX downloads the records as a workbook
// (GET /export.xlsx?filtered=true)
func (h *Handler) ExportXLSX(c *gin.Context) {
	records, ok := h.exportRecords(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, records); err != nil {
		zap.S().Named("handler").Errorw("failed to build workbook", "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to build workbook"})
		return
	}

	attachment(c, export.XLSXFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) exportRecords(c *gin.Context) ([]models.Record, bool) {
	filtered, err := strconv.ParseBool(c.DefaultQuery("filtered", "false"))
	if err != nil {
		badRequest(c, "filtered must be a boolean")
		return nil, false
	}

	records, err := h.mgr.Export(c.Request.Context(), filtered)
	if err != nil {
		zap.S().Named("handler").Errorw("failed to export records", "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to export records"})
		return nil, false
	}
	return records, true
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
