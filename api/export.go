package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"gigbook/database"
	"gigbook/middleware"
	"gigbook/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler writes entry exports
type ExportHandler struct{}

// NewExportHandler creates an export handler
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

func (h *ExportHandler) fetchRange(c *gin.Context) ([]models.Entry, string, string, bool) {
	userID := middleware.GetCurrentUserID(c)

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		BadRequest(c, "start_date and end_date are required")
		return nil, "", "", false
	}
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "start_date must be formatted as 2006-01-02")
		return nil, "", "", false
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "end_date must be formatted as 2006-01-02")
		return nil, "", "", false
	}

	var entries []models.Entry
	if err := database.DB.Preload("Category").
		Where("user_id = ? AND work_date >= ? AND work_date <= ?", userID, start, end).
		Order("work_date ASC, id ASC").
		Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "loading entries failed"))
		return nil, "", "", false
	}
	return entries, startStr, endStr, true
}

var exportHeaders = []string{
	"ID", "Work date", "Client", "Category", "Description",
	"Amount", "VAT rate", "Includes VAT", "Invoice status", "Payment status",
	"Invoice sent", "Paid date", "Amount paid",
}

func exportRow(e models.Entry) []string {
	category := ""
	if e.Category != nil {
		category = e.Category.Name
	}
	sent := ""
	if e.InvoiceSentDate != nil {
		sent = e.InvoiceSentDate.Format("2006-01-02")
	}
	paid := ""
	if e.PaidDate != nil {
		paid = e.PaidDate.Format("2006-01-02")
	}
	return []string{
		fmt.Sprintf("%d", e.ID),
		e.WorkDate.Format("2006-01-02"),
		e.ClientName,
		category,
		e.Description,
		fmt.Sprintf("%.2f", e.AmountGross),
		fmt.Sprintf("%.2f", e.VATRate),
		fmt.Sprintf("%t", e.IncludesVAT),
		e.InvoiceStatus,
		e.PaymentStatus,
		sent,
		paid,
		fmt.Sprintf("%.2f", e.AmountPaid),
	}
}

// ExportCSV streams entries as a CSV file
// @Summary Export entries as CSV
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param start_date query string true "range start (2026-01-01)"
// @Param end_date query string true "range end (2026-12-31)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	entries, startStr, endStr, ok := h.fetchRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel renders Hebrew client names correctly
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "writing CSV failed")
		return
	}
	for _, e := range entries {
		if err := writer.Write(exportRow(e)); err != nil {
			InternalError(c, "writing CSV failed")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "writing CSV failed")
		return
	}

	filename := fmt.Sprintf("entries_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX streams entries as an Excel workbook
// @Summary Export entries as XLSX
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_date query string true "range start (2026-01-01)"
// @Param end_date query string true "range end (2026-12-31)"
// @Success 200 {file} file "XLSX file"
// @Failure 400 {object} Response
// @Router /api/v1/export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	entries, startStr, endStr, ok := h.fetchRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Entries"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, e := range entries {
		for col, value := range exportRow(e) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "writing XLSX failed")
		return
	}

	filename := fmt.Sprintf("entries_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
