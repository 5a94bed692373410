package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/models"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/money"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler serializes a user's ledger as CSV, XLSX or PDF.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

// column order shared by the CSV and XLSX reports
var exportHeader = []string{"id", "amount", "category", "type", "date"}

func (h *ExportHandler) loadExpenses(userID uint, start, end *time.Time) ([]models.Expense, error) {
	q := h.DB.Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("occurred_at >= ? AND occurred_at < ?", *start, *end)
	}

	var expenses []models.Expense
	err := q.Order("occurred_at ASC, id ASC").Find(&expenses).Error
	return expenses, err
}

// ExportCSV streams all entries as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	expenses, err := h.loadExpenses(user.ID, nil, nil)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for _, e := range expenses {
		writer.Write([]string{
			strconv.FormatUint(uint64(e.ID), 10),
			money.FormatCents(e.AmountCents),
			e.Category,
			e.Type,
			e.OccurredAt.Format("2006-01-02"),
		})
	}
}

// ExportXLSX writes the same table as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	expenses, err := h.loadExpenses(user.ID, nil, nil)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	f := excelize.NewFile()
	sheetName := "Expenses"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, head := range exportHeader {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx, e := range expenses {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), money.FormatCents(e.AmountCents))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), e.OccurredAt.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}

// ExportPDF renders the full ledger report.
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	h.writePDF(c, user.ID, nil, nil, "Expense Report")
}

// ExportPDFMonthly renders the report limited to one YYYY-MM month.
func (h *ExportHandler) ExportPDFMonthly(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	month := c.Param("month")
	start, end, err := util.ParseMonth(month)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	h.writePDF(c, user.ID, &start, &end, "Expense Report "+month)
}

// writePDF emits one line per entry plus a trailing total-expense line.
func (h *ExportHandler) writePDF(c *gin.Context, userID uint, start, end *time.Time, title string) {
	expenses, err := h.loadExpenses(userID, start, end)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	var totalExpenseCents int64
	for _, e := range expenses {
		if e.Type == models.TypeExpense {
			totalExpenseCents += e.AmountCents
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for _, e := range expenses {
		line := fmt.Sprintf("%s | %s | %s | %s",
			e.OccurredAt.Format("2006-01-02"),
			e.Category,
			e.Type,
			money.FormatCents(e.AmountCents))
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Total expense: "+money.FormatCents(totalExpenseCents), "", 1, "L", false, 0, "")

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.pdf\"",
		time.Now().Format("20060102")))

	if err := pdf.Output(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
