package handler

import (
	"net/http"
	"time"

	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/models"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/money"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler serves the bucketed aggregation endpoints. Every sum runs
// in SQL on integer cents; COALESCE pins empty sets to 0 instead of NULL.
type StatsHandler struct {
	DB *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{DB: db}
}

type categoryTotalRow struct {
	Category   string
	TotalCents int64
}

type categoryTotalResp struct {
	Category   string `json:"category"`
	TotalCents int64  `json:"total_cents"`
	Total      string `json:"total"`
}

type summaryRow struct {
	IncomeCents  int64
	ExpenseCents int64
}

// expenseSum sums expense-kind amounts for one owner inside an optional
// [start, end) window.
func (h *StatsHandler) expenseSum(userID uint, start, end *time.Time) (int64, error) {
	q := h.DB.Model(&models.Expense{}).
		Where("user_id = ? AND type = ?", userID, models.TypeExpense)
	if start != nil {
		q = q.Where("occurred_at >= ? AND occurred_at < ?", *start, *end)
	}

	var cents int64
	err := q.Select("COALESCE(SUM(amount_cents), 0)").Scan(&cents).Error
	return cents, err
}

// categoryTotals groups expense-kind amounts by category.
func (h *StatsHandler) categoryTotals(userID uint, start, end *time.Time) ([]categoryTotalResp, error) {
	q := h.DB.Model(&models.Expense{}).
		Where("user_id = ? AND type = ?", userID, models.TypeExpense)
	if start != nil {
		q = q.Where("occurred_at >= ? AND occurred_at < ?", *start, *end)
	}

	var rows []categoryTotalRow
	if err := q.
		Select("category, COALESCE(SUM(amount_cents), 0) AS total_cents").
		Group("category").
		Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]categoryTotalResp, 0, len(rows))
	for _, r := range rows {
		items = append(items, categoryTotalResp{
			Category:   r.Category,
			TotalCents: r.TotalCents,
			Total:      money.FormatCents(r.TotalCents),
		})
	}
	return items, nil
}

// incomeExpense computes both conditional sums in one query.
func (h *StatsHandler) incomeExpense(userID uint, start, end *time.Time) (summaryRow, error) {
	q := h.DB.Model(&models.Expense{}).Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("occurred_at >= ? AND occurred_at < ?", *start, *end)
	}

	var row summaryRow
	err := q.Select(
		"COALESCE(SUM(CASE WHEN type = 'income' THEN amount_cents ELSE 0 END), 0) AS income_cents, " +
			"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount_cents ELSE 0 END), 0) AS expense_cents").
		Scan(&row).Error
	return row, err
}

func summaryResponse(row summaryRow) util.Response {
	balance := row.IncomeCents - row.ExpenseCents
	return util.Response{
		"income":  money.FormatCents(row.IncomeCents),
		"expense": money.FormatCents(row.ExpenseCents),
		"balance": money.FormatCents(balance),
	}
}

// MonthlyTotal returns the expense sum for one YYYY-MM month.
func (h *StatsHandler) MonthlyTotal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	start, end, err := util.ParseMonth(c.Param("month"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	cents, err := h.expenseSum(user.ID, &start, &end)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"total": money.FormatCents(cents),
	})
}

// MonthlyChart returns per-category expense sums for one month.
func (h *StatsHandler) MonthlyChart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	start, end, err := util.ParseMonth(c.Param("month"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	items, err := h.categoryTotals(user.ID, &start, &end)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

// YearlySummary returns income/expense/balance for one YYYY year.
func (h *StatsHandler) YearlySummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	start, end, err := util.ParseYear(c.Param("year"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	row, err := h.incomeExpense(user.ID, &start, &end)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, summaryResponse(row))
}

// YearlyChart returns per-category expense sums for one year.
func (h *StatsHandler) YearlyChart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	start, end, err := util.ParseYear(c.Param("year"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	items, err := h.categoryTotals(user.ID, &start, &end)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

// Summary returns income/expense/balance over the whole ledger.
func (h *StatsHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	row, err := h.incomeExpense(user.ID, nil, nil)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, summaryResponse(row))
}

// Chart returns all-time per-category expense sums.
func (h *StatsHandler) Chart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.categoryTotals(user.ID, nil, nil)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	util.Success(c, util.Response{
		"items": items,
	})
}
