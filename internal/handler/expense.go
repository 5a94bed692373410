package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/models"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/money"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler serves the owner-scoped ledger CRUD.
type ExpenseHandler struct {
	DB *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{DB: db}
}

// amounts arrive as JSON numbers; json.Number keeps the literal text so
// money.ParseCents sees exactly what the client sent
type createExpenseReq struct {
	Amount   json.Number `json:"amount" binding:"required"`
	Category string      `json:"category" binding:"required"`
	Type     string      `json:"type" binding:"required"`
	Date     string      `json:"date" binding:"required"`
}

type updateExpenseReq struct {
	Amount   json.Number `json:"amount" binding:"required"`
	Category string      `json:"category" binding:"required"`
	Type     string      `json:"type" binding:"required"`
}

// CreateExpense records one ledger entry for the current user.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req createExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if err := util.ValidateCategory(req.Category); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if err := util.ValidateType(req.Type); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	amountCents, err := money.ParseCents(req.Amount.String())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	// the transaction date comes from the caller, it is the axis for
	// all monthly and yearly buckets
	occurredAt, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	expense := models.Expense{
		UserID:      user.ID,
		Type:        req.Type,
		Category:    req.Category,
		AmountCents: amountCents,
		OccurredAt:  occurredAt,
	}

	if err := h.DB.Create(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"message": "expense added",
		"expense": toExpenseResp(&expense),
	})
}

// ListExpenses returns every entry owned by the current user.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var expenses []models.Expense
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("occurred_at DESC, id DESC").
		Find(&expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]expenseResp, 0, len(expenses))
	for i := range expenses {
		items = append(items, toExpenseResp(&expenses[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

// ListExpensesByDate returns entries whose date falls on one calendar day.
func (h *ExpenseHandler) ListExpensesByDate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	start, end, err := util.ParseDay(c.Param("date"))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var expenses []models.Expense
	if err := h.DB.
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", user.ID, start, end).
		Order("occurred_at ASC, id ASC").
		Find(&expenses).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		return
	}

	items := make([]expenseResp, 0, len(expenses))
	for i := range expenses {
		items = append(items, toExpenseResp(&expenses[i]))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

// UpdateExpense modifies amount/category/type of one owned entry.
// Id and owner are immutable. A row that does not exist under this owner
// is a 404, not a silent success.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req updateExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if err := util.ValidateCategory(req.Category); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}
	if err := util.ValidateType(req.Type); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	amountCents, err := money.ParseCents(req.Amount.String())
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	// only rows owned by the caller are reachable
	var expense models.Expense
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "query failed")
		}
		return
	}

	expense.Type = req.Type
	expense.Category = req.Category
	expense.AmountCents = amountCents

	if err := h.DB.Save(&expense).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "save failed, please retry")
		return
	}

	util.Success(c, util.Response{
		"message": "expense updated",
		"expense": toExpenseResp(&expense),
	})
}

// DeleteExpense removes one owned entry; zero affected rows is a 404.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Expense{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
		return
	}

	util.Success(c, util.Response{
		"message": "expense deleted",
	})
}
