package handler

import (
	"net/http"
	"time"

	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/models"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/money"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user placed by AuthMiddleware.
// Writes the 401 itself so callers can just return.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	return user, true
}

type expenseResp struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Amount      string    `json:"amount"` // fixed two-decimal string
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func toExpenseResp(e *models.Expense) expenseResp {
	return expenseResp{
		ID:          e.ID,
		Type:        e.Type,
		Category:    e.Category,
		AmountCents: e.AmountCents,
		Amount:      money.FormatCents(e.AmountCents),
		Date:        e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}
