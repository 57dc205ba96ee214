package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow-golang/internal/models"
	"github.com/gymflow/gymflow-golang/internal/stats"
)

// TransactionInput is the new-entry form. The date defaults to today when
// omitted, matching the form's behavior.
type TransactionInput struct {
	Description string                 `json:"description" binding:"required"`
	Category    string                 `json:"category" binding:"required"`
	Amount      models.Money           `json:"amount"`
	Date        models.Date            `json:"date"`
	Type        models.TransactionType `json:"type" binding:"required"`
}

// ListTransactions returns the ledger, newest first, with the running
// balance. The balance is the same shared derivation the overview screen
// uses for profit, so the two can never disagree.
// GET /v1/transactions
func (h *Handlers) ListTransactions(c *gin.Context) {
	transactions := h.Store.Transactions()
	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"balance":      stats.Balance(transactions),
	})
}

// CreateTransaction records a new income or expense entry.
// POST /v1/transactions
func (h *Handlers) CreateTransaction(c *gin.Context) {
	var input TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := models.Transaction{
		Description: input.Description,
		Category:    input.Category,
		Amount:      input.Amount,
		Date:        input.Date,
		Type:        input.Type,
	}
	if tx.Date.IsZero() {
		tx.Date = models.Today()
	}
	if err := tx.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx = h.Store.AddTransaction(tx)
	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// DeleteTransaction removes an entry; deleting an absent id is a no-op.
// Entries are never edited in place, only created and deleted.
// DELETE /v1/transactions/:id
func (h *Handlers) DeleteTransaction(c *gin.Context) {
	h.Store.DeleteTransaction(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Categories returns the curated category lists the form offers per type.
// GET /v1/transactions/categories
func (h *Handlers) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"income":  models.IncomeCategories,
		"expense": models.ExpenseCategories,
	})
}
