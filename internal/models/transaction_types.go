package models

import (
	"errors"
	"strings"
)

var (
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidCategory = errors.New("invalid category for transaction type")
	ErrEmptyDesc       = errors.New("empty description")
)

// TransactionType splits the ledger into money in and money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Curated category sets per transaction type. The category field itself is a
// plain string, but the form boundary only accepts values from these lists.
var (
	ExpenseCategories = []string{"Aluguel", "Equipamentos", "Limpeza", "Funcionários", "Outros"}
	IncomeCategories  = []string{"Mensalidade", "Matrícula", "Aula Avulsa", "Produtos", "Outros"}
)

// ValidCategory reports whether category belongs to the curated set for t.
func ValidCategory(t TransactionType, category string) bool {
	var set []string
	switch t {
	case TypeIncome:
		set = IncomeCategories
	case TypeExpense:
		set = ExpenseCategories
	default:
		return false
	}
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction is a single income or expense entry. Transactions are created
// and deleted, never edited in place.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      Money           `json:"amount"`
	Date        Date            `json:"date"`
	Type        TransactionType `json:"type"`
}

// Validate checks the invariants on a transaction entry.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDesc
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return ErrInvalidType
	}
	if !ValidCategory(t.Type, t.Category) {
		return ErrInvalidCategory
	}
	if t.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
