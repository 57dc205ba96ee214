// Package stats derives the dashboard figures from raw records. Every
// function here is pure: no caching, no side effects, recomputed per request,
// and safe to call on empty or nil collections.
package stats

import "github.com/gymflow/gymflow-golang/internal/models"

// DashboardStats bundles the four overview KPIs.
type DashboardStats struct {
	Revenue        models.Money `json:"revenue"`
	Expenses       models.Money `json:"expenses"`
	Profit         models.Money `json:"profit"`
	ActiveStudents int          `json:"activeStudents"`
}

// ActiveStudentCount counts students whose status is exactly active;
// overdue and inactive students are excluded.
func ActiveStudentCount(students []models.Student) int {
	count := 0
	for _, s := range students {
		if s.Status == models.StatusActive {
			count++
		}
	}
	return count
}

// TotalRevenue sums the amounts of all income transactions.
func TotalRevenue(transactions []models.Transaction) models.Money {
	return sumByType(transactions, models.TypeIncome)
}

// TotalExpenses sums the amounts of all expense transactions.
func TotalExpenses(transactions []models.Transaction) models.Money {
	return sumByType(transactions, models.TypeExpense)
}

// Profit is revenue minus expenses.
func Profit(transactions []models.Transaction) models.Money {
	return models.Money{Cents: TotalRevenue(transactions).Cents - TotalExpenses(transactions).Cents}
}

// Balance is the figure the transactions screen shows. It is defined as
// Profit so the two displayed totals can never disagree for the same input.
func Balance(transactions []models.Transaction) models.Money {
	return Profit(transactions)
}

// Overview computes all dashboard KPIs over one snapshot of the records.
func Overview(students []models.Student, transactions []models.Transaction) DashboardStats {
	return DashboardStats{
		Revenue:        TotalRevenue(transactions),
		Expenses:       TotalExpenses(transactions),
		Profit:         Profit(transactions),
		ActiveStudents: ActiveStudentCount(students),
	}
}

func sumByType(transactions []models.Transaction, t models.TransactionType) models.Money {
	var cents int64
	for _, tx := range transactions {
		if tx.Type == t {
			cents += tx.Amount.Cents
		}
	}
	return models.Money{Cents: cents}
}
