package store

import "github.com/gymflow/gymflow-golang/internal/models"

// Seed fills an empty store with the demo academy data so the dashboard has
// something to show on first run. A store that already holds records is left
// untouched.
func (s *Store) Seed() {
	if len(s.Students()) > 0 || len(s.Transactions()) > 0 {
		return
	}

	date := models.NewDate

	students := []models.Student{
		{Name: "Carlos Silva", WhatsApp: "11999999999", Plan: models.PlanMonthly, Value: models.Money{Cents: 9000}, DueDate: date(2023, 11, 10), Status: models.StatusActive},
		{Name: "Ana Souza", WhatsApp: "11988888888", Plan: models.PlanQuarterly, Value: models.Money{Cents: 25000}, DueDate: date(2023, 11, 5), Status: models.StatusOverdue, DaysOverdue: 5},
		{Name: "Pedro Santos", WhatsApp: "11977777777", Plan: models.PlanMonthly, Value: models.Money{Cents: 9000}, DueDate: date(2023, 11, 15), Status: models.StatusActive},
		{Name: "Mariana Lima", WhatsApp: "11966666666", Plan: models.PlanAnnual, Value: models.Money{Cents: 90000}, DueDate: date(2023, 11, 20), Status: models.StatusActive},
		{Name: "João Ferreira", WhatsApp: "11955555555", Plan: models.PlanMonthly, Value: models.Money{Cents: 9000}, DueDate: date(2023, 10, 30), Status: models.StatusOverdue, DaysOverdue: 11},
	}
	for _, st := range students {
		s.AddStudent(st)
	}

	// Oldest first: AddTransaction prepends, leaving the list newest first.
	transactions := []models.Transaction{
		{Description: "Aluguel do Espaço", Category: "Aluguel", Amount: models.Money{Cents: 250000}, Date: date(2023, 11, 1), Type: models.TypeExpense},
		{Description: "Manutenção Esteira", Category: "Equipamentos", Amount: models.Money{Cents: 45000}, Date: date(2023, 11, 3), Type: models.TypeExpense},
		{Description: "Produtos de Limpeza", Category: "Limpeza", Amount: models.Money{Cents: 12000}, Date: date(2023, 11, 4), Type: models.TypeExpense},
		{Description: "Mensalidade - Carlos Silva", Category: "Mensalidade", Amount: models.Money{Cents: 9000}, Date: date(2023, 11, 10), Type: models.TypeIncome},
		{Description: "Mensalidade - Pedro Santos", Category: "Mensalidade", Amount: models.Money{Cents: 9000}, Date: date(2023, 11, 15), Type: models.TypeIncome},
		{Description: "Mensalidade - Mariana Lima", Category: "Mensalidade", Amount: models.Money{Cents: 90000}, Date: date(2023, 11, 20), Type: models.TypeIncome},
	}
	for _, tx := range transactions {
		s.AddTransaction(tx)
	}
}
