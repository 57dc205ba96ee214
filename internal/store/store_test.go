package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymflow/gymflow-golang/internal/models"
)

func newStudent(name string) models.Student {
	return models.Student{
		Name:     name,
		WhatsApp: "11999999999",
		Plan:     models.PlanMonthly,
		Value:    models.Money{Cents: 9000},
		Status:   models.StatusActive,
	}
}

func newTransaction(desc string) models.Transaction {
	return models.Transaction{
		Description: desc,
		Category:    "Outros",
		Amount:      models.Money{Cents: 100},
		Type:        models.TypeExpense,
	}
}

func TestAddStudentAssignsFreshID(t *testing.T) {
	s := New()

	a := s.AddStudent(newStudent("Carlos"))
	b := s.AddStudent(newStudent("Ana"))

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpdateStudentMissingIDIsNoOp(t *testing.T) {
	s := New()
	created := s.AddStudent(newStudent("Carlos"))

	ghost := newStudent("Fantasma")
	ghost.ID = "does-not-exist"
	s.UpdateStudent(ghost)

	students := s.Students()
	require.Len(t, students, 1)
	assert.Equal(t, created, students[0])
}

func TestUpdateStudentReplacesByID(t *testing.T) {
	s := New()
	created := s.AddStudent(newStudent("Carlos"))

	created.Status = models.StatusOverdue
	created.DaysOverdue = 5
	s.UpdateStudent(created)

	got, ok := s.FindStudent(created.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusOverdue, got.Status)
	assert.Equal(t, 5, got.DaysOverdue)
}

func TestDeleteStudentMissingIDIsNoOp(t *testing.T) {
	s := New()
	s.AddStudent(newStudent("Carlos"))

	s.DeleteStudent("does-not-exist")
	assert.Len(t, s.Students(), 1)
}

func TestDeleteStudentDoesNotCascade(t *testing.T) {
	s := New()
	st := s.AddStudent(newStudent("Carlos"))
	s.AddTransaction(newTransaction("Mensalidade - Carlos"))

	s.DeleteStudent(st.ID)

	assert.Empty(t, s.Students())
	assert.Len(t, s.Transactions(), 1)
}

func TestAddTransactionPrependsNewestFirst(t *testing.T) {
	s := New()
	s.AddTransaction(newTransaction("first"))
	s.AddTransaction(newTransaction("second"))

	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "second", txs[0].Description)
	assert.Equal(t, "first", txs[1].Description)
}

func TestDeleteTransactionMissingIDIsNoOp(t *testing.T) {
	s := New()
	s.AddTransaction(newTransaction("first"))

	s.DeleteTransaction("does-not-exist")
	assert.Len(t, s.Transactions(), 1)
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	s := New()
	require.NoError(t, s.RegisterUser(models.User{Email: "a@x.com", Password: "secret1"}))

	err := s.RegisterUser(models.User{Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Len(t, s.Users(), 1)
}

func TestSearchStudents(t *testing.T) {
	s := New()
	s.AddStudent(newStudent("Carlos Silva"))
	ana := newStudent("Ana Souza")
	ana.WhatsApp = "11988888888"
	s.AddStudent(ana)

	assert.Len(t, s.SearchStudents("carlos"), 1)
	assert.Len(t, s.SearchStudents("1198"), 1)
	assert.Len(t, s.SearchStudents(""), 2)
	assert.Empty(t, s.SearchStudents("pedro"))
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.AddStudent(newStudent("Carlos"))
	s.AddTransaction(newTransaction("first"))

	snap := s.Snapshot()
	snap.Students[0].Name = "changed"
	snap.Transactions[0].Description = "changed"

	assert.Equal(t, "Carlos", s.Students()[0].Name)
	assert.Equal(t, "first", s.Transactions()[0].Description)
}

func TestSeedOnlyFillsEmptyStore(t *testing.T) {
	s := New()
	s.Seed()
	students := len(s.Students())
	txs := len(s.Transactions())
	require.Greater(t, students, 0)
	require.Greater(t, txs, 0)

	// Seeding again must not duplicate anything.
	s.Seed()
	assert.Len(t, s.Students(), students)
	assert.Len(t, s.Transactions(), txs)
}
