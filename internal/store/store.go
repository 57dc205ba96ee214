// Package store is the in-memory record store for students, transactions
// and registered users. It is the only mutation surface in the system: every
// write goes through one of its methods, under a single mutex, so the
// collections are always observed either pre- or post-mutation.
package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/gymflow/gymflow-golang/internal/models"
)

// ErrDuplicateEmail is returned when registering an email that already
// exists in the user set.
var ErrDuplicateEmail = errors.New("email already registered")

// Snapshot is a read-only copy of the current students and transactions,
// handed to the assistant bridge when a chat message goes out.
type Snapshot struct {
	Students     []models.Student     `json:"students"`
	Transactions []models.Transaction `json:"transactions"`
}

// Store holds the live collections. Transactions are kept newest first.
type Store struct {
	mu           sync.Mutex
	students     []models.Student
	transactions []models.Transaction
	users        []models.User
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// --- Students ---

// AddStudent assigns a fresh id and appends the student. The input's ID
// field is ignored.
func (s *Store) AddStudent(student models.Student) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	student.ID = uuid.NewString()
	s.students = append(s.students, student)
	return student
}

// UpdateStudent replaces the student with a matching id. When no record
// matches, the collection is left unchanged; that is not an error.
func (s *Store) UpdateStudent(student models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID == student.ID {
			s.students[i] = student
			return
		}
	}
}

// DeleteStudent removes the student with the given id, a no-op when absent.
// Deleting a student has no cascading effect on transactions.
func (s *Store) DeleteStudent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return
		}
	}
}

// FindStudent returns the student with the given id.
func (s *Store) FindStudent(id string) (models.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return models.Student{}, false
}

// Students returns a copy of the student collection.
func (s *Store) Students() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// SearchStudents filters by name (case-insensitive substring) or phone.
func (s *Store) SearchStudents(term string) []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]models.Student, len(s.students))
		copy(out, s.students)
		return out
	}

	var out []models.Student
	for _, st := range s.students {
		if strings.Contains(strings.ToLower(st.Name), term) || strings.Contains(st.WhatsApp, term) {
			out = append(out, st)
		}
	}
	return out
}

// --- Transactions ---

// AddTransaction assigns a fresh id and prepends the entry, so the list
// stays newest first. The input's ID field is ignored.
func (s *Store) AddTransaction(tx models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = uuid.NewString()
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	return tx
}

// DeleteTransaction removes the entry with the given id, a no-op when absent.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return
		}
	}
}

// Transactions returns a copy of the transaction list, newest first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// --- Users ---

// RegisterUser appends a user. The email must be unique within the set.
func (s *Store) RegisterUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}
	s.users = append(s.users, user)
	return nil
}

// SetUsers replaces the whole user set; used for startup hydration.
func (s *Store) SetUsers(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make([]models.User, len(users))
	copy(s.users, users)
}

// Users returns a copy of the registered-user set, order preserved.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// FindUser looks a user up by email.
func (s *Store) FindUser(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// --- Snapshot ---

// Snapshot returns a copy of the current students and transactions.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Students:     make([]models.Student, len(s.students)),
		Transactions: make([]models.Transaction, len(s.transactions)),
	}
	copy(snap.Students, s.students)
	copy(snap.Transactions, s.transactions)
	return snap
}
