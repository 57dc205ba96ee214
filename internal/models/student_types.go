package models

import (
	"errors"
	"strings"
	"unicode"
)

// Validation errors shared across the domain models.
var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyName       = errors.New("empty name")
	ErrInvalidWhatsApp = errors.New("whatsapp must contain digits only")
	ErrInvalidPlan     = errors.New("invalid plan")
	ErrInvalidStatus   = errors.New("invalid status")
)

// Plan is the membership plan a student is enrolled in.
// The set is closed: anything outside it is rejected at the form boundary.
type Plan string

const (
	PlanMonthly    Plan = "Mensal"
	PlanQuarterly  Plan = "Trimestral"
	PlanSemiannual Plan = "Semestral"
	PlanAnnual     Plan = "Anual"
)

// ValidPlan reports whether p is one of the four membership plans.
func ValidPlan(p Plan) bool {
	switch p {
	case PlanMonthly, PlanQuarterly, PlanSemiannual, PlanAnnual:
		return true
	}
	return false
}

// StudentStatus is operator-set only. The system never derives 'overdue'
// from the due date; a payment confirmation or manual action moves it.
type StudentStatus string

const (
	StatusActive   StudentStatus = "active"
	StatusOverdue  StudentStatus = "overdue"
	StatusInactive StudentStatus = "inactive"
)

// ValidStudentStatus reports whether s is a known status.
func ValidStudentStatus(s StudentStatus) bool {
	switch s {
	case StatusActive, StatusOverdue, StatusInactive:
		return true
	}
	return false
}

// Student is a gym member and their membership terms.
type Student struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	WhatsApp    string        `json:"whatsapp"`
	Plan        Plan          `json:"plan"`
	Value       Money         `json:"value"`
	DueDate     Date          `json:"dueDate"`
	Status      StudentStatus `json:"status"`
	DaysOverdue int           `json:"daysOverdue,omitempty"`
}

// Validate checks the closed-set and format invariants on a student record.
func (s Student) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.WhatsApp == "" {
		return ErrInvalidWhatsApp
	}
	for _, r := range s.WhatsApp {
		if !unicode.IsDigit(r) {
			return ErrInvalidWhatsApp
		}
	}
	if !ValidPlan(s.Plan) {
		return ErrInvalidPlan
	}
	if s.Value.Cents < 0 {
		return ErrInvalidAmount
	}
	if !ValidStudentStatus(s.Status) {
		return ErrInvalidStatus
	}
	return nil
}
