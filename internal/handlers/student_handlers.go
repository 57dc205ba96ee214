package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow-golang/internal/models"
)

// StudentInput is the registration/edit form for a student. The status
// defaults to active on creation; the value may legitimately be zero.
type StudentInput struct {
	Name        string               `json:"name" binding:"required"`
	WhatsApp    string               `json:"whatsapp" binding:"required"`
	Plan        models.Plan          `json:"plan" binding:"required"`
	Value       models.Money         `json:"value"`
	DueDate     models.Date          `json:"dueDate"`
	Status      models.StudentStatus `json:"status"`
	DaysOverdue int                  `json:"daysOverdue"`
}

// ListStudents returns all students, optionally filtered by ?q= over name
// and phone.
// GET /v1/students
func (h *Handlers) ListStudents(c *gin.Context) {
	students := h.Store.SearchStudents(c.Query("q"))
	if students == nil {
		students = []models.Student{}
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// CreateStudent registers a new student.
// POST /v1/students
func (h *Handlers) CreateStudent(c *gin.Context) {
	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student := models.Student{
		Name:        input.Name,
		WhatsApp:    input.WhatsApp,
		Plan:        input.Plan,
		Value:       input.Value,
		DueDate:     input.DueDate,
		Status:      input.Status,
		DaysOverdue: input.DaysOverdue,
	}
	if student.Status == "" {
		student.Status = models.StatusActive
	}
	if err := student.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student = h.Store.AddStudent(student)
	c.JSON(http.StatusCreated, gin.H{"student": student})
}

// UpdateStudent replaces the student with the given id. The store leaves
// the collection untouched for an unknown id; here that surfaces as a 404
// so the edit form knows nothing was saved.
// PUT /v1/students/:id
func (h *Handlers) UpdateStudent(c *gin.Context) {
	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, ok := h.Store.FindStudent(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	student := models.Student{
		ID:          existing.ID,
		Name:        input.Name,
		WhatsApp:    input.WhatsApp,
		Plan:        input.Plan,
		Value:       input.Value,
		DueDate:     input.DueDate,
		Status:      input.Status,
		DaysOverdue: input.DaysOverdue,
	}
	// The edit form may omit the status; keep the current one then.
	if student.Status == "" {
		student.Status = existing.Status
		student.DaysOverdue = existing.DaysOverdue
	}
	if err := student.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Store.UpdateStudent(student)
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// StatusInput is the explicit operator action that moves a student between
// statuses (payment confirmed, marked overdue, deactivated). This is the
// only way a student becomes overdue: the system never derives it from the
// due date.
type StatusInput struct {
	Status      models.StudentStatus `json:"status" binding:"required"`
	DaysOverdue int                  `json:"daysOverdue"`
}

// UpdateStudentStatus applies an operator status change.
// PATCH /v1/students/:id/status
func (h *Handlers) UpdateStudentStatus(c *gin.Context) {
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStudentStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidStatus.Error()})
		return
	}

	student, ok := h.Store.FindStudent(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	student.Status = input.Status
	student.DaysOverdue = 0
	if input.Status == models.StatusOverdue {
		student.DaysOverdue = input.DaysOverdue
	}

	h.Store.UpdateStudent(student)
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// DeleteStudent removes the student. Deleting an absent id is a no-op, and
// there is no cascading effect on transactions either way.
// DELETE /v1/students/:id
func (h *Handlers) DeleteStudent(c *gin.Context) {
	h.Store.DeleteStudent(c.Param("id"))
	c.Status(http.StatusNoContent)
}
