package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow-golang/internal/auth"
)

// --- User Registration ---

// RegisterInput is the registration form. Note there is deliberately no
// email-format rule: any non-empty string works as a key, it only has to be
// unique.
type RegisterInput struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	AcademyName string `json:"academyName" binding:"required"`
}

// Register creates an account and logs it in.
// POST /v1/auth/register
func (h *Handlers) Register(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Run the gate ---
	user, err := h.Auth.Register(input.Email, input.Password, input.AcademyName)
	switch {
	case errors.Is(err, auth.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "Este e-mail já está cadastrado. Faça login."})
		return
	case errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": "A senha deve ter pelo menos 6 caracteres."})
		return
	case err != nil:
		h.Log.Error().Err(err).Msg("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	// 3. --- Registered and logged in ---
	c.JSON(http.StatusCreated, gin.H{"user": user.Public()})
}

// --- Login / Logout ---

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates the credentials against the registered set.
// POST /v1/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Auth.Login(input.Email, input.Password)
	switch {
	case errors.Is(err, auth.ErrUnknownEmail):
		// Not a hard failure: the frontend shows the message for a
		// moment and then moves to the registration screen.
		c.JSON(http.StatusNotFound, gin.H{
			"redirect": "register",
			"message":  fmt.Sprintf("O e-mail %s não foi encontrado. Redirecionando para o cadastro...", input.Email),
		})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha incorreta."})
		return
	case err != nil:
		h.Log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

// Logout clears the session and the persisted pointer.
// POST /v1/auth/logout
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.Auth.Logout(); err != nil {
		h.Log.Error().Err(err).Msg("failed to clear persisted session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the current session's user, when authenticated.
// GET /v1/auth/me
func (h *Handlers) Me(c *gin.Context) {
	user, ok := h.Auth.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
