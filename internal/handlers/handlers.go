package handlers

import (
	"github.com/rs/zerolog"

	"github.com/gymflow/gymflow-golang/internal/auth"
	"github.com/gymflow/gymflow-golang/internal/chat"
	"github.com/gymflow/gymflow-golang/internal/store"
	"github.com/gymflow/gymflow-golang/internal/views"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store *store.Store       // In-memory record store (students, transactions, users)
	Auth  *auth.Gate         // Login/register/logout state machine
	Chat  *chat.Conversation // Assistant conversation + history
	Views *views.Router      // Current top-level screen
	Log   zerolog.Logger
}
