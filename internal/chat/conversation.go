// Package chat owns the assistant conversation: the ordered message
// sequence, its durable mirror, and the one-send-at-a-time rule.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gymflow/gymflow-golang/internal/ai"
	"github.com/gymflow/gymflow-golang/internal/logger"
	"github.com/gymflow/gymflow-golang/internal/models"
	"github.com/gymflow/gymflow-golang/internal/storage"
	"github.com/gymflow/gymflow-golang/internal/store"
)

var (
	// ErrSendInFlight rejects a second send while one is pending; sends
	// are serialized per conversation.
	ErrSendInFlight = errors.New("a message is already being processed")

	// ErrEmptyMessage rejects blank input before anything is appended.
	ErrEmptyMessage = errors.New("empty message")
)

// SeedGreeting is the default assistant message the conversation starts
// with, and what clearing the history resets to.
const SeedGreeting = `Olá! Sou o GymFlow IA. Posso te ajudar a organizar suas finanças. Tente perguntar: "Quanto gastei esse mês?" ou "Quem está devendo?".`

// Sender is the slice of the assistant bridge the conversation needs.
type Sender interface {
	Send(ctx context.Context, message string, snapshot store.Snapshot) (string, error)
}

// Conversation holds the message sequence. A single mutex guards the slice
// and the in-flight flag; the bridge call itself runs outside the lock so
// the rest of the dashboard stays responsive while a send is pending.
type Conversation struct {
	mu       sync.Mutex
	msgs     []models.ChatMessage
	inFlight bool

	store  *store.Store
	kv     *storage.KV
	bridge Sender
}

// SeedMessage builds a fresh copy of the greeting message.
func SeedMessage() models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   SeedGreeting,
		Timestamp: time.Now().UTC(),
	}
}

// New hydrates the conversation from durable storage. A missing or corrupt
// history falls back to the single seed greeting.
func New(s *store.Store, kv *storage.KV, bridge Sender) *Conversation {
	return &Conversation{
		msgs:   kv.LoadChatHistory([]models.ChatMessage{SeedMessage()}),
		store:  s,
		kv:     kv,
		bridge: bridge,
	}
}

// Messages returns a copy of the current sequence, oldest first.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.ChatMessage, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Send appends the user's message, forwards it with a snapshot of the
// records, and appends the assistant's reply. A failed bridge call still
// produces a reply: the fixed fallback text for whatever went wrong. Once a
// send is issued its result is always applied, even if the user has
// navigated away in the meantime.
func (c *Conversation) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return models.ChatMessage{}, ErrSendInFlight
	}
	c.inFlight = true
	c.msgs = append(c.msgs, models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   text,
		Timestamp: time.Now().UTC(),
	})
	c.persistLocked()
	c.mu.Unlock()

	snapshot := c.store.Snapshot()
	replyText, err := c.bridge.Send(ctx, text, snapshot)
	if err != nil {
		replyText = ai.FallbackText(err)
	}

	reply := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAssistant,
		Content:   replyText,
		Timestamp: time.Now().UTC(),
	}

	c.mu.Lock()
	c.msgs = append(c.msgs, reply)
	c.persistLocked()
	c.inFlight = false
	c.mu.Unlock()

	return reply, nil
}

// Clear replaces the whole history with a single seed greeting and persists
// that one-element sequence.
func (c *Conversation) Clear() models.ChatMessage {
	seed := SeedMessage()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.msgs = []models.ChatMessage{seed}
	c.persistLocked()
	return seed
}

// persistLocked mirrors the sequence to storage; callers hold the mutex.
// A write failure keeps the in-memory state: losing the mirror is
// preferable to losing the conversation.
func (c *Conversation) persistLocked() {
	if err := c.kv.SaveChatHistory(c.msgs); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("failed to mirror chat history")
	}
}
