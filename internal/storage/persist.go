package storage

import (
	"encoding/json"

	"github.com/gymflow/gymflow-golang/internal/logger"
	"github.com/gymflow/gymflow-golang/internal/models"
)

// Storage keys. Writers always serialize the complete collection under one
// key; there are no partial updates.
const (
	KeyUsers       = "users"
	KeySession     = "session"
	KeyChatHistory = "chat_history"
)

// LoadUsers hydrates the registered-user set. An absent key yields an empty
// set; malformed JSON is logged and also yields an empty set, never an error.
func (k *KV) LoadUsers() []models.User {
	raw, ok, err := k.Get(KeyUsers)
	if err != nil || !ok {
		if err != nil {
			log := logger.Get()
			log.Warn().Err(err).Msg("failed to read stored users")
		}
		return nil
	}
	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("stored users are corrupt, starting with empty set")
		return nil
	}
	return users
}

// SaveUsers mirrors the whole registered-user set to durable storage.
func (k *KV) SaveUsers(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return k.Set(KeyUsers, string(raw))
}

// LoadSession returns the persisted logged-in email, or "" when none.
func (k *KV) LoadSession() string {
	email, _, err := k.Get(KeySession)
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("failed to read stored session")
		return ""
	}
	return email
}

// SaveSession stores the logged-in email as the session pointer.
func (k *KV) SaveSession(email string) error {
	return k.Set(KeySession, email)
}

// ClearSession removes the session pointer.
func (k *KV) ClearSession() error {
	return k.Delete(KeySession)
}

// LoadChatHistory hydrates the chat message sequence. Timestamps are parsed
// back from RFC3339 by the JSON decoder; when the key is absent, empty, or
// fails to parse, the fallback sequence (the seed greeting) is returned
// instead of an error.
func (k *KV) LoadChatHistory(fallback []models.ChatMessage) []models.ChatMessage {
	raw, ok, err := k.Get(KeyChatHistory)
	if err != nil || !ok || raw == "" {
		if err != nil {
			log := logger.Get()
			log.Warn().Err(err).Msg("failed to read stored chat history")
		}
		return fallback
	}
	var msgs []models.ChatMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("stored chat history is corrupt, falling back to greeting")
		return fallback
	}
	if len(msgs) == 0 {
		return fallback
	}
	return msgs
}

// SaveChatHistory mirrors the whole message sequence to durable storage.
func (k *KV) SaveChatHistory(msgs []models.ChatMessage) error {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	return k.Set(KeyChatHistory, string(raw))
}
