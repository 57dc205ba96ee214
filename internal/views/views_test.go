package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigate(t *testing.T) {
	r := NewRouter(Landing)
	assert.Equal(t, Landing, r.Current())

	assert.NoError(t, r.Navigate(Students))
	assert.Equal(t, Students, r.Current())

	// Unknown names are rejected and leave the state alone.
	assert.ErrorIs(t, r.Navigate("settings"), ErrUnknownView)
	assert.Equal(t, Students, r.Current())
}

func TestNewRouterDefaultsToLanding(t *testing.T) {
	assert.Equal(t, Landing, NewRouter("nonsense").Current())
	assert.Equal(t, Dashboard, NewRouter(Dashboard).Current())
}

func TestValid(t *testing.T) {
	for _, v := range []View{Landing, Login, Register, Dashboard, Students, Expenses, Assistant} {
		assert.True(t, Valid(v), string(v))
	}
	assert.False(t, Valid(""))
	assert.False(t, Valid("admin"))
}
