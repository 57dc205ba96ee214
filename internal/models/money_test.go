package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"dot separator", "12.34", 1234, false},
		{"comma separator", "12,34", 1234, false},
		{"integer only", "90", 9000, false},
		{"single fraction digit", "12.3", 1230, false},
		{"third digit rounds down", "12.344", 1234, false},
		{"third digit rounds up", "12.346", 1235, false},
		{"zero allowed", "0", 0, false},
		{"leading dot", ".50", 50, false},
		{"whitespace trimmed", " 12.34 ", 1234, false},
		{"empty", "", 0, true},
		{"negative rejected", "-1.00", 0, true},
		{"plus sign rejected", "+1.00", 0, true},
		{"two dots", "1.2.3", 0, true},
		{"letters", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimalToCents(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 90.00", Money{Cents: 9000}.FormatBRL())
	assert.Equal(t, "R$ 0.05", Money{Cents: 5}.FormatBRL())
	assert.Equal(t, "R$ 2500.00", Money{Cents: 250000}.FormatBRL())
	assert.Equal(t, "R$ -15.50", Money{Cents: -1550}.FormatBRL())
	assert.Equal(t, "R$ -0.50", Money{Cents: -50}.FormatBRL())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(Money{Cents: 9050})
	require.NoError(t, err)
	assert.Equal(t, "90.50", string(raw))

	var m Money
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, int64(9050), m.Cents)

	// Quoted decimals are accepted too.
	require.NoError(t, json.Unmarshal([]byte(`"12,34"`), &m))
	assert.Equal(t, int64(1234), m.Cents)
}

// Negative amounts show up in derived figures (profit when expenses exceed
// revenue) and must marshal as valid JSON numbers.
func TestMoneyJSONNegative(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{-1550, "-15.50"},
		{-50, "-0.50"},
		{-100, "-1.00"},
	}

	for _, tt := range tests {
		raw, err := json.Marshal(Money{Cents: tt.cents})
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(raw))

		var m Money
		require.NoError(t, json.Unmarshal(raw, &m))
		assert.Equal(t, tt.cents, m.Cents)
	}
}
