package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentsFromAmount(t *testing.T) {
	tests := []struct {
		amount float64
		cents  int64
	}{
		{0, 0},
		{1, 100},
		{100.01, 10001},
		{79.99, 7999},
		{0.1, 10},
		{19.99, 1999},
		{-5.25, -525},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.cents, centsFromAmount(tt.amount), "amount %v", tt.amount)
	}
}

func TestAmountFromCents(t *testing.T) {
	assert.Equal(t, 100.01, amountFromCents(10001))
	assert.Equal(t, 0.0, amountFromCents(0))
	assert.Equal(t, -25.0, amountFromCents(-2500))
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("2024-02-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseDate("15/02/2024")
	require.Error(t, err)
	assert.ErrorIs(t, err, errValidation)
}
