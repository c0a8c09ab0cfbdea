package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementRound(t *testing.T) {
	tests := []struct {
		temp float64
		want int
	}{
		{71.4, 71},
		{71.5, 72},
		{71.9, 72},
		{72.0, 72},
		{-0.4, 0},
		{-0.5, -1},
		{-3.6, -4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SettlementRound(tt.temp), "SettlementRound(%v)", tt.temp)
	}
}

func TestStaticSourceBoard(t *testing.T) {
	s := NewStaticSource()
	m, err := s.TempBrackets(context.Background(), "nyc")
	require.NoError(t, err)

	assert.Equal(t, "nyc", m.CityID)
	require.Len(t, m.Brackets, 7, "five interior brackets plus two tails")

	// Prices on the board sum near but not exactly 100; each bracket's yes
	// and no legs always complement.
	for _, b := range m.Brackets {
		assert.Equal(t, 100, b.YesPrice+b.NoPrice, "bracket %s", b.Label)
	}

	// Every integer temperature lands in exactly one bracket.
	for temp := 50; temp <= 110; temp++ {
		hits := 0
		for _, b := range m.Brackets {
			if b.Contains(temp) {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "temp %d should land in exactly one bracket", temp)
	}
}

func TestMarketLeader(t *testing.T) {
	s := NewStaticSource()
	m, err := s.TempBrackets(context.Background(), "chi")
	require.NoError(t, err)

	leader, ok := m.Leader()
	require.True(t, ok)
	for _, b := range m.Brackets {
		assert.LessOrEqual(t, b.YesPrice, leader.YesPrice)
	}

	empty := &Market{}
	_, ok = empty.Leader()
	assert.False(t, ok)
}

func TestStaticSourceUnknownCity(t *testing.T) {
	s := NewStaticSource()
	_, err := s.TempBrackets(context.Background(), "atlantis")
	assert.Error(t, err)
}
