// Package market defines prediction-market temperature bracket data and the
// source interface the dashboard consumes. Live exchange clients are
// external; the static source keeps the brackets widget populated offline.
package market

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Bracket is one temperature range contract. Prices are in cents.
type Bracket struct {
	Label    string // e.g. "72-73°"
	FloorF   int    // inclusive lower bound; math.MinInt32 for open-ended
	CapF     int    // inclusive upper bound; math.MaxInt32 for open-ended
	YesPrice int
	NoPrice  int
	Volume   int
}

// Contains reports whether a settled temperature lands in this bracket.
func (b Bracket) Contains(tempF int) bool {
	return tempF >= b.FloorF && tempF <= b.CapF
}

// Market is the day's bracket board for one city.
type Market struct {
	CityID    string
	Date      time.Time
	Brackets  []Bracket
	LastTrade time.Time
}

// Leader returns the bracket with the highest yes price, or false when the
// board is empty.
func (m *Market) Leader() (Bracket, bool) {
	if len(m.Brackets) == 0 {
		return Bracket{}, false
	}
	best := m.Brackets[0]
	for _, b := range m.Brackets[1:] {
		if b.YesPrice > best.YesPrice {
			best = b
		}
	}
	return best, true
}

// SettlementRound rounds an observed temperature the way the exchange
// settles: half-degrees round away from zero to the nearest whole degree.
func SettlementRound(tempF float64) int {
	if tempF >= 0 {
		return int(math.Floor(tempF + 0.5))
	}
	return int(math.Ceil(tempF - 0.5))
}

// Source supplies bracket boards. Implementations may block on the network;
// they must honor ctx cancellation.
type Source interface {
	TempBrackets(ctx context.Context, cityID string) (*Market, error)
}

// StaticSource serves a canned board derived from each city's canned
// observation, for offline use and tests.
type StaticSource struct{}

// NewStaticSource returns the built-in offline source.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

var staticCenters = map[string]int{
	"nyc": 77,
	"chi": 71,
	"mia": 92,
	"aus": 99,
	"den": 84,
	"lax": 79,
	"phl": 78,
}

// TempBrackets returns the canned bracket board for the city.
func (s *StaticSource) TempBrackets(_ context.Context, cityID string) (*Market, error) {
	center, ok := staticCenters[cityID]
	if !ok {
		return nil, fmt.Errorf("no bracket board for city %q", cityID)
	}

	now := time.Now()
	m := &Market{
		CityID:    cityID,
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		LastTrade: now.Add(-90 * time.Second),
	}

	// Five two-degree brackets bookended by open-ended tails, priced as a
	// rough bell around the canned center.
	prices := []int{4, 11, 27, 34, 15, 6, 3}
	lo := center - 5
	m.Brackets = append(m.Brackets, Bracket{
		Label:    fmt.Sprintf("%d° or below", lo-1),
		FloorF:   math.MinInt32,
		CapF:     lo - 1,
		YesPrice: prices[0],
		NoPrice:  100 - prices[0],
		Volume:   1800,
	})
	for i := 0; i < 5; i++ {
		floor := lo + i*2
		cap := floor + 1
		m.Brackets = append(m.Brackets, Bracket{
			Label:    fmt.Sprintf("%d-%d°", floor, cap),
			FloorF:   floor,
			CapF:     cap,
			YesPrice: prices[i+1],
			NoPrice:  100 - prices[i+1],
			Volume:   5200 - i*400,
		})
	}
	hi := lo + 10
	m.Brackets = append(m.Brackets, Bracket{
		Label:    fmt.Sprintf("%d° or above", hi),
		FloorF:   hi,
		CapF:     math.MaxInt32,
		YesPrice: prices[6],
		NoPrice:  100 - prices[6],
		Volume:   1400,
	})

	return m, nil
}
