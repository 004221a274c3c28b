package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

func lot(opening, increment string) *Item {
	it := &Item{ID: "i1", Kind: ItemKindCompetitive, OpeningMinPrice: d(opening), QuantityTotal: 1}
	if increment != "" {
		it.Increment = ptr(d(increment))
	}
	return it
}

func TestComputeStandings_Empty(t *testing.T) {
	st := ComputeStandings(lot("100", "10"), nil)

	assert.Empty(t, st.Leader)
	assert.True(t, st.CurrentPrice.Equal(d("100")))
	assert.True(t, st.MinNextBid(lot("100", "10")).Equal(d("100")))
}

func TestComputeStandings_SingleBidderPaysOpening(t *testing.T) {
	at := time.Now()
	st := ComputeStandings(lot("100", "10"), []Bid{
		{BidderID: "a", Amount: d("100"), MaxProxyAmount: ptr(d("500")), CreatedAt: at, Seq: 1},
	})

	assert.Equal(t, "a", st.Leader)
	assert.True(t, st.CurrentPrice.Equal(d("100")))
}

func TestComputeStandings_RunnerUpPlusIncrement(t *testing.T) {
	at := time.Now()
	item := lot("100", "10")
	st := ComputeStandings(item, []Bid{
		{BidderID: "b", Amount: d("100"), MaxProxyAmount: ptr(d("150")), CreatedAt: at, Seq: 1},
		{BidderID: "a", Amount: d("110"), MaxProxyAmount: ptr(d("200")), CreatedAt: at.Add(time.Second), Seq: 2},
	})

	assert.Equal(t, "a", st.Leader)
	assert.True(t, st.CurrentPrice.Equal(d("160")))
	assert.True(t, st.LeaderMax.Equal(d("200")))
	m, ok := st.MaxOf("b")
	assert.True(t, ok)
	assert.True(t, m.Equal(d("150")))
}

func TestComputeStandings_OwnHigherBidKeepsOriginalTime(t *testing.T) {
	at := time.Now()
	item := lot("100", "10")
	st := ComputeStandings(item, []Bid{
		{BidderID: "a", Amount: d("200"), CreatedAt: at, Seq: 1},
		{BidderID: "b", Amount: d("200"), CreatedAt: at.Add(time.Second), Seq: 2},
		// a lower follow-up from a must not move a's tie-break time
		{BidderID: "a", Amount: d("120"), CreatedAt: at.Add(2 * time.Second), Seq: 3},
	})

	assert.Equal(t, "a", st.Leader)
	assert.True(t, st.CurrentPrice.Equal(d("200")))
}

func TestStandardIncrement(t *testing.T) {
	tests := map[string]string{
		"0":      "1",
		"24.99":  "1",
		"25":     "5",
		"99":     "5",
		"100":    "10",
		"250":    "25",
		"500":    "50",
		"999":    "50",
		"1000":   "100",
		"250000": "100",
	}
	for price, want := range tests {
		assert.Truef(t, StandardIncrement(d(price)).Equal(d(want)), "price %s", price)
	}
}
