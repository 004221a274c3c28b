package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildListing(t *testing.T) {
	now := time.Now()
	item := &Item{ID: "i1", OpeningMinPrice: d("50"), QuantityTotal: 10, QuantityCommitted: 4}
	three, twenty := 3, 20

	tests := []struct {
		name      string
		settings  ReofferSettings
		wantQty   int
		wantPrice string
	}{
		{name: "defaults", settings: DefaultReofferSettings("i1"), wantQty: 6, wantPrice: "50"},
		{name: "override within remaining", settings: ReofferSettings{Participate: true, QuantityOverride: &three}, wantQty: 3, wantPrice: "50"},
		{name: "override above remaining ignored", settings: ReofferSettings{Participate: true, QuantityOverride: &twenty}, wantQty: 6, wantPrice: "50"},
		{name: "price below minimum ignored", settings: ReofferSettings{Participate: true, Price: ptr(d("30"))}, wantQty: 6, wantPrice: "50"},
		{name: "price below minimum allowed", settings: ReofferSettings{Participate: true, Price: ptr(d("30")), AllowBelowMin: true}, wantQty: 6, wantPrice: "30"},
		{name: "price above minimum", settings: ReofferSettings{Participate: true, Price: ptr(d("65"))}, wantQty: 6, wantPrice: "65"},
		{name: "not participating", settings: ReofferSettings{}, wantQty: 0, wantPrice: "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := BuildListing(item, tt.settings, now)
			assert.Equal(t, tt.wantQty, l.QuantityOffered)
			assert.Equal(t, tt.wantQty, l.QuantityRemaining)
			assert.Truef(t, l.Price.Equal(d(tt.wantPrice)), "price %s", l.Price)
			assert.Equal(t, tt.settings.Participate && tt.wantQty > 0, l.Visible())
		})
	}
}

func TestBuildStatement_OrdersAndSums(t *testing.T) {
	at := time.Now()
	lines := []Commitment{
		{ID: "b", Quantity: 1, Amount: d("10"), CreatedAt: at},
		{ID: "a", Quantity: 3, Amount: d("2.50"), CreatedAt: at},
		{ID: "c", Quantity: 1, Amount: d("100"), CreatedAt: at.Add(-time.Minute)},
	}

	st := BuildStatement("u1", lines)

	assert.Equal(t, []string{"c", "a", "b"}, []string{st.Lines[0].ID, st.Lines[1].ID, st.Lines[2].ID})
	assert.True(t, st.Total.Equal(d("117.5")))
	assert.Equal(t, "b", lines[0].ID)
}
