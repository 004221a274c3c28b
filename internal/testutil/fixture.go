package testutil

import (
	"time"

	"github.com/oryweaver/auction/internal/domain"
)

// Base is the reference instant used by fixtures.
var Base = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

// Boundaries returns a schedule where each phase lasts one day from Base.
// Reoffer opens the instant bidding closes.
func Boundaries() domain.Boundaries {
	day := 24 * time.Hour
	return domain.Boundaries{
		RegistrationOpen: Base.Add(day),
		CatalogPublish:   Base.Add(2 * day),
		BiddingOpen:      Base.Add(3 * day),
		BiddingClose:     Base.Add(4 * day),
		ReofferOpen:      Base.Add(4 * day),
		ReofferClose:     Base.Add(5 * day),
		SettlementOpen:   Base.Add(6 * day),
	}
}

// At returns the middle of the day during which phase holds for Boundaries().
func At(phase domain.Phase) time.Time {
	b := Boundaries()
	half := 12 * time.Hour
	switch phase {
	case domain.PhaseRegistration:
		return b.RegistrationOpen.Add(half)
	case domain.PhaseCatalog:
		return b.CatalogPublish.Add(half)
	case domain.PhaseBidding:
		return b.BiddingOpen.Add(half)
	case domain.PhaseReoffer:
		return b.ReofferOpen.Add(half)
	case domain.PhaseClosed:
		return b.ReofferClose.Add(half)
	case domain.PhaseSettlement:
		return b.SettlementOpen.Add(half)
	}
	return Base
}
