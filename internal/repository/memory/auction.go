package memory

import (
	"context"
	"sort"
	"time"

	"github.com/oryweaver/auction/internal/domain"
)

type AuctionRepo struct {
	s *Store
}

func (r *AuctionRepo) Create(_ context.Context, a *domain.Auction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.auctions[a.ID] = &auctionRow{auction: *a}
	return nil
}

func (r *AuctionRepo) GetByID(_ context.Context, id string) (*domain.Auction, error) {
	row, ok := r.s.auctionRow(id)
	if !ok {
		return nil, domain.ErrAuctionNotFound
	}
	row.phaseMu.RLock()
	defer row.phaseMu.RUnlock()
	a := row.auction
	return &a, nil
}

func (r *AuctionRepo) ListActive(_ context.Context) ([]*domain.Auction, error) {
	r.s.mu.RLock()
	rows := make([]*auctionRow, 0, len(r.s.auctions))
	for _, row := range r.s.auctions {
		rows = append(rows, row)
	}
	r.s.mu.RUnlock()

	var out []*domain.Auction
	for _, row := range rows {
		row.phaseMu.RLock()
		a := row.auction
		row.phaseMu.RUnlock()
		if a.Phase != domain.PhaseSettlement {
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *AuctionRepo) CompareAndSwapPhase(_ context.Context, id string, from, to domain.Phase) (bool, error) {
	row, ok := r.s.auctionRow(id)
	if !ok {
		return false, domain.ErrAuctionNotFound
	}
	row.phaseMu.Lock()
	defer row.phaseMu.Unlock()
	if row.auction.Phase != from {
		return false, nil
	}
	row.auction.Phase = to
	row.auction.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *AuctionRepo) RegisterBidder(_ context.Context, auctionID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.auctions[auctionID]
	if !ok {
		return domain.ErrAuctionNotFound
	}
	for _, b := range row.bidders {
		if b == userID {
			return nil
		}
	}
	row.bidders = append(row.bidders, userID)
	return nil
}

func (r *AuctionRepo) ListBidders(_ context.Context, auctionID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.auctions[auctionID]
	if !ok {
		return nil, domain.ErrAuctionNotFound
	}
	return append([]string(nil), row.bidders...), nil
}
