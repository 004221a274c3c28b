package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oryweaver/auction/internal/domain"
	"github.com/oryweaver/auction/internal/service/ports"
)

type ItemRepo struct {
	s *Store
}

func (r *ItemRepo) Create(_ context.Context, item *domain.Item, settings *domain.ReofferSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.auctions[item.AuctionID]
	if !ok {
		return domain.ErrAuctionNotFound
	}
	st := itemState{item: *item, settings: domain.DefaultReofferSettings(item.ID)}
	if settings != nil {
		st.settings = *settings
	}
	r.s.items[item.ID] = &itemRow{state: st}
	a.items = append(a.items, item.ID)
	return nil
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (*domain.Item, error) {
	row, ok := r.s.itemRow(id)
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	it := row.state.item
	return &it, nil
}

func (r *ItemRepo) ListByAuction(_ context.Context, auctionID string) ([]*domain.Item, error) {
	rows := r.s.itemRows(auctionID)
	out := make([]*domain.Item, 0, len(rows))
	for _, row := range rows {
		row.mu.Lock()
		it := row.state.item
		row.mu.Unlock()
		out = append(out, &it)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ItemRepo) GetSignup(_ context.Context, id string) (*domain.Signup, error) {
	r.s.mu.RLock()
	itemID, ok := r.s.signups[id]
	row := r.s.items[itemID]
	r.s.mu.RUnlock()
	if !ok || row == nil {
		return nil, domain.ErrSignupNotFound
	}

	row.mu.Lock()
	defer row.mu.Unlock()
	for _, su := range row.state.signups {
		if su.ID == id {
			return &su, nil
		}
	}
	return nil, domain.ErrSignupNotFound
}

func (r *ItemRepo) ListListings(_ context.Context, auctionID string) ([]*domain.ReofferListing, error) {
	var out []*domain.ReofferListing
	for _, row := range r.s.itemRows(auctionID) {
		row.mu.Lock()
		if l := row.state.listing; l != nil {
			cp := *l
			out = append(out, &cp)
		}
		row.mu.Unlock()
	}
	return out, nil
}

func (r *ItemRepo) Atomic(ctx context.Context, itemID string, fn func(tx ports.ItemTx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	row, ok := r.s.itemRow(itemID)
	if !ok {
		return domain.ErrItemNotFound
	}
	row.mu.Lock()
	defer row.mu.Unlock()

	arow, ok := r.s.auctionRow(row.state.item.AuctionID)
	if !ok {
		return domain.ErrAuctionNotFound
	}
	arow.phaseMu.RLock()
	defer arow.phaseMu.RUnlock()

	tx := &itemTx{
		store:   r.s,
		auction: arow.auction,
		state:   row.state.clone(),
	}
	if err := fn(tx); err != nil {
		return err
	}

	row.state = tx.state
	if len(tx.newSignups) > 0 {
		r.s.mu.Lock()
		for _, id := range tx.newSignups {
			r.s.signups[id] = itemID
		}
		r.s.mu.Unlock()
	}
	return nil
}

func (r *ItemRepo) Freeze(_ context.Context, itemID, reason string) error {
	return r.setFrozen(itemID, true, reason)
}

func (r *ItemRepo) Unfreeze(_ context.Context, itemID string) error {
	return r.setFrozen(itemID, false, "")
}

func (r *ItemRepo) setFrozen(itemID string, frozen bool, reason string) error {
	row, ok := r.s.itemRow(itemID)
	if !ok {
		return domain.ErrItemNotFound
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	row.state.item.Frozen = frozen
	row.state.item.FrozenReason = reason
	row.state.item.UpdatedAt = time.Now().UTC()
	return nil
}

// itemTx stages writes on a private copy of the item state; Atomic swaps it
// in only when the callback succeeds.
type itemTx struct {
	store      *Store
	auction    domain.Auction
	state      itemState
	newSignups []string
}

func (t *itemTx) Auction() *domain.Auction { return &t.auction }
func (t *itemTx) Item() *domain.Item       { return &t.state.item }

func (t *itemTx) SetCommitted(_ context.Context, committed int) error {
	t.state.item.QuantityCommitted = committed
	t.state.item.UpdatedAt = time.Now().UTC()
	return nil
}

func (t *itemTx) SetStatus(_ context.Context, status domain.ItemStatus) error {
	t.state.item.Status = status
	t.state.item.UpdatedAt = time.Now().UTC()
	return nil
}

func (t *itemTx) Bids(_ context.Context) ([]domain.Bid, error) {
	return append([]domain.Bid(nil), t.state.bids...), nil
}

func (t *itemTx) BidByKey(_ context.Context, bidderID, key string) (*domain.Bid, error) {
	for _, b := range t.state.bids {
		if b.BidderID == bidderID && b.IdempotencyKey == key {
			return &b, nil
		}
	}
	return nil, nil
}

func (t *itemTx) InsertBid(_ context.Context, b *domain.Bid) error {
	b.Seq = t.store.nextSeq()
	t.state.bids = append(t.state.bids, *b)
	return nil
}

func (t *itemTx) Winner(_ context.Context) (*domain.Winner, error) {
	if t.state.winner == nil {
		return nil, nil
	}
	w := *t.state.winner
	return &w, nil
}

func (t *itemTx) InsertWinner(_ context.Context, w *domain.Winner) error {
	if t.state.winner != nil {
		return fmt.Errorf("%w: item already has a winner", domain.ErrConflict)
	}
	cp := *w
	t.state.winner = &cp
	return nil
}

func (t *itemTx) Signups(_ context.Context) ([]domain.Signup, error) {
	return append([]domain.Signup(nil), t.state.signups...), nil
}

func (t *itemTx) InsertSignup(_ context.Context, su *domain.Signup) error {
	su.Seq = t.store.nextSeq()
	t.state.signups = append(t.state.signups, *su)
	t.newSignups = append(t.newSignups, su.ID)
	return nil
}

func (t *itemTx) UpdateSignup(_ context.Context, su *domain.Signup) error {
	for i := range t.state.signups {
		if t.state.signups[i].ID == su.ID {
			seq := t.state.signups[i].Seq
			t.state.signups[i] = *su
			t.state.signups[i].Seq = seq
			return nil
		}
	}
	return domain.ErrSignupNotFound
}

func (t *itemTx) ReofferSettings(_ context.Context) (*domain.ReofferSettings, error) {
	s := t.state.settings
	return &s, nil
}

func (t *itemTx) SaveReofferSettings(_ context.Context, s *domain.ReofferSettings) error {
	t.state.settings = *s
	return nil
}

func (t *itemTx) Listing(_ context.Context) (*domain.ReofferListing, error) {
	if t.state.listing == nil {
		return nil, nil
	}
	l := *t.state.listing
	return &l, nil
}

func (t *itemTx) InsertListing(_ context.Context, l *domain.ReofferListing) error {
	if t.state.listing != nil {
		return fmt.Errorf("%w: listing already frozen", domain.ErrConflict)
	}
	cp := *l
	t.state.listing = &cp
	return nil
}

func (t *itemTx) SetListingRemaining(_ context.Context, remaining int) error {
	if t.state.listing == nil {
		return domain.ErrNotOffered
	}
	l := *t.state.listing
	l.QuantityRemaining = remaining
	t.state.listing = &l
	return nil
}

func (t *itemTx) CommitmentByKey(_ context.Context, userID, key string) (*domain.Commitment, error) {
	for _, c := range t.state.commitments {
		if c.UserID == userID && c.IdempotencyKey == key {
			return &c, nil
		}
	}
	return nil, nil
}

func (t *itemTx) InsertCommitment(_ context.Context, c *domain.Commitment) error {
	t.state.commitments = append(t.state.commitments, *c)
	return nil
}
