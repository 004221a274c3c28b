// Package memory keeps the whole auction ledger in process memory. It honors
// the same locking contract as the Postgres repositories and backs tests and
// single-process runs.
package memory

import (
	"sync"
	"sync/atomic"

	"github.com/oryweaver/auction/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	auctions map[string]*auctionRow
	items    map[string]*itemRow
	// signup id -> item id
	signups   map[string]string
	users     map[string]*domain.User
	usernames map[string]string

	seq atomic.Int64
}

func New() *Store {
	return &Store{
		auctions:  make(map[string]*auctionRow),
		items:     make(map[string]*itemRow),
		signups:   make(map[string]string),
		users:     make(map[string]*domain.User),
		usernames: make(map[string]string),
	}
}

func (s *Store) Auctions() *AuctionRepo { return &AuctionRepo{s: s} }
func (s *Store) Items() *ItemRepo       { return &ItemRepo{s: s} }
func (s *Store) Ledger() *LedgerRepo    { return &LedgerRepo{s: s} }
func (s *Store) Users() *UserRepo       { return &UserRepo{s: s} }

// auctionRow guards the phase. Item transactions hold phaseMu for reading,
// so a phase change waits for in-flight item writes and blocks new ones.
type auctionRow struct {
	phaseMu sync.RWMutex
	auction domain.Auction
	items   []string
	bidders []string
}

type itemRow struct {
	mu    sync.Mutex
	state itemState
}

type itemState struct {
	item        domain.Item
	settings    domain.ReofferSettings
	bids        []domain.Bid
	winner      *domain.Winner
	signups     []domain.Signup
	listing     *domain.ReofferListing
	commitments []domain.Commitment
}

// clone copies everything a transaction may change. Records are treated as
// immutable values once stored, so copying the slices is enough.
func (st *itemState) clone() itemState {
	return itemState{
		item:        st.item,
		settings:    st.settings,
		bids:        append([]domain.Bid(nil), st.bids...),
		winner:      st.winner,
		signups:     append([]domain.Signup(nil), st.signups...),
		listing:     st.listing,
		commitments: append([]domain.Commitment(nil), st.commitments...),
	}
}

func (s *Store) auctionRow(id string) (*auctionRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.auctions[id]
	return row, ok
}

func (s *Store) itemRow(id string) (*itemRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.items[id]
	return row, ok
}

// itemRows returns the rows of an auction without holding their locks.
func (s *Store) itemRows(auctionID string) []*itemRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.auctions[auctionID]
	if !ok {
		return nil
	}
	rows := make([]*itemRow, 0, len(a.items))
	for _, id := range a.items {
		rows = append(rows, s.items[id])
	}
	return rows
}

func (s *Store) allItemRows() []*itemRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]*itemRow, 0, len(s.items))
	for _, row := range s.items {
		rows = append(rows, row)
	}
	return rows
}

func (s *Store) nextSeq() int64 { return s.seq.Add(1) }
