package memstore

import (
	"context"
	"sync"

	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/domain/user"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps the whole lending state in memory. Within runs fn against a
// clone and swaps it in only when fn succeeds, so a failed transaction
// leaves nothing behind. Transactions are serialised by one mutex, which
// also plays the role of the per-item lock.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	users              map[uuid.UUID]userRecord
	items              map[uuid.UUID]itemRecord
	loans              map[uuid.UUID]loanRecord
	reservations       map[uuid.UUID]reservationRecord
	loanHistory        []history.LoanEntry
	reservationHistory []history.ReservationEntry
	userActions        []history.UserActionEntry
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{state: &state{
		users:        map[uuid.UUID]userRecord{},
		items:        map[uuid.UUID]itemRecord{},
		loans:        map[uuid.UUID]loanRecord{},
		reservations: map[uuid.UUID]reservationRecord{},
	}}
}

func (s *state) clone() *state {
	c := &state{
		users:              make(map[uuid.UUID]userRecord, len(s.users)),
		items:              make(map[uuid.UUID]itemRecord, len(s.items)),
		loans:              make(map[uuid.UUID]loanRecord, len(s.loans)),
		reservations:       make(map[uuid.UUID]reservationRecord, len(s.reservations)),
		loanHistory:        append([]history.LoanEntry(nil), s.loanHistory...),
		reservationHistory: append([]history.ReservationEntry(nil), s.reservationHistory...),
		userActions:        append([]history.UserActionEntry(nil), s.userActions...),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.items {
		c.items[k] = v
	}
	for k, v := range s.loans {
		c.loans[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	return c
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

// CommandReads reads committed state. It must not be called from inside
// Within; use tx.Reads() there.
func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// view runs fn against the committed state under the store lock.
func (s *Store) view(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Seeding helpers bypass validation so tests can arrange drifted states.

func (s *Store) PutUser(u *user.User) {
	s.view(func(st *state) { st.users[u.ID()] = userToRecord(u) })
}

func (s *Store) PutItem(it *item.Item) {
	s.view(func(st *state) { st.items[it.ID()] = itemToRecord(it) })
}

func (s *Store) PutLoan(l *loan.Loan) {
	s.view(func(st *state) { st.loans[l.ID()] = loanToRecord(l) })
}

func (s *Store) PutReservation(r *reservation.Reservation) {
	s.view(func(st *state) { st.reservations[r.ID()] = reservationToRecord(r) })
}

func (s *Store) LoanHistory() []history.LoanEntry {
	var out []history.LoanEntry
	s.view(func(st *state) { out = append(out, st.loanHistory...) })
	return out
}

func (s *Store) ReservationHistory() []history.ReservationEntry {
	var out []history.ReservationEntry
	s.view(func(st *state) { out = append(out, st.reservationHistory...) })
	return out
}

func (s *Store) UserActions() []history.UserActionEntry {
	var out []history.UserActionEntry
	s.view(func(st *state) { out = append(out, st.userActions...) })
	return out
}

type memTx struct {
	st *state
}

func (t *memTx) Items() shared.ItemRepository               { return itemRepo{t.st} }
func (t *memTx) Loans() shared.LoanRepository               { return loanRepo{t.st} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t.st} }
func (t *memTx) History() shared.HistoryRepository          { return historyRepo{t.st} }
func (t *memTx) Reads() shared.CommandReads                 { return stateReads{t.st} }
