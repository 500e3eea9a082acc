package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"lending-core/internal/infra"
	"lending-core/internal/usecase/queries"

	"github.com/google/uuid"
)

func (s *Store) UserReadStore() queries.UserReadStore               { return userReadStore{s} }
func (s *Store) HistoryReadStore() queries.HistoryReadStore         { return historyReadStore{s} }
func (s *Store) ReservationReadStore() queries.ReservationReadStore { return reservationReadStore{s} }

type userReadStore struct{ store *Store }

func (r userReadStore) FindByID(ctx context.Context, id uuid.UUID) (view *queries.AuthorizedUserView, err error) {
	r.store.view(func(st *state) {
		rec, ok := st.users[id]
		if !ok {
			err = infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
			return
		}
		view = rec.toView()
	})
	return view, err
}

func (r userReadStore) FindByEmail(ctx context.Context, email string) (view *queries.AuthorizedUserView, hash string, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.store.view(func(st *state) {
		for _, rec := range st.users {
			if rec.email == email {
				view, hash = rec.toView(), rec.passwordHash
				return
			}
		}
		err = infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
	})
	return view, hash, err
}

func (rec userRecord) toView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       rec.id,
		Name:     rec.name,
		Email:    rec.email,
		Role:     rec.role.String(),
		IsActive: rec.isActive,
	}
}

type historyReadStore struct{ store *Store }

func (r historyReadStore) FindByItemFirstPage(ctx context.Context, itemID uuid.UUID, limit int32) ([]*queries.HistoryEntryView, error) {
	return r.page(itemID, nil, uuid.Nil, limit), nil
}

func (r historyReadStore) FindByItemKeyset(ctx context.Context, itemID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.HistoryEntryView, error) {
	return r.page(itemID, &lastCreatedAt, lastID, limit), nil
}

func (r historyReadStore) page(itemID uuid.UUID, lastCreatedAt *time.Time, lastID uuid.UUID, limit int32) []*queries.HistoryEntryView {
	var all []*queries.HistoryEntryView
	r.store.view(func(st *state) {
		for _, e := range st.loanHistory {
			if e.ItemID != itemID {
				continue
			}
			all = append(all, &queries.HistoryEntryView{
				Source:    queries.HistorySourceLoan,
				ID:        e.ID,
				SubjectID: uuidPtr(e.LoanID),
				ItemID:    uuidPtr(e.ItemID),
				ActorID:   e.ActorID,
				Action:    string(e.Action),
				Comment:   e.Comment,
				CreatedAt: e.CreatedAt,
			})
		}
		for _, e := range st.reservationHistory {
			if e.ItemID != itemID {
				continue
			}
			all = append(all, &queries.HistoryEntryView{
				Source:    queries.HistorySourceReservation,
				ID:        e.ID,
				SubjectID: uuidPtr(e.ReservationID),
				ItemID:    uuidPtr(e.ItemID),
				ActorID:   e.ActorID,
				Action:    string(e.Action),
				Comment:   e.Comment,
				Details:   json.RawMessage(e.Details),
				CreatedAt: e.CreatedAt,
			})
		}
		for _, e := range st.userActions {
			if e.ItemID == nil || *e.ItemID != itemID {
				continue
			}
			all = append(all, &queries.HistoryEntryView{
				Source:    queries.HistorySourceUserAction,
				ID:        e.ID,
				ItemID:    e.ItemID,
				ActorID:   e.ActorID,
				Action:    string(e.Action),
				Comment:   e.Comment,
				Details:   json.RawMessage(e.Details),
				CreatedAt: e.CreatedAt,
			})
		}
	})

	sort.Slice(all, func(i, j int) bool {
		return newerThan(all[i].CreatedAt, all[i].ID, all[j].CreatedAt, all[j].ID)
	})
	return keysetSlice(all, lastCreatedAt, lastID, limit, func(v *queries.HistoryEntryView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
}

type reservationReadStore struct{ store *Store }

func (r reservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	return r.page(userID, nil, uuid.Nil, limit), nil
}

func (r reservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	return r.page(userID, &lastCreatedAt, lastID, limit), nil
}

func (r reservationReadStore) page(userID uuid.UUID, lastCreatedAt *time.Time, lastID uuid.UUID, limit int32) []*queries.ReservationListItem {
	var all []*queries.ReservationListItem
	r.store.view(func(st *state) {
		for _, rec := range st.reservations {
			if rec.userID != userID {
				continue
			}
			all = append(all, &queries.ReservationListItem{
				ID:        rec.id,
				ItemID:    rec.itemID,
				ItemName:  st.items[rec.itemID].name,
				StartDate: rec.startDate,
				EndDate:   rec.endDate,
				Status:    rec.status.String(),
				CreatedAt: rec.createdAt,
			})
		}
	})

	sort.Slice(all, func(i, j int) bool {
		return newerThan(all[i].CreatedAt, all[i].ID, all[j].CreatedAt, all[j].ID)
	})
	return keysetSlice(all, lastCreatedAt, lastID, limit, func(v *queries.ReservationListItem) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
}

// newerThan orders by (created_at DESC, id DESC), matching the SQL keyset.
func newerThan(aAt time.Time, aID uuid.UUID, bAt time.Time, bID uuid.UUID) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return aID.String() > bID.String()
}

func keysetSlice[T any](sorted []T, lastCreatedAt *time.Time, lastID uuid.UUID, limit int32, key func(T) (time.Time, uuid.UUID)) []T {
	out := make([]T, 0, limit)
	for _, v := range sorted {
		if lastCreatedAt != nil {
			at, id := key(v)
			if !newerThan(*lastCreatedAt, lastID, at, id) {
				continue
			}
		}
		if int32(len(out)) == limit {
			break
		}
		out = append(out, v)
	}
	return out
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
