package commands

import (
	"context"

	"lending-core/internal/domain/history"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/user"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateItemInput struct {
	Name     string
	Category string
}

type ItemStatusResult struct {
	ItemID uuid.UUID
	From   item.Status
	To     item.Status
}

type ItemCommands interface {
	CreateItem(ctx context.Context, in CreateItemInput, actor user.Actor) (*item.Item, error)
	SetOutOfOrder(ctx context.Context, itemID uuid.UUID, outOfOrder bool, actor user.Actor) (*ItemStatusResult, error)
}

type itemCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemCommands(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemCommandsImpl{uow: uow, clock: clk}
}

type itemCreatedDetails struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (c *itemCommandsImpl) CreateItem(ctx context.Context, in CreateItemInput, actor user.Actor) (*item.Item, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	category, ok := item.ParseCategory(in.Category)
	if !ok {
		return nil, item.ErrInvalidCategory
	}
	now := c.clock.Now()
	it, err := item.NewItem(in.Name, category, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Items().Create(ctx, it); err != nil {
			return errs.Wrap(err, "create item")
		}
		itemID := it.ID()
		entry, err := history.NewUserActionEntry(actor.IDPtr(), &itemID, history.ActionItemCreated, "",
			itemCreatedDetails{Name: it.Name(), Category: it.Category().String()}, now)
		if err != nil {
			return err
		}
		return tx.History().AppendUserAction(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// SetOutOfOrder raises or lifts the administrative flag. Lifting it
// re-derives the status from the item's live holdings.
func (c *itemCommandsImpl) SetOutOfOrder(ctx context.Context, itemID uuid.UUID, outOfOrder bool, actor user.Actor) (*ItemStatusResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	now := c.clock.Now()

	result := &ItemStatusResult{ItemID: itemID}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var action history.UserAction
		if outOfOrder {
			it, err := tx.Items().LockByID(ctx, itemID)
			if err != nil {
				return notFound(err, ErrItemNotFound, itemID)
			}
			result.From, result.To = it.Status(), item.StatusOutOfOrder
			if result.From != result.To {
				if err := tx.Items().UpdateStatus(ctx, itemID, item.StatusOutOfOrder, now); err != nil {
					return err
				}
			}
			action = history.ActionItemOutOfOrder
		} else {
			from, to, err := recomputeItemStatus(ctx, tx, itemID, false, now)
			if err != nil {
				return err
			}
			result.From, result.To = from, to
			action = history.ActionItemBackInService
		}

		entry, err := history.NewUserActionEntry(actor.IDPtr(), &itemID, action, "",
			history.StatusChangeDetails{From: result.From.String(), To: result.To.String()}, now)
		if err != nil {
			return err
		}
		return tx.History().AppendUserAction(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
