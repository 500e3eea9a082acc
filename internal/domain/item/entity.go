package item

import (
	"strings"
	"time"

	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errs.NewKind(errs.ErrValidation, "item name must be 1-200 characters")
	ErrInvalidCategory = errs.NewKind(errs.ErrValidation, "item category must be BOOK or EQUIPMENT")
)

const maxNameLength = 200

type Item struct {
	id        uuid.UUID
	name      string
	category  Category
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewItem(name string, category Category, now time.Time) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" || len([]rune(name)) > maxNameLength {
		return nil, ErrInvalidName
	}
	if _, ok := ParseCategory(string(category)); !ok {
		return nil, ErrInvalidCategory
	}
	return &Item{
		id:        uuid.New(),
		name:      name,
		category:  category,
		status:    StatusAvailable,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructItem(id uuid.UUID, name string, category Category, status Status, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:        id,
		name:      name,
		category:  category,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// IsOutOfOrder is the administrative flag. It survives every derivation.
func (i *Item) IsOutOfOrder() bool {
	return i.status == StatusOutOfOrder
}

// SetStatus reports whether the stored status changed.
func (i *Item) SetStatus(s Status, now time.Time) bool {
	if i.status == s {
		return false
	}
	i.status = s
	i.updatedAt = now
	return true
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Name() string         { return i.name }
func (i *Item) Category() Category   { return i.category }
func (i *Item) Status() Status       { return i.status }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
