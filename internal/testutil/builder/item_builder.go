//go:build unit || integration

package builder

import (
	"lending-core/internal/domain/item"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	id       uuid.UUID
	name     string
	category item.Category
	status   item.Status
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		id:       uuid.New(),
		name:     "Canon EOS R6",
		category: item.CategoryEquipment,
		status:   item.StatusAvailable,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *ItemBuilder) WithID(id uuid.UUID) *ItemBuilder {
	b.id = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.name = name
	return b
}

func (b *ItemBuilder) WithCategory(c item.Category) *ItemBuilder {
	b.category = c
	return b
}

func (b *ItemBuilder) WithStatus(s item.Status) *ItemBuilder {
	b.status = s
	return b
}

func (b *ItemBuilder) Build() *item.Item {
	return item.ReconstructItem(b.id, b.name, b.category, b.status, Base, Base)
}

// BuildNew goes through the validating constructor.
func (b *ItemBuilder) BuildNew() (*item.Item, error) {
	return item.NewItem(b.name, b.category, Base)
}
