//go:build unit

package builder

import (
	"time"

	domorder "tableside/internal/domain/order"
	"tableside/internal/usecase/commands"
)

type OrderBuilder struct {
	Reference    string
	TableID      int64
	Installation time.Time
	Departure    *time.Time
	CreatedAt    *time.Time
}

func NewOrderBuilder() *OrderBuilder {
	installation := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	departure := installation.Add(2 * time.Hour)
	return &OrderBuilder{
		Reference:    "BK-1001",
		TableID:      1,
		Installation: installation,
		Departure:    &departure,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	createdAt := time.Now()
	if b.CreatedAt != nil {
		createdAt = *b.CreatedAt
	}
	return domorder.NewOrder(b.Reference, b.TableID, b.Installation, b.Departure, createdAt)
}

func (b *OrderBuilder) BuildInput() commands.NewOrderInput {
	return commands.NewOrderInput{
		Reference:    b.Reference,
		TableID:      b.TableID,
		Installation: b.Installation,
		Departure:    b.Departure,
		CreatedAt:    b.CreatedAt,
	}
}
