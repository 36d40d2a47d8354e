//go:build unit

package builder

import (
	domtable "tableside/internal/domain/table"
	"tableside/internal/usecase/commands"
)

type TableBuilder struct {
	ID       int64
	Number   int
	Capacity int
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		Number:   1,
		Capacity: 4,
	}
}

func (b *TableBuilder) With(mutate func(*TableBuilder)) *TableBuilder {
	mutate(b)
	return b
}

func (b *TableBuilder) BuildDomain() (*domtable.Table, error) {
	return domtable.NewTable(b.Number, b.Capacity)
}

func (b *TableBuilder) BuildInput() commands.NewTableInput {
	return commands.NewTableInput{
		ID:       b.ID,
		Number:   b.Number,
		Capacity: b.Capacity,
	}
}
