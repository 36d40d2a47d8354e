package commands

import (
	"context"
	"fmt"
	"strings"

	"tableside/internal/domain/order"
	"tableside/internal/domain/table"
	"tableside/internal/infra"
	"tableside/internal/pkg/errs"
	"tableside/internal/usecase/shared"
)

// AvailabilityValidator decides admit/reject for a candidate order. It has no
// write side effects: one read on the accept path, two on the reject path
// (the second collects alternatives for the diagnostic).
type AvailabilityValidator struct{}

func NewAvailabilityValidator() *AvailabilityValidator {
	return &AvailabilityValidator{}
}

func (v *AvailabilityValidator) Validate(ctx context.Context, tables shared.TableRepository, o *order.Order) error {
	requested, err := tables.FindByID(ctx, o.TableID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrTableNotFound)
		}
		return err
	}

	at := o.Stay().Installation()

	available, err := tables.IsAvailableAt(ctx, o.TableID(), at)
	if err != nil {
		return err
	}
	if available {
		return nil
	}

	alternatives, err := tables.FindAvailableAt(ctx, at)
	if err != nil {
		return err
	}

	return errs.Mark(errs.New(conflictMessage(requested, alternatives)), ErrTableUnavailable)
}

// conflictMessage enumerates free tables in ascending number order so the
// caller can act on the rejection without a second round trip.
func conflictMessage(requested *table.Table, alternatives []*table.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table %d is not available at this time.", requested.Number())

	if len(alternatives) == 0 {
		b.WriteString(" No tables are currently available.")
		return b.String()
	}

	b.WriteString(" Available tables: ")
	for i, t := range alternatives {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d (capacity: %d)", t.Number(), t.Capacity())
	}
	return b.String()
}
