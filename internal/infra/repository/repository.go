package repository

import (
	"tableside/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// Collaborator records are validated with struct tags before any write. They
// never participate in the reservation transaction; each call runs on its own
// pooled connection.
var validate = validator.New(validator.WithRequiredStructEnabled())

func validateRecord(rec any, what string) error {
	if err := validate.Struct(rec); err != nil {
		return errs.Wrap(err, "invalid "+what+" record")
	}
	return nil
}
