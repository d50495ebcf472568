package orderrepo

import (
	"errors"
	"fmt"

	"kitchen/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = pq.ErrorCode("23505")

// mapError turns driver and gorm errors into the errs taxonomy.
func mapError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("order id is already taken", err)
		}
		return errs.NewStorageUnavailableError(
			fmt.Sprintf("%s (%s)", operation, pqErr.Code.Name()), err,
		)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundErrorWithCause("order", operation, err)
	}

	return errs.Classify(operation, err)
}
