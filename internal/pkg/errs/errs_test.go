package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is out of range: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrTransitionIsInvalid)
		require.Error(t, errs.ErrStorageIsUnavailable)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "transition is invalid", errs.ErrTransitionIsInvalid.Error())
		assert.Equal(t, "storage is unavailable", errs.ErrStorageIsUnavailable.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("userId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("username")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		transitionErr := errs.NewTransitionIsInvalidError("ready", "preparing")
		require.ErrorIs(t, transitionErr, errs.ErrTransitionIsInvalid)

		storageErr := errs.NewStorageUnavailableError("list orders", errors.New("dial tcp"))
		require.ErrorIs(t, storageErr, errs.ErrStorageIsUnavailable)
	})
}

func TestTransitionIsInvalidError(t *testing.T) {
	t.Run("NewTransitionIsInvalidError", func(t *testing.T) {
		err := errs.NewTransitionIsInvalidError("ready", "preparing")

		assert.Equal(t, "ready", err.From)
		assert.Equal(t, "preparing", err.To)
		assert.Equal(t, `transition is invalid: "ready" -> "preparing"`, err.Error())
	})

	t.Run("NewTransitionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewTransitionIsInvalidErrorWithCause("pending", "bogus", errors.New("unknown status"))

		assert.Equal(t, `transition is invalid: "pending" -> "bogus" (cause: unknown status)`, err.Error())
		assert.Equal(t, errs.ErrTransitionIsInvalid, err.Unwrap())
	})

	t.Run("requested literal with newlines is sanitized", func(t *testing.T) {
		err := errs.NewTransitionIsInvalidError("pending", "re\nady")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestStorageUnavailableError(t *testing.T) {
	t.Run("keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewStorageUnavailableError("update order status", cause)

		assert.Equal(t, "storage is unavailable: update order status (cause: connection refused)", err.Error())
		require.ErrorIs(t, err, errs.ErrStorageIsUnavailable)
		require.ErrorIs(t, err, cause)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStorageUnavailableError("delete order", nil)

		assert.Equal(t, "storage is unavailable: delete order", err.Error())
		require.ErrorIs(t, err, errs.ErrStorageIsUnavailable)
	})
}

func TestClassify(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, errs.Classify("list orders", nil))
	})

	t.Run("taxonomy errors pass through unchanged", func(t *testing.T) {
		known := []error{
			errs.NewObjectNotFoundError("order", "42"),
			errs.NewTransitionIsInvalidError("ready", "pending"),
			errs.NewValueIsRequiredError("status"),
			errs.NewValueIsInvalidError("quantity"),
			errs.NewValueIsOutOfRangeError("autoRemoveAfterSeconds", 0, 1, 3600),
			errs.NewStorageUnavailableError("get order", errors.New("timeout")),
		}

		for _, err := range known {
			assert.Same(t, err, errs.Classify("op", err))
		}
	})

	t.Run("wrapped taxonomy errors pass through", func(t *testing.T) {
		err := fmt.Errorf("load: %w", errs.NewObjectNotFoundError("order", "42"))

		assert.Equal(t, err, errs.Classify("op", err))
	})

	t.Run("raw errors become storage unavailable", func(t *testing.T) {
		raw := errors.New("pq: relation \"orders\" does not exist")

		err := errs.Classify("list orders", raw)

		var storageErr *errs.StorageUnavailableError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "list orders", storageErr.Operation)
		require.ErrorIs(t, err, raw)
	})
}

func TestIsMalformedInput(t *testing.T) {
	assert.True(t, errs.IsMalformedInput(errs.NewValueIsRequiredError("status")))
	assert.True(t, errs.IsMalformedInput(errs.NewValueIsInvalidError("orderType")))
	assert.True(t, errs.IsMalformedInput(errs.NewValueIsOutOfRangeError("quantity", 0, 1, 999)))
	assert.False(t, errs.IsMalformedInput(errs.NewTransitionIsInvalidError("ready", "pending")))
	assert.False(t, errs.IsMalformedInput(errors.New("boom")))
}
