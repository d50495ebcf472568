package order_test

import (
	"testing"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse every wire literal", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":   order.Pending,
			"preparing": order.Preparing,
			"ready":     order.Ready,
			"done":      order.Done,
		}
		for literal, expected := range cases {
			status, err := order.ParseStatus(literal)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
			assert.Equal(t, literal, status.String())
		}
	})

	t.Run("should reject unknown and differently cased literals", func(t *testing.T) {
		for _, literal := range []string{"", "unknown", "cooking", "READY", " ready"} {
			status, err := order.ParseStatus(literal)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, literal)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Preparing, order.Ready, order.Done} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out of range statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			require.ErrorIs(t, s.Validate(), errs.ErrValueIsInvalid)
			assert.Equal(t, "unknown", s.String())
		}
	})
}
