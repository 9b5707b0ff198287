package order_test

import (
	"fmt"
	"testing"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate lifecycle statuses", func(t *testing.T) {
		for _, status := range order.Statuses() {
			t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(99)} {
			err := status.Validate()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not a valid status")
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.Approved, "approved"},
		{order.Rejected, "rejected"},
		{order.Completed, "completed"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse names regardless of case", func(t *testing.T) {
		status, err := order.ParseStatus(" APPROVED ")

		require.NoError(t, err)
		assert.Equal(t, order.Approved, status)
	})

	t.Run("should round trip every status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	approve := func(s order.Status) (order.Status, error) { return s.Approve() }
	reject := func(s order.Status) (order.Status, error) { return s.Reject() }
	complete := func(s order.Status) (order.Status, error) { return s.Complete() }

	testCases := []struct {
		name    string
		from    order.Status
		apply   transition
		to      order.Status
		allowed bool
	}{
		{"pending to approved", order.Pending, approve, order.Approved, true},
		{"pending to rejected", order.Pending, reject, order.Rejected, true},
		{"approved to completed", order.Approved, complete, order.Completed, true},
		{"pending cannot complete", order.Pending, complete, order.Completed, false},
		{"approved cannot be approved again", order.Approved, approve, order.Approved, false},
		{"approved cannot be rejected", order.Approved, reject, order.Rejected, false},
		{"rejected cannot be approved", order.Rejected, approve, order.Approved, false},
		{"rejected cannot complete", order.Rejected, complete, order.Completed, false},
		{"completed cannot be approved", order.Completed, approve, order.Approved, false},
		{"completed cannot be rejected", order.Completed, reject, order.Rejected, false},
		{"completed cannot complete again", order.Completed, complete, order.Completed, false},
		{"unknown cannot be approved", order.Unknown, approve, order.Approved, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.apply(tc.from)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
				return
			}

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, order.Unknown, next)

			var transitionErr *errs.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tc.from.String(), transitionErr.From)
			assert.Equal(t, tc.to.String(), transitionErr.To)
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Approved.IsTerminal())
	assert.True(t, order.Rejected.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
}

func TestStatus_TerminalStatesHaveNoExit(t *testing.T) {
	for _, status := range []order.Status{order.Rejected, order.Completed} {
		_, approveErr := status.Approve()
		_, rejectErr := status.Reject()
		_, completeErr := status.Complete()

		require.ErrorIs(t, approveErr, errs.ErrInvalidTransition)
		require.ErrorIs(t, rejectErr, errs.ErrInvalidTransition)
		require.ErrorIs(t, completeErr, errs.ErrInvalidTransition)
	}
}
