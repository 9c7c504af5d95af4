package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialStatus(t *testing.T) {
	t.Parallel()
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestKnown(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted} {
		assert.True(t, Known(s), "status %q should be known", s)
	}
	assert.False(t, Known(Status("cancelled")))
	assert.False(t, Known(Status("")))
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	all := []Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted}

	allowed := map[[2]Status]bool{
		{StatusPending, StatusApproved}: true,
		{StatusPending, StatusRejected}: true,
	}

	for _, from := range all {
		for _, to := range all {
			got := CanTransition(from, to)
			want := allowed[[2]Status{from, to}]
			assert.Equal(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestDecide(t *testing.T) {
	t.Parallel()

	t.Run("approve pending", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Decide(StatusPending, StatusApproved))
	})

	t.Run("reject pending", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Decide(StatusPending, StatusRejected))
	})

	t.Run("complete is not a shop decision", func(t *testing.T) {
		t.Parallel()
		err := Decide(StatusPending, StatusCompleted)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("decided bookings stay decided", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, Decide(StatusApproved, StatusRejected), ErrInvalidTransition)
		require.ErrorIs(t, Decide(StatusRejected, StatusApproved), ErrInvalidTransition)
		require.ErrorIs(t, Decide(StatusCompleted, StatusApproved), ErrInvalidTransition)
	})
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, Terminal(StatusPending))
	assert.True(t, Terminal(StatusApproved))
	assert.True(t, Terminal(StatusRejected))
	assert.True(t, Terminal(StatusCompleted))
}
