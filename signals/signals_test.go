//go:build !wasm

package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_GetReturnsInitialValue(t *testing.T) {
	s := NewSignal("home")
	assert.Equal(t, "home", s.Get())
}

func TestSignal_SetNotifiesInSubscriptionOrder(t *testing.T) {
	s := NewSignal(0)
	var calls []string
	s.Subscribe(func(v int) { calls = append(calls, "first") })
	s.Subscribe(func(v int) { calls = append(calls, "second") })

	s.Set(1)

	assert.Equal(t, 1, s.Get())
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestSignal_SetSameValueStillNotifies(t *testing.T) {
	s := NewSignal(3)
	count := 0
	s.Subscribe(func(int) { count++ })

	s.Set(3)
	s.Set(3)

	assert.Equal(t, 2, count)
}

func TestSignal_UnsubscribeOutOfOrder(t *testing.T) {
	// Removing an earlier subscriber must not drop or misroute later ones.
	s := NewSignal(0)
	var got []int
	unsubA := s.Subscribe(func(v int) { got = append(got, 100+v) })
	unsubB := s.Subscribe(func(v int) { got = append(got, 200+v) })
	s.Subscribe(func(v int) { got = append(got, 300+v) })

	unsubA()
	s.Set(1)
	require.Equal(t, []int{201, 301}, got)

	got = nil
	unsubB()
	unsubB()
	s.Set(2)
	assert.Equal(t, []int{302}, got)
}

func TestSignal_SubscriberMaySetDuringNotify(t *testing.T) {
	s := NewSignal(0)
	s.Subscribe(func(v int) {
		if v == 1 {
			s.Set(2)
		}
	})

	s.Set(1)

	assert.Equal(t, 2, s.Get())
}
