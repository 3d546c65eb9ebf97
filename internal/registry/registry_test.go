package registry

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(list []string, email string) int {
	n := 0
	for _, p := range list {
		if p == email {
			n++
		}
	}
	return n
}

func TestList_ContainsSeed(t *testing.T) {
	r := New(Seed())
	got := r.List()

	for name, want := range Seed() {
		a, ok := got[name]
		require.True(t, ok, "missing %q", name)
		assert.Equal(t, want, a)
	}
	assert.Len(t, r.Names(), len(Seed()))
}

func TestList_ReturnsSnapshot(t *testing.T) {
	r := New(Seed())
	snap := r.List()
	chess := snap["Chess Club"]
	chess.Participants[0] = "mutated@x.edu"

	a, err := r.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", a.Participants[0])
}

func TestNew_CopiesSeed(t *testing.T) {
	seed := Seed()
	r := New(seed)
	require.NoError(t, r.Signup("Chess Club", "new@mergington.edu"))
	assert.Len(t, seed["Chess Club"].Participants, 2)
}

func TestSignup(t *testing.T) {
	r := New(Seed())

	require.NoError(t, r.Signup("Chess Club", "a@b.edu"))
	a, _ := r.Get("Chess Club")
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "a@b.edu"}, a.Participants)

	err := r.Signup("Chess Club", "a@b.edu")
	assert.ErrorIs(t, err, ErrAlreadySignedUp)
	a, _ = r.Get("Chess Club")
	assert.Equal(t, 1, count(a.Participants, "a@b.edu"))
}

func TestSignup_NameIsCaseSensitive(t *testing.T) {
	r := New(Seed())
	assert.ErrorIs(t, r.Signup("chess club", "a@b.edu"), ErrNotFound)
	assert.ErrorIs(t, r.Signup("does-not-exist", "a@b.edu"), ErrNotFound)
}

func TestSignup_EmailIsOpaque(t *testing.T) {
	r := New(Seed())
	require.NoError(t, r.Signup("Math Club", "A@B.edu"))
	require.NoError(t, r.Signup("Math Club", "a@b.edu"))
	require.NoError(t, r.Signup("Math Club", " a@b.edu"))
	a, _ := r.Get("Math Club")
	assert.Len(t, a.Participants, 5)
}

func TestSignup_CapacityNotEnforcedByDefault(t *testing.T) {
	r := New(map[string]model.Activity{"Tiny": {MaxParticipants: 1}})
	require.NoError(t, r.Signup("Tiny", "one@x.edu"))
	require.NoError(t, r.Signup("Tiny", "two@x.edu"))
	a, _ := r.Get("Tiny")
	assert.Equal(t, -1, a.Remaining())
}

func TestSignup_CapacityEnforced(t *testing.T) {
	r := New(map[string]model.Activity{"Tiny": {MaxParticipants: 1}}, WithCapacityEnforcement(true))
	require.NoError(t, r.Signup("Tiny", "one@x.edu"))
	assert.ErrorIs(t, r.Signup("Tiny", "two@x.edu"), ErrActivityFull)
	// duplicates are still reported as duplicates
	assert.ErrorIs(t, r.Signup("Tiny", "one@x.edu"), ErrAlreadySignedUp)
}

func TestUnregister(t *testing.T) {
	r := New(Seed())

	require.NoError(t, r.Unregister("Chess Club", "michael@mergington.edu"))
	a, _ := r.Get("Chess Club")
	assert.Equal(t, []string{"daniel@mergington.edu"}, a.Participants)

	assert.ErrorIs(t, r.Unregister("Chess Club", "michael@mergington.edu"), ErrNotSignedUp)
	assert.ErrorIs(t, r.Unregister("Nope", "michael@mergington.edu"), ErrNotFound)
}

func TestUnregister_PreservesOrder(t *testing.T) {
	r := New(map[string]model.Activity{"Club": {MaxParticipants: 5}})
	for _, e := range []string{"a", "b", "c", "d"} {
		require.NoError(t, r.Signup("Club", e))
	}
	require.NoError(t, r.Unregister("Club", "b"))
	a, _ := r.Get("Club")
	assert.Equal(t, []string{"a", "c", "d"}, a.Participants)
}

func TestSignup_ConcurrentSameEmail(t *testing.T) {
	r := New(Seed())
	const workers = 50

	var ok, dup atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch err := r.Signup("Chess Club", "race@mergington.edu"); err {
			case nil:
				ok.Add(1)
			case ErrAlreadySignedUp:
				dup.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(workers-1), dup.Load())
	a, _ := r.Get("Chess Club")
	assert.Equal(t, 1, count(a.Participants, "race@mergington.edu"))
}

func TestUnregister_ConcurrentSameEmail(t *testing.T) {
	r := New(Seed())
	const workers = 50
	require.NoError(t, r.Signup("Chess Club", "race@mergington.edu"))

	var ok, missing atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch err := r.Unregister("Chess Club", "race@mergington.edu"); err {
			case nil:
				ok.Add(1)
			case ErrNotSignedUp:
				missing.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(workers-1), missing.Load())
	a, _ := r.Get("Chess Club")
	assert.Equal(t, 0, count(a.Participants, "race@mergington.edu"))
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, a.Participants)
}

func TestSignupUnregister_ConcurrentDistinctEmails(t *testing.T) {
	r := New(map[string]model.Activity{"Club": {MaxParticipants: 1000}})
	const workers = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("s%d@x.edu", i)
			assert.NoError(t, r.Signup("Club", email))
			if i%2 == 0 {
				assert.NoError(t, r.Unregister("Club", email))
			}
			_ = r.List()
		}(i)
	}
	wg.Wait()

	a, _ := r.Get("Club")
	assert.Len(t, a.Participants, workers/2)
}
