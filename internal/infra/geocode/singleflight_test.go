package geocode

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSingleFlight_RejectsConcurrentCall(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	source := func(ctx context.Context, key string) (string, error) {
		close(started)
		<-release

		return "done", nil
	}

	guarded := WithSingleFlight(source)

	result := make(chan string, 1)
	go func() {
		value, err := guarded(context.Background(), "slow")
		if err == nil {
			result <- value
		}
	}()

	<-started

	// While the first call is running, a second one fails fast.
	_, err := guarded(context.Background(), "rejected")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)

	select {
	case value := <-result:
		assert.Equal(t, "done", value)
	case <-time.After(time.Second):
		t.Fatal("first call did not complete")
	}
}

func TestWithSingleFlight_ReleasesAfterCompletion(t *testing.T) {
	calls := 0
	source := func(ctx context.Context, key string) (string, error) {
		calls++

		return key, nil
	}

	guarded := WithSingleFlight(source)

	for _, key := range []string{"one", "two", "three"} {
		value, err := guarded(context.Background(), key)
		require.NoError(t, err)
		assert.Equal(t, key, value)
	}
	assert.Equal(t, 3, calls)
}
