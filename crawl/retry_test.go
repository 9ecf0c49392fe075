package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/shopgrep"
	"github.com/fwojciec/shopgrep/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns the first successful fetch", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(context.Context, string) (string, error) {
			calls++
			return "<html>cards</html>", nil
		}

		html, err := crawl.FetchWithRetryDelays(t.Context(), "https://shop.example.com/s?k=widget", fetch, nil, crawl.DefaultRetryDelays())

		require.NoError(t, err)
		assert.Equal(t, "<html>cards</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until a fetch succeeds", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(context.Context, string) (string, error) {
			calls++
			if calls < 3 {
				return "", shopgrep.Errorf(shopgrep.EUNAVAILABLE, "connection reset")
			}
			return "<html>cards</html>", nil
		}

		html, err := crawl.FetchWithRetryDelays(t.Context(), "https://shop.example.com/s?k=widget", fetch, nil, []time.Duration{0, 0, 0})

		require.NoError(t, err)
		assert.Equal(t, "<html>cards</html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("empty delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(context.Context, string) (string, error) {
			calls++
			return "", shopgrep.Errorf(shopgrep.EUNAVAILABLE, "connection reset")
		}

		_, err := crawl.FetchWithRetryDelays(t.Context(), "https://shop.example.com/s?k=widget", fetch, nil, []time.Duration{})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("logger reports each retry", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(context.Context, string) (string, error) {
			calls++
			if calls < 3 {
				return "", shopgrep.Errorf(shopgrep.EUNAVAILABLE, "connection reset")
			}
			return "<html>cards</html>", nil
		}

		logged := 0
		logger := func(string, ...any) { logged++ }

		_, err := crawl.FetchWithRetryDelays(t.Context(), "https://shop.example.com/s?k=widget", fetch, logger, []time.Duration{0, 0})

		require.NoError(t, err)
		assert.Equal(t, 2, logged)
	})

	t.Run("canceled context stops retrying", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetch := func(context.Context, string) (string, error) {
			return "", shopgrep.Errorf(shopgrep.EUNAVAILABLE, "connection reset")
		}

		_, err := crawl.FetchWithRetryDelays(ctx, "https://shop.example.com/s?k=widget", fetch, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})
}
