package photos

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/internal/scrapers/wikipedia"
)

func TestForcedResolveSkipsPageCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		fmt.Fprintf(w, `{"query":{"pages":{"1":{"pageid":1,"title":%q,"thumbnail":{"source":"https://img/v%d.jpg"}}}}}`,
			r.URL.Query().Get("titles"), n)
	}))
	t.Cleanup(server.Close)

	tel := &telemetry.Recorder{}
	client := wikipedia.NewClient(wikipedia.Options{BaseURL: server.URL}, tel)
	resolver := NewResolver(client, &fakeClock{}, tel, DefaultVariantDelay)
	newsom := directory.Official{Name: "Gavin Newsom", Office: "Governor", Level: directory.LevelState, State: "California"}

	url, ok := resolver.Resolve(context.Background(), newsom, false)
	require.True(t, ok)
	require.Equal(t, "https://img/v1.jpg", url)

	resolver.MarkBroken(newsom.Name)
	url, ok = resolver.Resolve(context.Background(), newsom, true)
	require.True(t, ok)
	require.Equal(t, "https://img/v2.jpg", url)
	require.EqualValues(t, 2, hits.Load())
	require.False(t, resolver.Failed(newsom.Name))
	require.Equal(t, "https://img/v2.jpg", resolver.PhotoFor(newsom))

	// the refreshed page replaced the cached one
	page, err := client.Lookup(context.Background(), newsom.Name)
	require.NoError(t, err)
	require.Equal(t, "https://img/v2.jpg", *page.Image)
	require.EqualValues(t, 2, hits.Load())
}
