package httpclient_test

import (
	"net/http"
	"testing"

	"github.com/andyle182810/gfetch/httpclient"
	"github.com/stretchr/testify/require"
)

func TestMergeHeaders_LaterLayerWins(t *testing.T) {
	t.Parallel()

	defaults := map[string]string{"Accept": "application/json", "X-A": "d", "X-B": "d", "X-C": "d"}
	instance := map[string]string{"X-B": "i", "X-C": "i"}
	call := map[string]string{"X-C": "c"}

	merged := httpclient.MergeHeaders(defaults, instance, call)

	require.Equal(t, http.Header{
		"Accept": {"application/json"},
		"X-A":    {"d"},
		"X-B":    {"i"},
		"X-C":    {"c"},
	}, merged)
}

func TestMergeHeaders_ComparesKeysCaseInsensitively(t *testing.T) {
	t.Parallel()

	merged := httpclient.MergeHeaders(
		map[string]string{"Content-Type": "application/json"},
		map[string]string{"content-type": "text/plain"},
	)

	require.Equal(t, []string{"text/plain"}, merged.Values("Content-Type"))
}

func TestMergeHeaders_SkipsNilLayers(t *testing.T) {
	t.Parallel()

	merged := httpclient.MergeHeaders(nil, map[string]string{"X-Only": "1"}, nil)

	require.Equal(t, http.Header{"X-Only": {"1"}}, merged)
}

func TestMergeHeaders_NoLayersYieldsEmptyHeader(t *testing.T) {
	t.Parallel()

	merged := httpclient.MergeHeaders()

	require.NotNil(t, merged)
	require.Empty(t, merged)
}
