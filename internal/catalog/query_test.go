package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestQueryParamsDefaults(t *testing.T) {
	params := ListOptions{}.QueryParams()

	require.Equal(t, map[string]string{
		"sort":  "title",
		"order": "asc",
	}, params)
}

func TestQueryParamsOmitsInactiveFilters(t *testing.T) {
	params := ListOptions{
		Read:  boolPtr(true),
		Sort:  SortByAuthor,
		Order: OrderDesc,
	}.QueryParams()

	require.Equal(t, map[string]string{
		"read":  "true",
		"sort":  "author",
		"order": "desc",
	}, params)
	require.NotContains(t, params, "q")
	require.NotContains(t, params, "favorite")
}

func TestQueryParamsFalseFilterIsStillSent(t *testing.T) {
	params := ListOptions{Favorite: boolPtr(false)}.QueryParams()

	require.Equal(t, "false", params["favorite"])
}

func TestQueryParamsTrimsSearch(t *testing.T) {
	params := ListOptions{Search: "  dune  "}.QueryParams()
	require.Equal(t, "dune", params["q"])

	params = ListOptions{Search: "   "}.QueryParams()
	require.NotContains(t, params, "q")
}
