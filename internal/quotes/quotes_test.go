package quotes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogueLoads(t *testing.T) {
	t.Parallel()

	all, err := All()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), 5)
	for _, q := range all {
		require.NotEmpty(t, q.Text)
		require.NotEmpty(t, q.Author)
	}
}

func TestDefaultAndPick(t *testing.T) {
	t.Parallel()

	q := Default()
	require.Equal(t, "Steve Jobs", q.Author)
	require.Equal(t, "— Steve Jobs", q.Byline())

	all, err := All()
	require.NoError(t, err)
	require.Equal(t, all[1], Pick(1))
	require.Equal(t, all[0], Pick(len(all)))
	require.Equal(t, all[len(all)-1], Pick(-1))
}
