// SPDX-License-Identifier: MIT
// Internal tests for the rank↔pair bijection behind the uniform model.

package dist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPairAt_Bijection exhaustively checks, for a range of n, that ranks
// 0..C(n,2)-1 decode to exactly the lexicographic sequence of unordered
// pairs (i,j), i<j — the property that makes uniform rank subsets
// equivalent to uniform edge subsets.
func TestPairAt_Bijection(t *testing.T) {
	for n := 2; n <= 40; n++ {
		rank := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				gotI, gotJ := pairAt(n, rank)
				require.Equal(t, i, gotI, "n=%d rank=%d", n, rank)
				require.Equal(t, j, gotJ, "n=%d rank=%d", n, rank)
				rank++
			}
		}
		require.Equal(t, MaxEdges(n), rank, "rank space must cover C(%d,2)", n)
	}
}

// TestRowStart_Boundaries pins the row-offset arithmetic at both ends of
// the rank space.
func TestRowStart_Boundaries(t *testing.T) {
	const n = 9
	require.Equal(t, 0, rowStart(n, 0))
	require.Equal(t, n-1, rowStart(n, 1))
	require.Equal(t, MaxEdges(n)-1, rowStart(n, n-2), "the last row holds the single pair (n-2, n-1)")
	require.Equal(t, MaxEdges(n), rowStart(n, n-1), "the empty row past the end marks the rank-space size")
}
