package hull

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionCompute(t *testing.T) {
	session, err := NewSession(Config{Distribution: Ring, Seed: 5}, 2000)
	require.NoError(t, err)
	defer session.Close()

	result, err := session.Compute(1500)
	require.NoError(t, err)

	require.Equal(t, 1500, result.N)
	require.Equal(t, result.Quick.Count, result.Graham.Count)
	require.Equal(t, result.Quick.Count, result.HullCount())

	points := session.Points()
	require.Len(t, points, 1500)

	hull := points[:result.HullCount()]
	requireValidHull(t, points, hull)
	requireSameVecSet(t, hull, session.GrahamHull())

	// the rearranged buffer must match what quickhull produces on the
	// identical generated input
	pristine := make([]Vec, 1500)
	NewGenerator(Config{Distribution: Ring, Seed: 5}).Fill(pristine)

	direct := slices.Clone(pristine)
	require.Equal(t, result.HullCount(), QuickHull(direct))
	require.Equal(t, direct, points)
}

func TestSessionReuseAcrossSizes(t *testing.T) {
	session, err := NewSession(Config{Distribution: Disc, Seed: 9}, 1000)
	require.NoError(t, err)
	defer session.Close()

	for _, n := range []int{1000, 1, 500, 32} {
		result, err := session.Compute(n)
		require.NoError(t, err)
		require.Equal(t, n, result.N)
		require.Len(t, session.Points(), n)
		require.GreaterOrEqual(t, result.HullCount(), 1)
		require.LessOrEqual(t, result.HullCount(), n)
	}
}

func TestSessionIsDeterministic(t *testing.T) {
	cfg := Config{Distribution: Clusters, Seed: 77}

	one, err := NewSession(cfg, 300)
	require.NoError(t, err)
	defer one.Close()

	two, err := NewSession(cfg, 300)
	require.NoError(t, err)
	defer two.Close()

	resultOne, err := one.Compute(300)
	require.NoError(t, err)

	resultTwo, err := two.Compute(300)
	require.NoError(t, err)

	require.Equal(t, resultOne.HullCount(), resultTwo.HullCount())
	require.Equal(t, one.Points(), two.Points())
	require.Equal(t, one.GrahamHull(), two.GrahamHull())
}

func TestSessionReset(t *testing.T) {
	session, err := NewSession(Config{Distribution: Disc, Seed: 1}, 100)
	require.NoError(t, err)
	defer session.Close()

	_, err = session.Compute(100)
	require.NoError(t, err)

	// after a reset with the same config the session replays its output
	before := slices.Clone(session.Points())
	session.Reset(Config{Distribution: Disc, Seed: 1})
	require.Empty(t, session.Points())

	_, err = session.Compute(100)
	require.NoError(t, err)
	require.Equal(t, before, session.Points())
}

func TestSessionRejectsBadInput(t *testing.T) {
	_, err := NewSession(Config{}, 0)
	require.Error(t, err)

	session, err := NewSession(Config{}, 10)
	require.NoError(t, err)

	_, err = session.Compute(0)
	require.Error(t, err, "empty input must be rejected before the engines run")

	_, err = session.Compute(-3)
	require.Error(t, err)

	_, err = session.Compute(11)
	require.Error(t, err, "requests above the preallocated capacity must fail")

	_, err = session.Compute(10)
	require.NoError(t, err)

	session.Close()
	_, err = session.Compute(5)
	require.Error(t, err, "a closed session must not compute")
}
