package swapstrategy_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/swapstrat/coupling"
	"github.com/katalvlaran/swapstrat/matrix"
	"github.com/katalvlaran/swapstrat/perm"
	"github.com/katalvlaran/swapstrat/swapstrategy"
)

var (
	layerA = swapstrategy.Layer{{0, 1}, {2, 3}}
	layerB = swapstrategy.Layer{{1, 2}, {3, 4}}
)

// lineMap5 returns the path 0-1-2-3-4 given in both orientations.
func lineMap5(t require.TestingT) *coupling.Map {
	m, err := coupling.New([]coupling.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4},
		{From: 1, To: 0}, {From: 2, To: 1}, {From: 3, To: 2}, {From: 4, To: 3},
	})
	require.NoError(t, err)
	return m
}

// StrategySuite exercises a five-layer brick-wall strategy on a 5-qubit line.
type StrategySuite struct {
	suite.Suite
	m *coupling.Map
	s *swapstrategy.SwapStrategy
}

func (s *StrategySuite) SetupTest() {
	s.m = lineMap5(s.T())
	strat, err := swapstrategy.New(s.m, []swapstrategy.Layer{layerA, layerB, layerA, layerB, layerA})
	require.NoError(s.T(), err)
	s.s = strat
}

// TestLen verifies the layer count.
func (s *StrategySuite) TestLen() {
	require.Equal(s.T(), 5, s.s.Len())
	require.Equal(s.T(), 5, s.s.NumQubits())
	require.Same(s.T(), s.m, s.s.CouplingMap())
}

// TestInverseComposedPermutation checks every prefix against known values.
func (s *StrategySuite) TestInverseComposedPermutation() {
	want := [][]int{
		{0, 1, 2, 3, 4},
		{1, 0, 3, 2, 4},
		{1, 3, 0, 4, 2},
		{3, 1, 4, 0, 2},
		{3, 4, 1, 2, 0},
		{4, 3, 2, 1, 0},
	}
	for k, w := range want {
		got, err := s.s.InverseComposedPermutation(k)
		require.NoError(s.T(), err)
		require.Equal(s.T(), w, got, "layer %d", k)
	}

	_, err := s.s.InverseComposedPermutation(6)
	require.ErrorIs(s.T(), err, swapstrategy.ErrLayerOutOfRange)
	_, err = s.s.InverseComposedPermutation(-1)
	require.ErrorIs(s.T(), err, swapstrategy.ErrLayerOutOfRange)
}

// TestInverseComposedPermutation_Copy ensures callers cannot corrupt cached prefixes.
func (s *StrategySuite) TestInverseComposedPermutation_Copy() {
	p, err := s.s.InverseComposedPermutation(2)
	require.NoError(s.T(), err)
	p[0] = 99

	again, err := s.s.InverseComposedPermutation(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 3, 0, 4, 2}, again)
}

// TestCompositionConsistency replays ApplySwapLayer on the identity and
// compares against the inverse composed permutation and its inverse.
func (s *StrategySuite) TestCompositionConsistency() {
	running := perm.Identity(s.s.NumQubits())
	for k := 0; k <= s.s.Len(); k++ {
		inv, err := s.s.InverseComposedPermutation(k)
		require.NoError(s.T(), err)
		require.Equal(s.T(), running, inv, "layer %d", k)

		cum, err := s.s.CumulativePermutation(k)
		require.NoError(s.T(), err)
		back, err := perm.Inverse(cum)
		require.NoError(s.T(), err)
		require.Equal(s.T(), inv, back, "layer %d", k)

		if k < s.s.Len() {
			running, err = swapstrategy.ApplySwapLayer(s.s, running, k)
			require.NoError(s.T(), err)
		}
	}
}

// TestCumulativePermutation checks the forward mapping for two layers.
func (s *StrategySuite) TestCumulativePermutation() {
	cum, err := s.s.CumulativePermutation(2)
	require.NoError(s.T(), err)
	// qubit 0 now sits at position 2, qubit 1 at 0, ...
	require.Equal(s.T(), []int{2, 0, 4, 1, 3}, cum)

	_, err = s.s.CumulativePermutation(7)
	require.ErrorIs(s.T(), err, swapstrategy.ErrLayerOutOfRange)
}

// TestApplySwapLayer covers copy and in-place application.
func (s *StrategySuite) TestApplySwapLayer() {
	list := []int{0, 10, 20, 30, 40}

	swapped, err := swapstrategy.ApplySwapLayer(s.s, list, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{10, 0, 30, 20, 40}, swapped)
	require.Equal(s.T(), []int{0, 10, 20, 30, 40}, list, "input must not change")

	swapped, err = swapstrategy.ApplySwapLayerInPlace(s.s, list, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 20, 10, 40, 30}, swapped)
	require.Equal(s.T(), list, swapped)
	require.Same(s.T(), &list[0], &swapped[0])
}

// TestApplySwapLayer_Generic applies a layer to non-integer payloads.
func (s *StrategySuite) TestApplySwapLayer_Generic() {
	names := []string{"q0", "q1", "q2", "q3", "q4"}
	got, err := swapstrategy.ApplySwapLayer(s.s, names, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"q0", "q2", "q1", "q4", "q3"}, got)
}

// TestApplySwapLayer_Errors rejects bad lengths and layer indices.
func (s *StrategySuite) TestApplySwapLayer_Errors() {
	_, err := swapstrategy.ApplySwapLayer(s.s, []int{1, 2, 3}, 0)
	require.ErrorIs(s.T(), err, swapstrategy.ErrSequenceLength)

	_, err = swapstrategy.ApplySwapLayer(s.s, make([]int, 5), 5)
	require.ErrorIs(s.T(), err, swapstrategy.ErrLayerOutOfRange)

	seq := []int{0, 1, 2, 3, 4}
	_, err = swapstrategy.ApplySwapLayerInPlace(s.s, seq, -1)
	require.ErrorIs(s.T(), err, swapstrategy.ErrLayerOutOfRange)
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, seq)
}

// TestSwapLayer returns copies in the original order.
func (s *StrategySuite) TestSwapLayer() {
	l, err := s.s.SwapLayer(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), layerB, l)

	l[0] = swapstrategy.Swap{3, 3}
	again, _ := s.s.SwapLayer(1)
	require.Equal(s.T(), swapstrategy.Swap{1, 2}, again[0])

	_, err = s.s.SwapLayer(5)
	require.ErrorIs(s.T(), err, swapstrategy.ErrLayerOutOfRange)
	require.Len(s.T(), s.s.Layers(), 5)
}

// TestSwappedCouplingMap checks the edge set after three layers.
func (s *StrategySuite) TestSwappedCouplingMap() {
	m, err := s.s.SwappedCouplingMap(3)
	require.NoError(s.T(), err)
	require.ElementsMatch(s.T(), []coupling.Edge{
		{From: 2, To: 0}, {From: 0, To: 4}, {From: 4, To: 1}, {From: 1, To: 3}, {From: 3, To: 1}, {From: 1, To: 4}, {From: 4, To: 0}, {From: 0, To: 2},
	}, m.Edges())

	base, err := s.s.SwappedCouplingMap(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.m.Edges(), base.Edges())

	_, err = s.s.SwappedCouplingMap(6)
	require.ErrorIs(s.T(), err, swapstrategy.ErrLayerOutOfRange)
}

// TestDistanceMatrix checks values, symmetry, zero diagonal and immutability.
func (s *StrategySuite) TestDistanceMatrix() {
	want := [][]int{
		{0, 0, 3, 1, 2},
		{0, 0, 0, 2, 3},
		{3, 0, 0, 0, 1},
		{1, 2, 0, 0, 0},
		{2, 3, 1, 0, 0},
	}
	d := s.s.DistanceMatrix()
	require.True(s.T(), d.Equal(want), "got\n%s", d)
	require.True(s.T(), d.IsSymmetric())
	for i := 0; i < d.Rows(); i++ {
		v, err := d.At(i, i)
		require.NoError(s.T(), err)
		require.Zero(s.T(), v)
	}

	require.ErrorIs(s.T(), d.Set(1, 2, 5), matrix.ErrReadOnly)
	v, _ := s.s.DistanceMatrix().At(1, 2)
	require.Equal(s.T(), 0, v)

	// mutating an exported copy leaves the strategy untouched
	rows := d.ToSlices()
	rows[0][2] = 42
	require.True(s.T(), s.s.DistanceMatrix().Equal(want))
}

// TestMissingCouplings: five layers on five qubits reach everything.
func (s *StrategySuite) TestMissingCouplings() {
	require.Empty(s.T(), s.s.MissingCouplings())
	require.True(s.T(), s.s.ReachesFullConnectivity())
	require.Len(s.T(), s.s.PossibleEdges(), 20)
}

// TestString checks the stable textual form.
func (s *StrategySuite) TestString() {
	want := "SwapStrategy with swap layers:\n" +
		"((0, 1), (2, 3)),\n((1, 2), (3, 4)),\n((0, 1), (2, 3)),\n((1, 2), (3, 4)),\n((0, 1), (2, 3)),\n" +
		"on [[0, 1], [1, 0], [1, 2], [2, 1], [2, 3], [3, 2], [3, 4], [4, 3]] coupling map."
	require.Equal(s.T(), want, s.s.String())
}

// TestConcurrentReads hammers the lazily derived data from many goroutines.
func (s *StrategySuite) TestConcurrentReads() {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.s.DistanceMatrix()
			_ = s.s.MissingCouplings()
			_ = s.s.PossibleEdges()
			_, _ = s.s.SwappedCouplingMap(2)
		}()
	}
	wg.Wait()
	require.True(s.T(), s.s.ReachesFullConnectivity())
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

// TestNew_ConfigurationErrors covers every structural rejection.
func TestNew_ConfigurationErrors(t *testing.T) {
	m := lineMap5(t)
	tests := []struct {
		name   string
		layers []swapstrategy.Layer
		reason error
		layer  int
		qubit  int
	}{
		{
			name:   "swap is not an edge",
			layers: []swapstrategy.Layer{layerA, {{1, 3}, {2, 4}}},
			reason: swapstrategy.ErrNotAnEdge,
			layer:  1,
			qubit:  -1,
		},
		{
			name:   "multiple swaps on one qubit",
			layers: []swapstrategy.Layer{{{0, 1}, {1, 2}}},
			reason: swapstrategy.ErrMultipleSwaps,
			layer:  0,
			qubit:  1,
		},
		{
			name:   "qubit out of range",
			layers: []swapstrategy.Layer{layerA, layerB, {{4, 5}}},
			reason: swapstrategy.ErrQubitOutOfRange,
			layer:  2,
			qubit:  5,
		},
		{
			name:   "negative qubit",
			layers: []swapstrategy.Layer{{{-1, 0}}},
			reason: swapstrategy.ErrQubitOutOfRange,
			layer:  0,
			qubit:  -1,
		},
		{
			name:   "self swap",
			layers: []swapstrategy.Layer{{{2, 2}}},
			reason: swapstrategy.ErrNotAnEdge,
			layer:  0,
			qubit:  -1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := swapstrategy.New(m, tc.layers)
			require.Error(t, err)
			require.ErrorIs(t, err, swapstrategy.ErrConfiguration)
			require.ErrorIs(t, err, tc.reason)

			var ce *swapstrategy.ConfigurationError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, tc.layer, ce.Layer)
			require.Equal(t, tc.qubit, ce.Qubit)
			require.NotEmpty(t, ce.Error())
		})
	}
}

// TestNew_InvalidStrategyOnSmallMap: swaps beyond a 3-qubit map are rejected.
func TestNew_InvalidStrategyOnSmallMap(t *testing.T) {
	m, err := coupling.New([]coupling.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	require.NoError(t, err)

	_, err = swapstrategy.New(m, []swapstrategy.Layer{{{0, 1}, {2, 3}}, {{1, 2}, {3, 4}}})
	require.ErrorIs(t, err, swapstrategy.ErrConfiguration)
}

// TestNew_NilMap rejects a missing coupling map.
func TestNew_NilMap(t *testing.T) {
	_, err := swapstrategy.New(nil, nil)
	require.ErrorIs(t, err, swapstrategy.ErrNilCouplingMap)
}

// TestNew_CopiesLayers guards against aliasing of the caller's layers.
func TestNew_CopiesLayers(t *testing.T) {
	layers := []swapstrategy.Layer{{{0, 1}, {2, 3}}}
	s, err := swapstrategy.New(lineMap5(t), layers)
	require.NoError(t, err)

	layers[0][0] = swapstrategy.Swap{3, 4}
	l, _ := s.SwapLayer(0)
	require.Equal(t, swapstrategy.Swap{0, 1}, l[0])
}

// TestNew_ZeroLayers: identity only; distances are those of the base map.
func TestNew_ZeroLayers(t *testing.T) {
	s, err := swapstrategy.New(lineMap5(t), nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())

	p, err := s.InverseComposedPermutation(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, p)

	_, err = s.SwapLayer(0)
	require.ErrorIs(t, err, swapstrategy.ErrLayerOutOfRange)

	require.Len(t, s.PossibleEdges(), 8)
	require.Len(t, s.MissingCouplings(), 12)
	require.Equal(t, "SwapStrategy with swap layers:\non [[0, 1], [1, 0], [1, 2], [2, 1], [2, 3], [3, 2], [3, 4], [4, 3]] coupling map.", s.String())
}

// TestPossibleEdges: a 4-qubit path with two short layers reaches every ordered pair.
func TestPossibleEdges(t *testing.T) {
	m, err := coupling.New([]coupling.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}})
	require.NoError(t, err)
	s, err := swapstrategy.New(m, []swapstrategy.Layer{{{0, 1}, {2, 3}}, {{1, 2}}})
	require.NoError(t, err)

	var want []coupling.Edge
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				want = append(want, coupling.Edge{From: i, To: j})
			}
		}
	}
	require.Equal(t, want, s.PossibleEdges())
	require.True(t, s.HasPossibleEdge(3, 0))
	require.False(t, s.HasPossibleEdge(2, 2))
	require.Empty(t, s.MissingCouplings())
}

// TestDistanceMatrix_UnreachedReadsZero documents the dual-check contract.
func TestDistanceMatrix_UnreachedReadsZero(t *testing.T) {
	s, err := swapstrategy.New(lineMap5(t), []swapstrategy.Layer{layerA})
	require.NoError(t, err)

	d := s.DistanceMatrix()
	v, err := d.At(0, 4)
	require.NoError(t, err)
	require.Zero(t, v)
	require.False(t, s.HasPossibleEdge(0, 4))
	require.Contains(t, s.MissingCouplings(), coupling.Edge{From: 0, To: 4})
	require.Contains(t, s.MissingCouplings(), coupling.Edge{From: 4, To: 0})
}

// TestMissingCouplings_IsolatedQubits ignores qubits without couplings.
func TestMissingCouplings_IsolatedQubits(t *testing.T) {
	m, err := coupling.New([]coupling.Edge{{From: 0, To: 1}}, coupling.WithNumQubits(4))
	require.NoError(t, err)
	s, err := swapstrategy.New(m, nil)
	require.NoError(t, err)

	require.Empty(t, s.MissingCouplings())
	require.Equal(t, 4, s.DistanceMatrix().Rows())
}
