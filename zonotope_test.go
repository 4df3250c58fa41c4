package zonotope_test

import (
	"context"
	"log/slog"
	"math"
	"math/big"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/zonotope"
	"github.com/katalvlaran/zonotope/cache"
	"github.com/katalvlaran/zonotope/combination"
	"github.com/katalvlaran/zonotope/exact"
	"github.com/katalvlaran/zonotope/halfspace"
	"github.com/katalvlaran/zonotope/matrix"
)

// gens builds a generator matrix or fails the test.
func gens(t testing.TB, rows [][]int64) *matrix.Generators {
	t.Helper()
	g, err := matrix.FromInt64(rows)
	require.NoError(t, err)

	return g
}

// keys renders a facet list as "offset|n1,n2,..." strings.
func keys(hs []halfspace.Hyperplane[*big.Int]) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = halfspace.Key(exact.Int{}, h)
	}

	return out
}

// identity returns the d unit vectors.
func identity(d int) [][]int64 {
	rows := make([][]int64, d)
	for i := range rows {
		rows[i] = make([]int64, d)
		rows[i][i] = 1
	}

	return rows
}

// randomFullRank draws small integer generators until they span the space.
func randomFullRank(t testing.TB, r *rand.Rand, d, n int) [][]int64 {
	t.Helper()
	for {
		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = make([]int64, d)
			for j := range rows[i] {
				rows[i][j] = int64(r.IntN(5) - 2)
			}
		}
		rank, err := combination.Rank[int64](exact.Int64{}, rows)
		require.NoError(t, err)
		if rank == d {
			return rows
		}
	}
}

var knownCases = []struct {
	name   string
	rows   [][]int64
	volume string
	facets []string // nil: only the count is checked
	count  int
}{
	{
		name:   "unit square",
		rows:   identity(2),
		volume: "1",
		facets: []string{"0|0,1", "0|1,0", "1|-1,0", "1|0,-1"},
		count:  4,
	},
	{
		name:   "hexagon",
		rows:   [][]int64{{1, 0}, {0, 1}, {1, 1}},
		volume: "3",
		facets: []string{"0|0,1", "0|1,0", "1|-1,1", "1|1,-1", "2|-1,0", "2|0,-1"},
		count:  6,
	},
	{
		name:   "parallel generators",
		rows:   [][]int64{{1, 0}, {2, 0}, {0, 1}},
		volume: "3",
		facets: []string{"0|0,1", "0|1,0", "1|0,-1", "3|-1,0"},
		count:  4,
	},
	{
		name:   "zero generator",
		rows:   [][]int64{{2, 0}, {0, -3}, {1, 1}, {0, 0}},
		volume: "11",
		facets: []string{"0|1,-1", "0|1,0", "1|0,-1", "3|-1,0", "3|0,1", "5|-1,1"},
		count:  6,
	},
	{
		name:   "3-cube",
		rows:   identity(3),
		volume: "1",
		facets: []string{"0|0,0,1", "0|0,1,0", "0|1,0,0", "1|-1,0,0", "1|0,-1,0", "1|0,0,-1"},
		count:  6,
	},
	{
		name:   "rhombic dodecahedron",
		rows:   [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}},
		volume: "4",
		facets: []string{
			"0|0,0,1", "0|0,1,0", "0|1,0,0",
			"1|-1,0,1", "1|-1,1,0", "1|0,-1,1", "1|0,1,-1", "1|1,-1,0", "1|1,0,-1",
			"2|-1,0,0", "2|0,-1,0", "2|0,0,-1",
		},
		count: 12,
	},
	{
		name:   "five generators in 3d",
		rows:   [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 2, 3}, {2, -1, 1}},
		volume: "26",
		count:  20,
	},
	{
		name:   "4-cube",
		rows:   identity(4),
		volume: "1",
		count:  8,
	},
}

func TestVolume_Known(t *testing.T) {
	for _, tc := range knownCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := zonotope.Volume(gens(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.volume, v.RatString())
		})
	}
}

func TestHalfspaces_Known(t *testing.T) {
	for _, tc := range knownCases {
		t.Run(tc.name, func(t *testing.T) {
			hs, err := zonotope.Halfspaces(gens(t, tc.rows))
			require.NoError(t, err)
			assert.Len(t, hs, tc.count)
			if tc.facets != nil {
				assert.Equal(t, tc.facets, keys(hs))
			}
			for _, h := range hs {
				assert.Nil(t, h.Combination, "combinations are off by default")
			}
		})
	}
}

func TestRationalGenerators(t *testing.T) {
	g, err := matrix.FromStrings([][]string{{"1/2", "0"}, {"0", "1/2"}})
	require.NoError(t, err)

	v, err := zonotope.Volume(g)
	require.NoError(t, err)
	assert.Equal(t, "1/4", v.RatString())

	hs, err := zonotope.Halfspaces(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"0|0,1", "0|1,0", "1|-2,0", "1|0,-2"}, keys(hs))

	// mixed denominators: (1/3, 0), (0, 1/2), (1/6, 1/6)
	g, err = matrix.FromStrings([][]string{{"1/3", "0"}, {"0", "1/2"}, {"1/6", "1/6"}})
	require.NoError(t, err)
	v, err = zonotope.Volume(g)
	require.NoError(t, err)
	// |1/3·1/2| + |1/3·1/6| + |-1/2·1/6| = 1/6 + 1/18 + 1/12
	assert.Equal(t, "11/36", v.RatString())
}

func TestVolume_PermutationAndNegation(t *testing.T) {
	rows := [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 2, 3}, {2, -1, 1}}
	want, err := zonotope.Volume(gens(t, rows))
	require.NoError(t, err)
	wantHS, err := zonotope.Halfspaces(gens(t, rows))
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 10; trial++ {
		perm := slices.Clone(rows)
		r.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		for i := range perm {
			if r.IntN(2) == 0 {
				neg := make([]int64, len(perm[i]))
				for j, x := range perm[i] {
					neg[j] = -x
				}
				perm[i] = neg
			}
		}

		got, err := zonotope.Volume(gens(t, perm))
		require.NoError(t, err)
		assert.Zero(t, want.Cmp(got), "trial %d: %v", trial, perm)

		// negation translates the zonotope: the facet normals are unchanged
		hs, err := zonotope.Halfspaces(gens(t, perm))
		require.NoError(t, err)
		assert.Len(t, hs, len(wantHS))
	}
}

// bruteVolume sums |det| of every d-subset in float64 with gonum.
func bruteVolume(rows [][]int64) float64 {
	d := len(rows[0])
	var total float64
	var rec func(start int, chosen []int)
	rec = func(start int, chosen []int) {
		if len(chosen) == d {
			data := make([]float64, 0, d*d)
			for _, i := range chosen {
				for _, x := range rows[i] {
					data = append(data, float64(x))
				}
			}
			total += math.Abs(mat.Det(mat.NewDense(d, d, data)))
			return
		}
		for i := start; i < len(rows); i++ {
			rec(i+1, append(chosen, i))
		}
	}
	rec(0, nil)

	return total
}

func TestVolume_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 13))
	for trial := 0; trial < 40; trial++ {
		d := 2 + r.IntN(3)
		n := d + r.IntN(4)
		rows := randomFullRank(t, r, d, n)

		v, err := zonotope.Volume(gens(t, rows))
		require.NoError(t, err)
		got, _ := v.Float64()
		assert.InDelta(t, bruteVolume(rows), got, 1e-6, "rows %v", rows)
	}
}

// vertexSums returns the 2^n subset sums of rows.
func vertexSums(rows [][]int64) [][]*big.Int {
	d := len(rows[0])
	out := make([][]*big.Int, 0, 1<<len(rows))
	for mask := 0; mask < 1<<len(rows); mask++ {
		p := make([]*big.Int, d)
		for r := range p {
			p[r] = new(big.Int)
		}
		for i, row := range rows {
			if mask&(1<<i) == 0 {
				continue
			}
			for r, x := range row {
				p[r].Add(p[r], big.NewInt(x))
			}
		}
		out = append(out, p)
	}

	return out
}

func TestHalfspaces_SupportVertexSums(t *testing.T) {
	f := exact.Int{}
	r := rand.New(rand.NewPCG(17, 19))
	for trial := 0; trial < 40; trial++ {
		d := 2 + r.IntN(3)
		n := d + r.IntN(4)
		rows := randomFullRank(t, r, d, n)
		hs, err := zonotope.Halfspaces(gens(t, rows))
		require.NoError(t, err)
		require.NotEmpty(t, hs)

		points := vertexSums(rows)
		for _, h := range hs {
			tight := 0
			for _, p := range points {
				s := halfspace.Eval(f, h, p).Sign()
				require.GreaterOrEqual(t, s, 0, "rows %v facet %s point %v", rows, halfspace.Format(f, h), p)
				if s == 0 {
					tight++
				}
			}
			assert.GreaterOrEqual(t, tight, d, "rows %v facet %s", rows, halfspace.Format(f, h))
		}
	}
}

// det is the Laplace expansion of a small square integer matrix.
func det(m [][]*big.Int) *big.Int {
	if len(m) == 0 {
		return big.NewInt(1)
	}
	sum := new(big.Int)
	for j := range m[0] {
		minor := make([][]*big.Int, 0, len(m)-1)
		for _, row := range m[1:] {
			minor = append(minor, append(slices.Clone(row[:j]), row[j+1:]...))
		}
		term := new(big.Int).Mul(m[0][j], det(minor))
		if j%2 == 1 {
			term.Neg(term)
		}
		sum.Add(sum, term)
	}

	return sum
}

// bruteFacets lists the facet keys of the zonotope spanned by rows/scale
// from the cofactor normal of every (d-1)-subset of rows.
func bruteFacets(rows [][]int64, scale int64) []string {
	f := exact.Int{}
	d := len(rows[0])
	seen := map[string]bool{}
	var rec func(start int, chosen []int)
	rec = func(start int, chosen []int) {
		if len(chosen) < d-1 {
			for i := start; i < len(rows); i++ {
				rec(i+1, append(chosen, i))
			}
			return
		}
		normal := make([]*big.Int, d)
		zero := true
		for j := range normal {
			m := make([][]*big.Int, 0, d-1)
			for _, i := range chosen {
				row := make([]*big.Int, 0, d-1)
				for c, x := range rows[i] {
					if c != j {
						row = append(row, big.NewInt(x))
					}
				}
				m = append(m, row)
			}
			normal[j] = det(m)
			if j%2 == 1 {
				normal[j].Neg(normal[j])
			}
			zero = zero && normal[j].Sign() == 0
		}
		if zero {
			return
		}
		for _, sign := range []int64{1, -1} {
			h := halfspace.Hyperplane[*big.Int]{Normal: make([]*big.Int, d), Offset: new(big.Int)}
			for j, x := range normal {
				h.Normal[j] = new(big.Int).Mul(x, big.NewInt(sign))
			}
			for _, row := range rows {
				dot := new(big.Int)
				for j, x := range row {
					dot.Add(dot, new(big.Int).Mul(h.Normal[j], big.NewInt(x)))
				}
				if dot.Sign() < 0 {
					h.Offset.Sub(h.Offset, dot)
				}
			}
			for j := range h.Normal {
				h.Normal[j].Mul(h.Normal[j], big.NewInt(scale))
			}
			halfspace.Standardize(f, &h)
			seen[halfspace.Key(f, h)] = true
		}
	}
	rec(0, nil)

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}

	return out
}

func TestHalfspaces_MatchBruteForce(t *testing.T) {
	r := rand.New(rand.NewPCG(31, 37))
	for trial := 0; trial < 60; trial++ {
		d := 2 + r.IntN(3)
		n := d + r.IntN(4)
		rows := randomFullRank(t, r, d, n)

		hs, err := zonotope.Halfspaces(gens(t, rows), zonotope.WithWorkers(r.IntN(3)))
		require.NoError(t, err)
		assert.ElementsMatch(t, bruteFacets(rows, 1), keys(hs), "rows %v", rows)
	}

	// rational generators: the same rows divided by 3
	rows := [][]int64{{1, 0, 2}, {0, 1, -1}, {2, 1, 1}, {1, -2, 0}}
	text := make([][]string, len(rows))
	for i, row := range rows {
		for _, x := range row {
			text[i] = append(text[i], big.NewRat(x, 3).RatString())
		}
	}
	g, err := matrix.FromStrings(text)
	require.NoError(t, err)
	hs, err := zonotope.Halfspaces(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, bruteFacets(rows, 3), keys(hs))
}

func TestHalfspaces_Combinations(t *testing.T) {
	f := exact.Int{}
	rows := [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	hs, err := zonotope.Halfspaces(gens(t, rows), zonotope.WithCombinations(true))
	require.NoError(t, err)
	require.Len(t, hs, 12)

	g := gens(t, rows)
	for _, h := range hs {
		require.Len(t, h.Combination, 2)
		assert.True(t, slices.IsSorted(h.Combination))
		for _, i := range h.Combination {
			row, err := g.Row(i)
			require.NoError(t, err)
			dot := new(big.Rat)
			for r, x := range row {
				dot.Add(dot, new(big.Rat).Mul(x, new(big.Rat).SetInt(h.Normal[r])))
			}
			assert.Zero(t, dot.Sign(), "generator %d lies in facet %s", i, halfspace.Format(f, h))
		}
	}
}

func TestErrors(t *testing.T) {
	_, err := zonotope.Volume(nil)
	assert.ErrorIs(t, err, zonotope.ErrNilGenerators)
	_, err = zonotope.Halfspaces(nil)
	assert.ErrorIs(t, err, zonotope.ErrNilGenerators)

	_, err = zonotope.Volume(gens(t, [][]int64{{1, 0, 0}, {0, 1, 0}}))
	assert.ErrorIs(t, err, zonotope.ErrTooFewGenerators)
	_, err = zonotope.Halfspaces(gens(t, [][]int64{{1, 0, 0}, {0, 1, 0}}))
	assert.ErrorIs(t, err, zonotope.ErrTooFewGenerators)

	_, err = zonotope.Halfspaces(gens(t, [][]int64{{1}, {2}}))
	assert.ErrorIs(t, err, zonotope.ErrDimensionTooSmall)

	_, err = zonotope.Halfspaces(gens(t, [][]int64{{1, 0}, {2, 0}, {-1, 0}}))
	assert.ErrorIs(t, err, zonotope.ErrNotFullDimensional)

	// a flat zonotope has zero volume, which is not an error
	v, err := zonotope.Volume(gens(t, [][]int64{{1, 0}, {2, 0}}))
	require.NoError(t, err)
	assert.Zero(t, v.Sign())

	// d = 1: segments add up
	v, err = zonotope.Volume(gens(t, [][]int64{{2}, {-3}}))
	require.NoError(t, err)
	assert.Equal(t, "5", v.RatString())
}

func TestWorkers_EqualSequential(t *testing.T) {
	r := rand.New(rand.NewPCG(23, 29))
	for trial := 0; trial < 10; trial++ {
		d := 2 + r.IntN(3)
		rows := randomFullRank(t, r, d, d+3)
		g := gens(t, rows)

		v1, err := zonotope.Volume(g)
		require.NoError(t, err)
		v4, err := zonotope.Volume(g, zonotope.WithWorkers(4))
		require.NoError(t, err)
		assert.Zero(t, v1.Cmp(v4))

		h1, err := zonotope.Halfspaces(g, zonotope.WithCombinations(true))
		require.NoError(t, err)
		h4, err := zonotope.Halfspaces(g, zonotope.WithCombinations(true), zonotope.WithWorkers(4))
		require.NoError(t, err)
		assert.Equal(t, keys(h1), keys(h4))
		for i := range h1 {
			assert.Equal(t, h1[i].Combination, h4[i].Combination)
		}
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := gens(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}})

	for _, workers := range []int{1, 3} {
		_, err := zonotope.Volume(g, zonotope.WithContext(ctx), zonotope.WithWorkers(workers))
		assert.ErrorIs(t, err, context.Canceled)
		_, err = zonotope.Halfspaces(g, zonotope.WithContext(ctx), zonotope.WithWorkers(workers))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestWithWorkers_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { zonotope.WithWorkers(-1) })
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()
	g := gens(t, [][]int64{{1, 0}, {0, 1}, {1, 1}})

	// cold: computed and stored
	v, err := zonotope.Volume(g, zonotope.WithCache(store), zonotope.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	assert.Equal(t, "3", v.RatString())
	cached, err := cache.GetVolume(ctx, store, g.Digest())
	require.NoError(t, err)
	assert.Equal(t, "3", cached.RatString())

	// warm: the stored value wins, proving no recomputation happened
	require.NoError(t, cache.PutVolume(ctx, store, g.Digest(), big.NewRat(42, 1)))
	v, err = zonotope.Volume(g, zonotope.WithCache(store))
	require.NoError(t, err)
	assert.Equal(t, "42", v.RatString())

	hs, err := zonotope.Halfspaces(g, zonotope.WithCache(store))
	require.NoError(t, err)
	cachedHS, err := cache.GetHalfspaces(ctx, store, g.Digest(), false)
	require.NoError(t, err)
	assert.Equal(t, keys(hs), keys(cachedHS))
	_, err = cache.GetHalfspaces(ctx, store, g.Digest(), true)
	assert.ErrorIs(t, err, cache.ErrNotFound)

	// a corrupt record is logged and recomputed
	require.NoError(t, store.Set(ctx, cache.VolumeKey(g.Digest()), []byte{0xc1}))
	v, err = zonotope.Volume(g, zonotope.WithCache(store))
	require.NoError(t, err)
	assert.Equal(t, "3", v.RatString())
}

func TestVolumeOf_Fields(t *testing.T) {
	rows := [][]int64{{1, 0}, {0, 1}, {1, 1}}

	vi, err := zonotope.VolumeOf[int64](exact.Int64{}, rows)
	require.NoError(t, err)
	assert.Equal(t, int64(3), vi)

	fl := [][]float64{{0.5, 0}, {0, 0.5}, {0.5, 0.5}}
	vf, err := zonotope.VolumeOf[float64](exact.Float64{}, fl)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, vf, 1e-12)

	rat := [][]*big.Rat{
		{big.NewRat(1, 3), big.NewRat(0, 1)},
		{big.NewRat(0, 1), big.NewRat(1, 2)},
	}
	vr, err := zonotope.VolumeOf[*big.Rat](exact.Rat{}, rat)
	require.NoError(t, err)
	assert.Equal(t, "1/6", vr.RatString())

	_, err = zonotope.VolumeOf[int64](exact.Int64{}, nil)
	assert.ErrorIs(t, err, combination.ErrBadRows)
}

func TestHalfspacesOf_Fields(t *testing.T) {
	rows := [][]int64{{1, 0}, {0, 1}, {1, 1}}
	hs, err := zonotope.HalfspacesOf[int64](exact.Int64{}, rows)
	require.NoError(t, err)
	require.Len(t, hs, 6)
	assert.Equal(t, halfspace.Hyperplane[int64]{Offset: 0, Normal: []int64{0, 1}}, hs[0])

	fl := [][]float64{{1, 0}, {0, 1}}
	hf, err := zonotope.HalfspacesOf[float64](exact.Float64{}, fl)
	require.NoError(t, err)
	require.Len(t, hf, 4)
	f := exact.Float64{}
	for _, p := range [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}} {
		for _, h := range hf {
			assert.True(t, halfspace.Contains(f, h, p))
		}
	}
	assert.False(t, halfspace.Contains(f, hf[len(hf)-1], []float64{2, 2}))
}

func TestColumnMajor(t *testing.T) {
	v, err := zonotope.VolumeColumnMajor(2, 3, []float64{1, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, "3", v.RatString())

	flat, err := zonotope.HalfspacesColumnMajor(2, 3, []int64{1, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 0, 1, 0, 1, -1, 1, 1, 1, -1, 2, -1, 0, 2, 0, -1}, flat)

	_, err = zonotope.VolumeColumnMajor(2, 3, []float64{1, 0, 0})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = zonotope.VolumeColumnMajor(0, 3, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = zonotope.VolumeColumnMajor(2, 1, []float64{math.NaN(), 0})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	// the facet with normal (1,-2^62) has offset 2^124
	const l = int64(1) << 62
	_, err = zonotope.HalfspacesColumnMajor(2, 3, []int64{l, 0, 0, l, l, 1})
	assert.ErrorIs(t, err, exact.ErrOverflow)
}
