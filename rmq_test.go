package rmq

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

var rg = rand.New(rand.NewSource(0))

func randomInts(num int, low, high int) []int {
	return lo.Times(num, func(int) int { return low + rg.Intn(high-low+1) })
}

// countMismatches compares every query(i, j), i <= j, against a running minimum.
func countMismatches(vals []int, query func(i, j uint64) (int, error)) int {
	bad := 0
	for i := range vals {
		cur := vals[i]
		for j := i; j < len(vals); j++ {
			if vals[j] < cur {
				cur = vals[j]
			}
			got, err := query(uint64(i), uint64(j))
			if err != nil || got != cur {
				bad++
			}
		}
	}
	return bad
}

func buildSolverHelper(vals []int) *Solver[int] {
	b := NewBuilder[int]()
	for _, v := range vals {
		b.PushBack(v)
	}
	return b.Build()
}

func TestSolver(t *testing.T) {
	Convey("When a sequence is empty", t, func() {
		s := New[int](nil)
		So(s.Num(), ShouldEqual, 0)
		So(s.Tour().Len(), ShouldEqual, 0)
		_, err := s.Query(0, 0)
		So(err, ShouldEqual, ErrEmpty)

		s = NewBuilder[int]().Build()
		_, err = s.Query(0, 0)
		So(err, ShouldEqual, ErrEmpty)
	})
	Convey("When a sequence has one element", t, func() {
		s := New([]int{1})
		v, err := s.Query(0, 0)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 1)
	})
	Convey("When two equal elements are queried", t, func() {
		s := New([]int{1, 1})
		v, err := s.Query(0, 1)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 1)
	})
	Convey("When the minimum sits at either end", t, func() {
		vals := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
		So(lo.Must(New(vals).Query(0, 11)), ShouldEqual, 1)

		vals[11] = -1
		So(lo.Must(New(vals).Query(0, 11)), ShouldEqual, -1)

		vals[11], vals[0] = 1, -1
		So(lo.Must(New(vals).Query(0, 11)), ShouldEqual, -1)
	})
	Convey("When keys are given in reverse order", t, func() {
		vals := []int{5, 3, 8, 1, 9, 2}
		s := New(vals)
		So(lo.Must(s.Query(4, 1)), ShouldEqual, 1)
		So(lo.Must(s.Query(5, 4)), ShouldEqual, 2)
		So(lo.Must(s.Query(2, 2)), ShouldEqual, 8)
	})
	Convey("When all elements are equal", t, func() {
		vals := lo.Times(300, func(int) int { return 7 })
		s := New(vals)
		So(countMismatches(vals, s.Query), ShouldEqual, 0)
	})
	Convey("When the sequence is increasing", t, func() {
		vals := lo.Times(1000, func(i int) int { return i - 50 })
		s := New(vals)
		So(countMismatches(vals, s.Query), ShouldEqual, 0)
	})
	Convey("When the sequence is decreasing", t, func() {
		vals := lo.Times(1000, func(i int) int { return 1000 - i })
		s := New(vals)
		So(countMismatches(vals, s.Query), ShouldEqual, 0)
	})
	Convey("When a random sequence is checked exhaustively", t, func() {
		vals := randomInts(1000, -100000, 100000)
		s := buildSolverHelper(vals)
		So(s.Num(), ShouldEqual, 1000)
		So(countMismatches(vals, s.Query), ShouldEqual, 0)
	})
	Convey("When short random sequences are checked exhaustively", t, func() {
		bad := 0
		for num := 1; num <= 70; num++ {
			vals := randomInts(num, -5, 5)
			bad += countMismatches(vals, New(vals).Query)
		}
		So(bad, ShouldEqual, 0)
	})
	Convey("When a large random sequence is sampled", t, func() {
		num := 200000
		vals := randomInts(num, -1000000, 1000000)
		s := New(vals)
		bad := 0
		for q := 0; q < 20000; q++ {
			i, j := rg.Intn(num), rg.Intn(num)
			want := lo.Min(vals[min(i, j) : max(i, j)+1])
			if got, err := s.Query(uint64(i), uint64(j)); err != nil || got != want {
				bad++
			}
		}
		So(bad, ShouldEqual, 0)
	})
	Convey("When a solver is built twice from the same sequence", t, func() {
		vals := randomInts(500, -10, 10)
		a, b := New(vals), buildSolverHelper(vals)
		So(a.Tour().Depths(), ShouldResemble, b.Tour().Depths())
		same := true
		for q := 0; q < 2000; q++ {
			i, j := uint64(rg.Intn(500)), uint64(rg.Intn(500))
			if lo.Must(a.Query(i, j)) != lo.Must(b.Query(i, j)) {
				same = false
			}
		}
		So(same, ShouldBeTrue)
	})
	Convey("When values are strings", t, func() {
		s := New([]string{"pear", "fig", "plum", "apple", "kiwi"})
		So(lo.Must(s.Query(0, 2)), ShouldEqual, "fig")
		So(lo.Must(s.Query(1, 4)), ShouldEqual, "apple")
		So(lo.Must(s.Query(4, 4)), ShouldEqual, "kiwi")
	})
}

// -----------------------------------------------------------------------------
// Benchmarks
//

const (
	N = 1000000 // 1M 10^6
)

type benchFixture struct {
	vals   []int
	solver *Solver[int]
	table  *SparseTable[int]
}

var bf *benchFixture // = nil

func initBenchFixture(b *testing.B) {
	if bf != nil {
		return
	}
	vals := randomInts(N, -1000000, 1000000)
	bf = &benchFixture{vals: vals, solver: New(vals), table: NewSparseTable(vals)}
	fmt.Printf("{N = %v is used in the benchmarks below}\n\t\t\t\t", N)
}

func BenchmarkSolver_Build(b *testing.B) {
	initBenchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(bf.vals)
	}
}

func BenchmarkSolver_Query(b *testing.B) {
	initBenchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bf.solver.Query(uint64(rg.Intn(N)), uint64(rg.Intn(N)))
	}
}

func BenchmarkSparseTable_Build(b *testing.B) {
	initBenchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewSparseTable(bf.vals)
	}
}

func BenchmarkSparseTable_Min(b *testing.B) {
	initBenchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, r := uint64(rg.Intn(N)), uint64(rg.Intn(N))
		if l > r {
			l, r = r, l
		}
		bf.table.Min(l, r)
	}
}

func BenchmarkRaw_Min(b *testing.B) {
	initBenchFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, r := rg.Intn(N), rg.Intn(N)
		lo.Min(bf.vals[min(l, r) : max(l, r)+1])
	}
}
