// Package fixture generates, stores and checks regression cases for rmq:
// an array, a list of queries and the expected answers.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/samber/lo"
	"github.com/ugorji/go/codec"

	rmq "github.com/AlexWan0/go-rmq"
)

// ErrMismatch is returned by Check when an answer differs from the expected one.
var ErrMismatch = errors.New("fixture: answer mismatch")

// Query is a closed range [Left, Right] of positions.
type Query struct {
	Left  uint64 `codec:"l"`
	Right uint64 `codec:"r"`
}

// Case is one regression case. Answers is parallel to Queries and may be empty
// for a case that has not been answered yet.
type Case struct {
	Values  []int64 `codec:"values"`
	Queries []Query `codec:"queries"`
	Answers []int64 `codec:"answers,omitempty"`
}

// Config controls Generate. Fields are used as given; start from DefaultConfig
// to get the generator defaults.
type Config struct {
	Size     int
	QueryNum int
	Min      int64
	Max      int64
	Seed     int64
}

// DefaultConfig returns the generator defaults.
func DefaultConfig() Config {
	return Config{
		Size:     1000000,
		QueryNum: 1000000,
		Min:      -1000000,
		Max:      1000000,
		Seed:     1,
	}
}

// valueFunc returns a generator of uniform values in [low, high].
func valueFunc(rg *rand.Rand, low, high int64) func(int) int64 {
	// span wraps to 0 when the range covers all of int64.
	span := uint64(high) - uint64(low) + 1
	switch {
	case span == 0:
		return func(int) int64 { return int64(rg.Uint64()) }
	case span <= math.MaxInt64:
		return func(int) int64 { return low + rg.Int63n(int64(span)) }
	}
	return func(int) int64 {
		for {
			if v := rg.Uint64(); v < span {
				return int64(uint64(low) + v)
			}
		}
	}
}

// Generate returns a random case with answers computed by a plain sparse table.
func Generate(cfg Config) (*Case, error) {
	if cfg.Size < 0 || cfg.QueryNum < 0 || cfg.Min > cfg.Max {
		return nil, fmt.Errorf("fixture: bad config %+v", cfg)
	}
	rg := rand.New(rand.NewSource(cfg.Seed))
	c := &Case{
		Values: lo.Times(cfg.Size, valueFunc(rg, cfg.Min, cfg.Max)),
	}
	if cfg.Size == 0 {
		return c, nil
	}
	c.Queries = lo.Times(cfg.QueryNum, func(int) Query {
		l := uint64(rg.Intn(cfg.Size))
		r := l + uint64(rg.Intn(cfg.Size-int(l)))
		return Query{l, r}
	})
	st := rmq.NewSparseTable(c.Values)
	c.Answers = make([]int64, len(c.Queries))
	for i, q := range c.Queries {
		ans, err := st.Min(q.Left, q.Right)
		if err != nil {
			return nil, fmt.Errorf("fixture: query %d [%d, %d]: %w", i, q.Left, q.Right, err)
		}
		c.Answers[i] = ans
	}
	return c, nil
}

// Solve answers every query of c with an rmq.Solver.
func Solve(c *Case) ([]int64, error) {
	s := rmq.New(c.Values)
	answers := make([]int64, len(c.Queries))
	for i, q := range c.Queries {
		if q.Left >= s.Num() || q.Right >= s.Num() {
			return nil, fmt.Errorf("fixture: query %d [%d, %d]: %w", i, q.Left, q.Right, rmq.ErrOutOfRange)
		}
		ans, err := s.Query(q.Left, q.Right)
		if err != nil {
			return nil, fmt.Errorf("fixture: query %d: %w", i, err)
		}
		answers[i] = ans
	}
	return answers, nil
}

// Check solves c and compares the result with c.Answers.
func Check(c *Case) error {
	if len(c.Answers) != len(c.Queries) {
		return fmt.Errorf("%w: %d answers for %d queries", ErrMismatch, len(c.Answers), len(c.Queries))
	}
	got, err := Solve(c)
	if err != nil {
		return err
	}
	for i := range got {
		if got[i] != c.Answers[i] {
			q := c.Queries[i]
			return fmt.Errorf("%w: query %d [%d, %d]: got %d, want %d",
				ErrMismatch, i, q.Left, q.Right, got[i], c.Answers[i])
		}
	}
	return nil
}

// MarshalBinary encodes c into msgpack.
func (c *Case) MarshalBinary() (out []byte, err error) {
	var mh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &mh)
	err = enc.Encode(c)
	return
}

// UnmarshalBinary decodes c from the form generated by MarshalBinary.
func (c *Case) UnmarshalBinary(in []byte) error {
	var mh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &mh)
	return dec.Decode(c)
}

// Encode writes c to w in msgpack.
func Encode(w io.Writer, c *Case) error {
	var mh codec.MsgpackHandle
	if err := codec.NewEncoder(w, &mh).Encode(c); err != nil {
		return fmt.Errorf("fixture: encode: %w", err)
	}
	return nil
}

// Decode reads a msgpack case from r.
func Decode(r io.Reader) (*Case, error) {
	var mh codec.MsgpackHandle
	c := new(Case)
	if err := codec.NewDecoder(r, &mh).Decode(c); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	return c, nil
}
