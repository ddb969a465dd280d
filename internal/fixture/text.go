package fixture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// maxPrealloc caps capacity hints taken from counts in the input.
const maxPrealloc = 1 << 20

// ErrSyntax is returned for malformed text input.
var ErrSyntax = errors.New("fixture: syntax error")

type tokenizer struct {
	sc  *bufio.Scanner
	pos int // tokens read so far
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

// next returns the next token; ok is false at the end of input.
func (tk *tokenizer) next() (tok string, ok bool, err error) {
	if !tk.sc.Scan() {
		return "", false, tk.sc.Err()
	}
	tk.pos++
	return tk.sc.Text(), true, nil
}

func (tk *tokenizer) readInt() (int64, error) {
	tok, ok, err := tk.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of input after token %d", ErrSyntax, tk.pos)
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q: %v", ErrSyntax, tk.pos, tok, err)
	}
	return v, nil
}

func (tk *tokenizer) readUint() (uint64, error) {
	tok, ok, err := tk.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of input after token %d", ErrSyntax, tk.pos)
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q: %v", ErrSyntax, tk.pos, tok, err)
	}
	return v, nil
}

// ParseText reads the tagged format: "k <value>" appends a value and
// "q <left> <right>" appends a query. Tokens are separated by any whitespace.
func ParseText(r io.Reader) (*Case, error) {
	tk := newTokenizer(r)
	c := new(Case)
	for {
		tag, ok, err := tk.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return c, nil
		}
		switch tag {
		case "k":
			v, err := tk.readInt()
			if err != nil {
				return nil, err
			}
			c.Values = append(c.Values, v)
		case "q":
			left, err := tk.readUint()
			if err != nil {
				return nil, err
			}
			right, err := tk.readUint()
			if err != nil {
				return nil, err
			}
			c.Queries = append(c.Queries, Query{left, right})
		default:
			return nil, fmt.Errorf("%w: token %d: unknown tag %q", ErrSyntax, tk.pos, tag)
		}
	}
}

// ParseCounted reads the counted format: N, then N values, then Q, then Q pairs
// of positions.
func ParseCounted(r io.Reader) (*Case, error) {
	tk := newTokenizer(r)
	num, err := tk.readUint()
	if err != nil {
		return nil, err
	}
	c := &Case{Values: make([]int64, 0, min(num, maxPrealloc))}
	for i := uint64(0); i < num; i++ {
		v, err := tk.readInt()
		if err != nil {
			return nil, err
		}
		c.Values = append(c.Values, v)
	}
	qnum, err := tk.readUint()
	if err != nil {
		return nil, err
	}
	c.Queries = make([]Query, 0, min(qnum, maxPrealloc))
	for i := uint64(0); i < qnum; i++ {
		left, err := tk.readUint()
		if err != nil {
			return nil, err
		}
		right, err := tk.readUint()
		if err != nil {
			return nil, err
		}
		c.Queries = append(c.Queries, Query{left, right})
	}
	return c, nil
}

// WriteText writes the values and queries of c in the tagged format.
func WriteText(w io.Writer, c *Case) error {
	bw := bufio.NewWriter(w)
	for _, v := range c.Values {
		fmt.Fprintf(bw, "k %d ", v)
	}
	for _, q := range c.Queries {
		fmt.Fprintf(bw, "q %d %d ", q.Left, q.Right)
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// WriteAnswers writes answers separated by spaces.
func WriteAnswers(w io.Writer, answers []int64) error {
	bw := bufio.NewWriter(w)
	for i, a := range answers {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatInt(a, 10))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// ReadAnswers reads whitespace separated answers until the end of r.
func ReadAnswers(r io.Reader) ([]int64, error) {
	tk := newTokenizer(r)
	var answers []int64
	for {
		tok, ok, err := tk.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return answers, nil
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: answer %d %q: %v", ErrSyntax, tk.pos, tok, err)
		}
		answers = append(answers, v)
	}
}
