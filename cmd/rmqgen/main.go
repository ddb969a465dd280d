// Command rmqgen writes random regression cases for rmq and checks them.
//
//	rmqgen -n 5 -dir resources               writes resources/tests/testN.txt and resources/answers/answerN.txt
//	rmqgen -n 5 -format msgpack               writes resources/tests/testN.msgpack with the answers inside
//	rmqgen -check resources/tests/test1.txt resources/answers/answer1.txt
//	rmqgen -check resources/tests/test1.msgpack
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/AlexWan0/go-rmq/internal/fixture"
)

const (
	testsDir   = "tests"
	answersDir = "answers"
)

type options struct {
	num    int
	dir    string
	format string
	cfg    fixture.Config
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("rmqgen: ")

	def := fixture.DefaultConfig()
	var opts options
	check := flag.Bool("check", false, "check a case file (and its answer file for the text format)")
	flag.IntVar(&opts.num, "n", 1, "number of cases to generate")
	flag.StringVar(&opts.dir, "dir", "resources", "output directory")
	flag.StringVar(&opts.format, "format", "text", "case format: text or msgpack")
	flag.IntVar(&opts.cfg.Size, "size", def.Size, "values per case")
	flag.IntVar(&opts.cfg.QueryNum, "queries", def.QueryNum, "queries per case")
	flag.Int64Var(&opts.cfg.Min, "min", def.Min, "smallest value")
	flag.Int64Var(&opts.cfg.Max, "max", def.Max, "largest value")
	flag.Int64Var(&opts.cfg.Seed, "seed", def.Seed, "seed of the first case; case i uses seed+i")
	flag.Parse()

	if *check {
		passed, err := checkFiles(flag.Args())
		if err != nil {
			log.Fatal(err)
		}
		if passed {
			fmt.Println("passed")
		} else {
			fmt.Println("not passed")
		}
		return
	}
	if err := generate(opts); err != nil {
		log.Fatal(err)
	}
}

// resetDir creates dir or removes the files already in it.
func resetDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func generate(opts options) error {
	if opts.format != "text" && opts.format != "msgpack" {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	tests := filepath.Join(opts.dir, testsDir)
	answers := filepath.Join(opts.dir, answersDir)
	if err := resetDir(tests); err != nil {
		return err
	}
	if opts.format == "text" {
		if err := resetDir(answers); err != nil {
			return err
		}
	}
	for i := 1; i <= opts.num; i++ {
		cfg := opts.cfg
		cfg.Seed += int64(i - 1)
		c, err := fixture.Generate(cfg)
		if err != nil {
			return err
		}
		if opts.format == "msgpack" {
			err = writeFile(filepath.Join(tests, fmt.Sprintf("test%d.msgpack", i)), func(w io.Writer) error {
				return fixture.Encode(w, c)
			})
		} else {
			err = writeFile(filepath.Join(tests, fmt.Sprintf("test%d.txt", i)), func(w io.Writer) error {
				return fixture.WriteText(w, c)
			})
			if err == nil {
				err = writeFile(filepath.Join(answers, fmt.Sprintf("answer%d.txt", i)), func(w io.Writer) error {
					return fixture.WriteAnswers(w, c.Answers)
				})
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}

func readFile[R any](name string, read func(io.Reader) (R, error)) (R, error) {
	f, err := os.Open(name)
	if err != nil {
		var zero R
		return zero, err
	}
	defer f.Close()
	r, err := read(f)
	if err != nil {
		return r, fmt.Errorf("%s: %w", name, err)
	}
	return r, nil
}

// checkFiles reports whether the case in args passes. A ".msgpack" case carries
// its own answers; a text case needs the answer file as the second argument.
func checkFiles(args []string) (bool, error) {
	var (
		c   *fixture.Case
		err error
	)
	switch {
	case len(args) == 1 && filepath.Ext(args[0]) == ".msgpack":
		c, err = readFile(args[0], fixture.Decode)
	case len(args) == 2:
		c, err = readFile(args[0], fixture.ParseText)
		if err == nil {
			c.Answers, err = readFile(args[1], fixture.ReadAnswers)
		}
	default:
		return false, fmt.Errorf("-check wants <case.msgpack> or <case.txt> <answers.txt>, got %d arguments", len(args))
	}
	if err != nil {
		return false, err
	}
	err = fixture.Check(c)
	if errors.Is(err, fixture.ErrMismatch) {
		return false, nil
	}
	return err == nil, err
}
