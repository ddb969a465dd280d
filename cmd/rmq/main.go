// Command rmq reads an array and range queries from stdin and prints the
// minimum of every queried range, separated by spaces.
//
// By default the input is the tagged format ("k <value>" and "q <left> <right>").
// With -counted it is a value count, the values, a query count and the query pairs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/AlexWan0/go-rmq/internal/fixture"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rmq: ")
	counted := flag.Bool("counted", false, "read the count-prefixed format")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *counted); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer, counted bool) error {
	parse := fixture.ParseText
	if counted {
		parse = fixture.ParseCounted
	}
	c, err := parse(bufio.NewReader(in))
	if err != nil {
		return err
	}
	answers, err := fixture.Solve(c)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	return fixture.WriteAnswers(out, answers)
}
