package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	rmq "github.com/AlexWan0/go-rmq"
	"github.com/AlexWan0/go-rmq/internal/fixture"
)

func smallOptions(dir, format string) options {
	return options{
		num:    3,
		dir:    dir,
		format: format,
		cfg:    fixture.Config{Size: 500, QueryNum: 800, Min: -20, Max: 20, Seed: 11},
	}
}

func TestGenerateAndCheck(t *testing.T) {
	Convey("When text cases are generated", t, func() {
		dir := t.TempDir()
		So(generate(smallOptions(dir, "text")), ShouldBeNil)

		test := filepath.Join(dir, testsDir, "test2.txt")
		answer := filepath.Join(dir, answersDir, "answer2.txt")
		passed, err := checkFiles([]string{test, answer})
		So(err, ShouldBeNil)
		So(passed, ShouldBeTrue)

		Convey("A wrong answer file does not pass", func() {
			So(os.WriteFile(answer, []byte("1 2 3\n"), 0o644), ShouldBeNil)
			passed, err := checkFiles([]string{test, answer})
			So(err, ShouldBeNil)
			So(passed, ShouldBeFalse)
		})
		Convey("Generating again replaces the old files", func() {
			opts := smallOptions(dir, "text")
			opts.num = 1
			So(generate(opts), ShouldBeNil)
			entries, err := os.ReadDir(filepath.Join(dir, testsDir))
			So(err, ShouldBeNil)
			So(len(entries), ShouldEqual, 1)
		})
	})
	Convey("When msgpack cases are generated", t, func() {
		dir := t.TempDir()
		So(generate(smallOptions(dir, "msgpack")), ShouldBeNil)
		passed, err := checkFiles([]string{filepath.Join(dir, testsDir, "test3.msgpack")})
		So(err, ShouldBeNil)
		So(passed, ShouldBeTrue)
	})
	Convey("When a case has a query past the end", t, func() {
		dir := t.TempDir()
		test := filepath.Join(dir, "test.txt")
		answer := filepath.Join(dir, "answer.txt")
		So(os.WriteFile(test, []byte("k 1 k 2 q 0 5\n"), 0o644), ShouldBeNil)
		So(os.WriteFile(answer, []byte("1\n"), 0o644), ShouldBeNil)
		passed, err := checkFiles([]string{test, answer})
		So(err, ShouldWrap, rmq.ErrOutOfRange)
		So(passed, ShouldBeFalse)
	})
	Convey("When empty cases are generated", t, func() {
		dir := t.TempDir()
		opts := smallOptions(dir, "text")
		opts.cfg.Size = 0
		So(generate(opts), ShouldBeNil)
		data, err := os.ReadFile(filepath.Join(dir, testsDir, "test1.txt"))
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "\n")
		passed, err := checkFiles([]string{filepath.Join(dir, testsDir, "test1.txt"), filepath.Join(dir, answersDir, "answer1.txt")})
		So(err, ShouldBeNil)
		So(passed, ShouldBeTrue)
	})
	Convey("When the format is unknown", t, func() {
		So(generate(smallOptions(t.TempDir(), "csv")), ShouldNotBeNil)
	})
	Convey("When check gets the wrong arguments", t, func() {
		_, err := checkFiles(nil)
		So(err, ShouldNotBeNil)
		_, err = checkFiles([]string{filepath.Join(t.TempDir(), "missing.txt"), "x"})
		So(err, ShouldNotBeNil)
	})
}
