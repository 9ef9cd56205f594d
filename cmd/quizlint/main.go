// Command quizlint checks a directory of quiz YAML files and reports every
// problem it finds.
//
//	quizlint [-v] [dir]
//
// With no dir the embedded quizzes are checked. The exit code is 1 when any
// file is invalid.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vytor/cyberquest/internal/catalog"
	"github.com/vytor/cyberquest/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("quizlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log every parsed file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "usage: quizlint [-v] [dir]")
		return 2
	}

	level := logger.WARN
	if *verbose {
		level = logger.DEBUG
	}
	log := logger.New(logger.WithOutput(stderr), logger.WithLevel(level))
	ctx := logger.NewContext(context.Background(), log)

	var (
		c   *catalog.Catalog
		err error
	)
	if dir := fs.Arg(0); dir != "" {
		c, err = catalog.LoadDir(ctx, dir)
	} else {
		c, err = catalog.Embedded(ctx)
	}
	if err != nil {
		fmt.Fprintf(stderr, "quizlint: %v\n", err)
		return 1
	}

	for _, e := range c.List() {
		fmt.Fprintf(stdout, "ok  %-16s %-14s %2d questions  %s\n", e.ID, e.Topic, e.QuestionCount, e.Title)
	}
	return 0
}
