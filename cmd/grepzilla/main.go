package main

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/lucascesar918/grepzilla/internal/appmode"
	"github.com/lucascesar918/grepzilla/internal/parser"
	"github.com/mattn/go-isatty"
)

var errPrefix = color.New(color.FgRed, color.Bold)

func main() {
	// цвет только если stderr - терминал, в пайпы пишем чистый текст
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		errPrefix.EnableColor()
	} else {
		errPrefix.DisableColor()
	}

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parser.Parse(args)
	if err != nil {
		var usageErr *parser.UsageError
		if errors.As(err, &usageErr) {
			errPrefix.Fprint(stderr, "Bad usage:")
			io.WriteString(stderr, " "+usageErr.Error()+"\n")
			appmode.PrintHelp(stdout)
			return 1
		}
		errPrefix.Fprint(stderr, "Application error:")
		io.WriteString(stderr, " "+err.Error()+"\n")
		return 1
	}

	if err := appmode.RunSearch(cfg, stdout); err != nil {
		errPrefix.Fprint(stderr, "Application error:")
		io.WriteString(stderr, " "+err.Error()+"\n")
		return 1
	}

	return 0
}
