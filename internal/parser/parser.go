// Package parser puts command-line arguments into SearchConfig or NodeInit structures and validates them
package parser

import (
	"errors"
	"flag"
	"io"
	"slices"

	"github.com/lucascesar918/grepzilla/internal/model"
)

const (
	FlagHelp        = "--help"
	FlagIgnoreCase  = "--ignore_case"
	FlagInvertMatch = "--invert_match"
)

// UsageError is returned when the arguments can't form a valid SearchConfig.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

var ErrNotEnoughArgs = &UsageError{Msg: "Expected more arguments!"}

// Parse builds SearchConfig from args (program name excluded).
// Query and source are taken by index: args[0] and args[1], flags don't shift them.
func Parse(args []string) (model.SearchConfig, error) {
	// --help важнее всех остальных проверок
	if slices.Contains(args, FlagHelp) {
		return model.SearchConfig{HelpRequested: true}, nil
	}

	if len(args) < 2 {
		return model.SearchConfig{}, ErrNotEnoughArgs
	}

	return model.SearchConfig{
		Query:       args[0],
		Source:      args[1],
		IgnoreCase:  slices.Contains(args, FlagIgnoreCase),
		InvertMatch: slices.Contains(args, FlagInvertMatch),
	}, nil
}

// ParseNodeArgs reads launch parameters of the search node.
func ParseNodeArgs(args []string) (*model.NodeInit, error) {
	var ni model.NodeInit
	flagParser := flag.NewFlagSet("grepzilla-node", flag.ContinueOnError)
	flagParser.SetOutput(io.Discard)
	flagParser.StringVar(&ni.Address, "address", "", "specify search-node address, e.g. ':8080'")
	flagParser.StringVar(&ni.ConfigPath, "config", "", "path to YAML config file (optional)")
	flagParser.StringVar(&ni.Env, "env", "", "environment: 'local' or 'prod'")

	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	if ni.Address == "" && ni.ConfigPath == "" {
		return nil, errors.New("empty search-node address: set -address or -config")
	}

	return &ni, nil
}
