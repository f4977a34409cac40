// Command dto2form prints the form encoding of a YAML or JSON document.
//
//	dto2form -in request.yaml
//	echo '{"user": {"name": "Jane"}}' | dto2form
//
// Nested mappings become bracketed field names and keys are written in
// sorted order. Sequences and booleans have no form encoding and are
// rejected.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/flakey-bit/dtoform"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "dto2form: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("dto2form", flag.ContinueOnError)
	in := fs.String("in", "", "YAML or JSON document to encode, stdin if empty")
	verbose := fs.Bool("v", false, "log encoding details to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
	}
	defer logger.Sync() //nolint:errcheck

	doc, err := load(*in, stdin)
	if err != nil {
		return err
	}
	logger.Debug("loaded document", zap.String("source", source(*in)), zap.Int("keys", len(doc)))

	if err := dtoform.NewEncoder(stdout, dtoform.WithLogger(logger)).Encode(doc); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout)
	return err
}

func source(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
