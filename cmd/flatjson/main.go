// Command flatjson flattens a JSON document and prints the headers and SQL
// literals for loading it into a database table.
//
// Without -in it formats a built-in sample document.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/ehsanranjbar/flatjson/dbformat"
	"github.com/ehsanranjbar/flatjson/flatten"
	"github.com/ehsanranjbar/flatjson/store"
	"github.com/ehsanranjbar/flatjson/value"
)

type config struct {
	in           string
	root         string
	maxDepth     int
	ignoreNull   bool
	nestedArrays bool
	table        string
	db           string
	verbose      bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("flatjson", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "JSON document to flatten, - for stdin (default: built-in sample)")
	fs.StringVar(&cfg.root, "root", "", "dot separated path of the object to flatten")
	fs.IntVar(&cfg.maxDepth, "max-depth", flatten.DefaultMaxDepth, "maximum nesting depth")
	fs.BoolVar(&cfg.ignoreNull, "ignore-null", false, "omit null values")
	fs.BoolVar(&cfg.nestedArrays, "nested-arrays", false, "expand arrays nested directly in arrays")
	fs.StringVar(&cfg.table, "table", "", "also print an INSERT statement for this table")
	fs.StringVar(&cfg.db, "db", "", "stage the flattened row in the BadgerDB at this directory")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(cfg, stdin, stdout, logger); err != nil {
		logger.Error("flatjson failed", "error", err)
		return err
	}
	return nil
}

func execute(cfg *config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	doc, err := load(cfg.in, stdin)
	if err != nil {
		return err
	}
	doc, err = value.Extract(doc, cfg.root)
	if err != nil {
		return fmt.Errorf("failed to select root %q: %w", cfg.root, err)
	}

	f := flatten.New(
		flatten.WithMaxDepth(cfg.maxDepth),
		flatten.WithIgnoreNull(cfg.ignoreNull),
		flatten.WithNestedArrays(cfg.nestedArrays),
	)
	rec, err := f.Flatten(doc)
	if err != nil {
		return err
	}
	result, err := dbformat.FormatRecord(rec)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Flattened Structure:")
	fmt.Fprintln(stdout, string(out))
	if cfg.table != "" {
		fmt.Fprintln(stdout, result.InsertStatement(cfg.table))
	}

	if cfg.db != "" {
		return stage(cfg.db, rec, logger)
	}
	return nil
}

func load(path string, stdin io.Reader) (any, error) {
	switch path {
	case "":
		return sample, nil
	case "-":
		return value.Decode(stdin)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return value.Decode(f)
	}
}

func stage(dir string, rec *flatten.Record, logger *slog.Logger) error {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	rows := store.New([]byte("rows"), store.WithLogger(logger))
	return db.Update(func(txn *badger.Txn) error {
		row, err := rows.Instantiate(txn).Add(rec)
		if err != nil {
			return err
		}
		logger.Info("row staged", "id", row.Id, "uuid", row.UUID, "columns", rec.Len())
		return nil
	})
}
