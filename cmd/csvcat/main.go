// Command csvcat inspects CSV (and parquet) files from the command line:
// it filters rows with a single condition, aggregates one numeric column or
// sorts by one column, and prints the result as a table.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
)

var (
	fileFlag      = flag.String("file", "", "Path to the source file (glob patterns supported)")
	whereFlag     = flag.String("where", "", "Filter condition (e.g., \"price>500\")")
	aggregateFlag = flag.String("aggregate", "", "Aggregation (e.g., \"price=avg\"; functions: avg, min, max)")
	orderByFlag   = flag.String("order-by", "", "Sort order (e.g., \"price=asc\")")
	formatFlag    = flag.String("format", "table", "Output format: table, csv, json")
)

// Exit statuses: user/input errors are distinguished from unexpected ones
// so scripts can tell a typo from a broken run.
const (
	exitOK       = 0
	exitInternal = 1
	exitUsage    = 2
)

type options struct {
	file      string
	where     string
	aggregate string
	orderBy   string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s --file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to filter, aggregate and sort CSV files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --file products.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --file products.csv --where \"price>500\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --file products.csv --where \"brand=apple\" --aggregate \"price=avg\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --file products.csv --order-by \"price=desc\"\n", os.Args[0])
	}

	if len(os.Args) <= 1 {
		flag.Usage()
		os.Exit(exitUsage)
	}

	flag.Parse()

	if *fileFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: --file is required\n\n")
		flag.Usage()
		os.Exit(exitUsage)
	}

	var formatter output.Formatter
	switch *formatFlag {
	case "table":
		formatter = output.NewTableFormatter(os.Stdout)
	case "csv":
		formatter = output.NewCSVFormatter(os.Stdout)
	case "json":
		formatter = output.NewJSONFormatter(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(os.Stderr, "Supported formats: table, csv, json\n")
		os.Exit(exitUsage)
	}

	opts := options{
		file:      *fileFlag,
		where:     *whereFlag,
		aggregate: *aggregateFlag,
		orderBy:   *orderByFlag,
	}

	if err := run(opts, formatter); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", opts.file)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
			os.Exit(exitInternal)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if query.IsUserError(err) {
			os.Exit(exitUsage)
		}
		os.Exit(exitInternal)
	}

	os.Exit(exitOK)
}

// run executes one invocation: load, filter, then either aggregate or sort,
// then render. All component errors bubble up here unmodified so main can
// classify them; nothing is written to the formatter on error.
func run(opts options, formatter output.Formatter) error {
	columns, rows, err := reader.ReadFile(opts.file)
	if err != nil {
		return err
	}

	if opts.where != "" {
		cond, err := query.ParseCondition(opts.where)
		if err != nil {
			return err
		}
		rows = query.ApplyFilter(rows, cond)
	}

	// Aggregation and sorted display are mutually exclusive outputs: an
	// aggregation collapses the row set to one scalar, so any --order-by is
	// ignored when --aggregate is present.
	if opts.aggregate != "" {
		spec, err := query.ParseAggregate(opts.aggregate)
		if err != nil {
			return err
		}
		result, err := query.Aggregate(rows, spec)
		if err != nil {
			return err
		}

		name := spec.Func.String()
		return formatter.Format([]string{name}, []map[string]interface{}{{name: result}})
	}

	if opts.orderBy != "" {
		ob, err := query.ParseOrderBy(opts.orderBy)
		if err != nil {
			return err
		}
		rows, err = query.ApplyOrderBy(rows, ob)
		if err != nil {
			return err
		}
	}

	return formatter.Format(columns, rows)
}
