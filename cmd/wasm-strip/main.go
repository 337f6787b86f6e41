package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	wasmstrip "github.com/wasmkit/wasm-strip"
	"github.com/wasmkit/wasm-strip/render"
	"github.com/wasmkit/wasm-strip/strip"
)

// regexList collects repeated -d flags.
type regexList []string

func (l *regexList) String() string {
	return strings.Join(*l, ",")
}

func (l *regexList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var (
		all         = flag.Bool("a", false, "Remove all custom sections, regardless of name")
		output      = flag.String("o", "", "Output path (default: input with .stripped.wasm suffix)")
		list        = flag.Bool("l", false, "List the module's sections and exit")
		interactive = flag.Bool("i", false, "Interactive mode: pick custom sections to strip")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	var deletes regexList
	flag.Var(&deletes, "d", "Remove custom sections matching the regex (repeatable)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: wasm-strip [-a] [-d REGEX]... [-o OUTPUT] <file.wasm>")
		fmt.Fprintln(os.Stderr, "       wasm-strip -l <file.wasm>  (list sections)")
		fmt.Fprintln(os.Stderr, "       wasm-strip -i <file.wasm>  (interactive mode)")
		os.Exit(1)
	}
	input := flag.Arg(0)

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		strip.SetLogger(log)
	}

	if err := run(input, *output, *all, deletes, *list, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output string, all bool, deletes []string, list, interactive bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if list {
		listing, err := render.Listing(data)
		if err != nil {
			return err
		}
		fmt.Print(listing)
		return nil
	}

	if output == "" {
		output = defaultOutput(input)
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode requires a terminal")
		}
		return runInteractive(input, data, output)
	}

	stripped, err := wasmstrip.Strip(data, wasmstrip.Options{
		All:    all,
		Delete: deletes,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, stripped, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Printf("%s: %d bytes -> %s: %d bytes\n", input, len(data), output, len(stripped))
	return nil
}

// defaultOutput derives the output path when -o is not given. The input is
// never overwritten.
func defaultOutput(input string) string {
	return strings.TrimSuffix(input, ".wasm") + ".stripped.wasm"
}
