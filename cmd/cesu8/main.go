package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/cesu8"
)

func main() {
	var (
		encode      = flag.Bool("encode", false, "Convert UTF-8 input to CESU-8 (default is decode)")
		inFile      = flag.String("in", "", "Input file (default stdin)")
		outFile     = flag.String("out", "", "Output file (default stdout)")
		hexIO       = flag.Bool("hex", false, "Read input as hex digits and emit hex output")
		java        = flag.Bool("java", false, "Use the Java modified UTF-8 variant")
		lenient     = flag.Bool("lenient", false, "Preserve unpaired surrogates instead of rejecting them")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive byte inspector (TUI)")
	)
	flag.Parse()

	opts := cesu8.Options{}
	if *java {
		opts.Variant = cesu8.Java
	}
	if *lenient {
		opts.Policy = cesu8.PreserveUnpaired
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, *encode, *hexIO, *verbose, *inFile, *outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts cesu8.Options, encode, hexIO, verbose bool, inFile, outFile string) error {
	log := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer dev.Sync()
		log = dev
		cesu8.SetLogger(dev)
	}

	data, err := readInput(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if hexIO {
		data, err = parseHex(data)
		if err != nil {
			return fmt.Errorf("parse hex input: %w", err)
		}
	}

	var out []byte
	if encode {
		if !utf8.Valid(data) {
			return fmt.Errorf("encode input is not valid UTF-8")
		}
		out = cesu8.NewEncoder(opts).Encode(string(data))
	} else {
		s, err := cesu8.NewDecoder(opts).Decode(data)
		if err != nil {
			return err
		}
		out = []byte(s)
	}

	log.Info("converted",
		zap.String("direction", direction(encode)),
		zap.String("variant", opts.Variant.String()),
		zap.Int("input_bytes", len(data)),
		zap.Int("output_bytes", len(out)),
	)

	if hexIO {
		out = append([]byte(hex.EncodeToString(out)), '\n')
	}
	return writeOutput(outFile, out)
}

func direction(encode bool) string {
	if encode {
		return "utf8-to-cesu8"
	}
	return "cesu8-to-utf8"
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// parseHex accepts hex digits with optional whitespace between them,
// so both "eda081" and "ED A0 81" work.
func parseHex(data []byte) ([]byte, error) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, string(data))
	return hex.DecodeString(s)
}
