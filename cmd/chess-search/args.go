package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified looks for -A in os.Args and returns the
// arguments read from that file, or nil when -A is absent.
func loadArgsFromFileIfSpecified() []string {
	for i, arg := range os.Args[1:] {
		var name string
		switch {
		case arg == "-A" || arg == "--A":
			if i+2 < len(os.Args) {
				name = os.Args[i+2]
			}
		case strings.HasPrefix(arg, "-A="):
			name = strings.TrimPrefix(arg, "-A=")
		case strings.HasPrefix(arg, "--A="):
			name = strings.TrimPrefix(arg, "--A=")
		default:
			continue
		}
		if name == "" {
			return nil
		}

		args, err := loadArgsFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading argument file %s: %v\n", name, err)
			os.Exit(1)
		}
		return args
	}
	return nil
}

// loadArgsFile reads arguments from a file. Blank lines and lines starting
// with '#' are skipped; each other line is split like a shell would.
func loadArgsFile(name string) ([]string, error) {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	return args, scanner.Err()
}

// splitArgsLine splits a line on spaces and tabs, keeping single or double
// quoted strings together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
