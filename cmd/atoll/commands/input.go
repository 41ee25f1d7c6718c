// Package commands implements the atoll CLI subcommands.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// maxTokenSize bounds a single input token; numbers never come close.
const maxTokenSize = 1 << 16

// readSample parses whitespace-separated floating-point observations from r.
// A token that does not parse as a float is a hard error naming the token
// position, never a silent skip.
func readSample(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	var sample []float64

	pos := 0

	for scanner.Scan() {
		pos++

		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %d (%q): %w", pos, scanner.Text(), err)
		}

		sample = append(sample, v)
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return sample, nil
}

// openInput returns the sample source: the named file, or stdin when no
// argument was given.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return os.Stdin, nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return file, nil
}
