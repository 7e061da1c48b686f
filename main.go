package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// The four shades of the classic handheld green palette, darkest first.
var palette = []Pixel{
	{15, 56, 15},
	{48, 98, 48},
	{139, 172, 15},
	{155, 188, 15},
}

var logger = newLogger(os.Stderr)

func main() {
	if err := writePalette(os.Stdout, palette); err != nil {
		logger.Fatal("failed to write palette", "err", err)
	}
}

func writePalette(w io.Writer, pixels []Pixel) (err error) {
	out := bufio.NewWriter(w)
	defer func() {
		if ferr := out.Flush(); err == nil && ferr != nil {
			err = fmt.Errorf("flush: %w", ferr)
		}
	}()

	for _, p := range pixels {
		reduced := convert(p)
		if logger.GetLevel() <= log.DebugLevel {
			logger.Debug("reduced pixel", "in", p, "out", reduced, "swatch", swatch(p))
		}
		if _, err := fmt.Fprintf(out, "%v -> %v\n", p, reduced); err != nil {
			return fmt.Errorf("write %v: %w", p, err)
		}
	}
	return nil
}
