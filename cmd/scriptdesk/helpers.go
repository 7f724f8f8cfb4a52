package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName turns a snake_case identifier into a human-readable label.
func displayName(value string) string {
	if value == "" {
		return ""
	}
	return titleCaser.String(strings.ReplaceAll(value, "_", " "))
}

func formatProgress(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// truncate shortens a value for table cells. Width-aware so multi-byte
// runes are never split mid-sequence.
func truncate(value string, max int) string {
	if max <= 3 {
		return value
	}
	return text.Snip(value, max, "...")
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
