package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	colorOnce  sync.Once
	colorLevel int
)

// detectColorLevel decides how much color the attached terminal gets:
// 0 (none), 1 (basic), 256 or truecolor. Honors NO_COLOR
// (https://no-color.org/) and disables color when stdout is not a tty.
func detectColorLevel() int {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return 0
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return 0
	}

	term := os.Getenv("TERM")
	if term == "dumb" {
		return 0
	}
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return 16777216
	}
	if strings.Contains(term, "256color") {
		return 256
	}
	return 1
}

func getColorLevel() int {
	colorOnce.Do(func() {
		colorLevel = detectColorLevel()
	})
	return colorLevel
}

// wrap surrounds s with an ANSI code and its reset, or leaves it alone
// when color is off.
func wrap(code, reset, s string) string {
	if getColorLevel() == 0 {
		return s
	}
	return code + s + reset
}

func fg(color int, s string) string {
	return wrap(fmt.Sprintf("\033[%dm", color), "\033[39m", s)
}

func bold(s string) string { return wrap("\033[1m", "\033[22m", s) }

func cyan(s string) string  { return fg(36, s) }
func green(s string) string { return fg(32, s) }
func red(s string) string   { return fg(31, s) }
