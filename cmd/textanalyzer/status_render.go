package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusOK
	statusWarn
)

var levelStyles = map[statusLevel]struct {
	label string
	color string
}{
	statusInfo: {"INFO", "\x1b[34m"},
	statusOK:   {"OK", "\x1b[32m"},
	statusWarn: {"WARN", "\x1b[33m"},
}

const ansiReset = "\x1b[0m"

// statusPrinter writes "  Label:       [OK] message" rows, colored on a terminal.
type statusPrinter struct {
	w     io.Writer
	color bool
}

func newStatusPrinter(w io.Writer) *statusPrinter {
	return &statusPrinter{w: w, color: isTerminal(w)}
}

func (p *statusPrinter) section(title string) {
	heading := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	p.println(levelStyles[statusInfo].color, heading)
	p.println(levelStyles[statusInfo].color, strings.Repeat("-", len(heading)))
}

func (p *statusPrinter) line(label string, lvl statusLevel, message string) {
	style := levelStyles[lvl]
	text := fmt.Sprintf("  %-12s [%s]", label+":", style.label)
	if message != "" {
		text += " " + message
	}
	p.println(style.color, text)
}

func (p *statusPrinter) println(color, text string) {
	if p.color && color != "" {
		text = color + text + ansiReset
	}
	fmt.Fprintln(p.w, text)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func formatUptime(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}
	return (time.Duration(seconds) * time.Second).String()
}
