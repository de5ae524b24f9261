package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func printInfo(w io.Writer, format string, args ...interface{}) {
	paint(w, color.FgCyan).Fprint(w, "ℹ ")
	fmt.Fprintf(w, format+"\n", args...)
}

func printSuccess(w io.Writer, format string, args ...interface{}) {
	paint(w, color.FgGreen).Fprint(w, "✓ ")
	fmt.Fprintf(w, format+"\n", args...)
}

func printWarning(w io.Writer, format string, args ...interface{}) {
	paint(w, color.FgYellow).Fprint(w, "⚠ ")
	fmt.Fprintf(w, format+"\n", args...)
}

func printError(w io.Writer, format string, args ...interface{}) {
	paint(w, color.FgRed, color.Bold).Fprint(w, "Error: ")
	fmt.Fprintf(w, format+"\n", args...)
}

func paint(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if useColor(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// useColor is true only for terminals, and never with --no-color
func useColor(w io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
