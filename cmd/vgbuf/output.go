package main

import (
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	failColor   = color.New(color.FgRed)
	dimColor    = color.New(color.FgHiBlack)
)

// numbers formats byte counts with thousands separators.
var numbers = message.NewPrinter(language.English)

func bytesString(n int) string {
	return numbers.Sprintf("%d bytes", n)
}
