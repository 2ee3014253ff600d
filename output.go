package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	msgWelcome  = "Welcome to Guess the Number!"
	msgPrompt   = "Please input your guess:"
	msgReprompt = "Please enter a number..."
	msgTooSmall = "Too small"
	msgTooBig   = "Too big"
	msgWin      = "You win"
)

// output writes the game's fixed message set. Feedback lines are colored
// only when w is a terminal and color has not been turned off with NO_COLOR.
type output struct {
	w         io.Writer
	attention *color.Color
	success   *color.Color
}

func newOutput(w io.Writer) *output {

	o := &output{
		w:         w,
		attention: color.New(color.FgRed),
		success:   color.New(color.FgGreen),
	}

	if colorEnabled(w) {
		o.attention.EnableColor()
		o.success.EnableColor()
	} else {
		o.attention.DisableColor()
		o.success.DisableColor()
	}

	return o

}

// colorEnabled reports whether feedback written to w should be colored.
// color.NoColor carries the library's NO_COLOR check.
func colorEnabled(w io.Writer) bool {

	return isTerminal(w) && !color.NoColor

}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))

}

func (o *output) welcome() {
	fmt.Fprintln(o.w, msgWelcome)
}

func (o *output) prompt() {
	fmt.Fprintln(o.w, msgPrompt)
}

func (o *output) reprompt() {
	fmt.Fprintln(o.w, msgReprompt)
}

func (o *output) echo(guess int) {
	fmt.Fprintln(o.w, "Your guess:", guess)
}

func (o *output) tooSmall() {
	o.attention.Fprintln(o.w, msgTooSmall)
}

func (o *output) tooBig() {
	o.attention.Fprintln(o.w, msgTooBig)
}

func (o *output) win() {
	o.success.Fprintln(o.w, msgWin)
}
