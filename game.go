package main

import (
	"io"
	"strconv"
	"strings"
)

// game holds the secret for one run. The secret never changes after
// newGame returns.
type game struct {
	secret int
	input  *lineReader
	out    *output
}

func newGame(secret int, in io.Reader, out *output) *game {

	return &game{
		secret: secret,
		input:  newLineReader(in),
		out:    out,
	}

}

// play prints the welcome banner and runs the guess loop until the secret is
// guessed. It returns nil on a win. A failed read ends the game with an
// error; lines that are not integers only cause a reprompt.
func (g *game) play() error {

	g.out.welcome()

	for {

		g.out.prompt()

		line, err := g.input.readLine()
		if err != nil {
			return err
		}

		guess, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			g.out.reprompt()
			continue
		}

		g.out.echo(guess)

		switch {
		case guess < g.secret:
			g.out.tooSmall()
		case guess > g.secret:
			g.out.tooBig()
		default:
			g.out.win()
			return nil
		}

	}

}
