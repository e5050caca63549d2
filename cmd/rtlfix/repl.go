package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/rtlfix"
	"github.com/npillmayer/rtlfix/shaping"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object. Lines starting with a colon are
// commands, every other line is text to process.
type Intp struct {
	repl  *readline.Instance
	proc  *rtlfix.Processor
	gaps  *shaping.Gaps
	codes bool // print code-points of results
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.process(line)
			continue
		}
		quit, err := intp.execute(strings.Fields(line[1:]))
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) process(text string) {
	out := intp.proc.Process(text)
	pterm.Println(out)
	if intp.codes {
		printCodePoints(out)
	}
}

var errUnknownCommand = errors.New("unknown command; try :help")

func (intp *Intp) execute(cmd []string) (quit bool, err error) {
	if len(cmd) == 0 {
		return false, errUnknownCommand
	}
	tracer().Debugf("command = %v", cmd)
	switch strings.ToLower(cmd[0]) {
	case "quit", "q":
		return true, nil
	case "help", "h":
		help()
	case "mode":
		if len(cmd) < 2 {
			pterm.Printf("mode is %s\n", intp.proc.Mode())
			return false, nil
		}
		mode, err := rtlfix.ParseMode(cmd[1])
		if err != nil {
			return false, err
		}
		intp.proc = rtlfix.NewProcessor(rtlfix.WithMode(mode), rtlfix.WithGaps(intp.gaps))
		pterm.Printf("mode is %s\n", mode)
	case "codes":
		intp.codes = !intp.codes
		pterm.Printf("printing code-points: %v\n", intp.codes)
	case "gaps":
		printGaps(intp.gaps)
	case "letter", "l":
		if len(cmd) < 2 {
			return false, errors.New("usage: :letter <letters>")
		}
		printLetters(strings.Join(cmd[1:], ""))
	default:
		return false, fmt.Errorf("%w: %s", errUnknownCommand, cmd[0])
	}
	return false, nil
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	<text>            process text with the current mode
	:mode [m]         show or set the mode (full, reverse, shape)
	:codes            toggle printing of code-points
	:letter <letters> show shaping classes and forms of letters
	:gaps             list letters missing from the shaping table
	:help             this text
	:quit             leave (or <ctrl>D)
	`)
}
