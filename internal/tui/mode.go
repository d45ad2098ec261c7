package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how much terminal capability a renderer may use.
type OutputMode int

const (
	// OutputModePlain is uncoloured text for pipes and CI logs.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is coloured, boxed output on a terminal.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks a mode from the terminal and environment.
// plain forces OutputModePlain; interactive is honoured only when both
// stdin and stdout are terminals. NO_COLOR and CI select plain output.
func DetectOutputMode(interactive, plain bool) OutputMode {
	return detectOutputMode(interactive, plain, isTerminal(os.Stdout), isTerminal(os.Stdin), os.LookupEnv)
}

func detectOutputMode(
	interactive, plain, stdoutTTY, stdinTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if plain || !stdoutTTY {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if v, ok := lookupEnv("CI"); ok && v != "" && v != "false" {
		return OutputModePlain
	}
	if interactive && stdinTTY {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the stdout width, or fallback when unknown.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
