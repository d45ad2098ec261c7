package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	t.Parallel()

	env := func(vars map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}

	tests := []struct {
		name        string
		interactive bool
		plain       bool
		stdout      bool
		stdin       bool
		vars        map[string]string
		want        OutputMode
	}{
		{name: "pipe", stdout: false, stdin: true, want: OutputModePlain},
		{name: "plain flag", plain: true, stdout: true, stdin: true, want: OutputModePlain},
		{name: "terminal", stdout: true, stdin: true, want: OutputModeStyled},
		{name: "interactive", interactive: true, stdout: true, stdin: true, want: OutputModeInteractive},
		{name: "interactive without stdin", interactive: true, stdout: true, want: OutputModeStyled},
		{name: "interactive piped", interactive: true, stdin: true, want: OutputModePlain},
		{name: "no color", stdout: true, stdin: true, vars: map[string]string{"NO_COLOR": ""}, want: OutputModePlain},
		{name: "ci", stdout: true, stdin: true, vars: map[string]string{"CI": "true"}, want: OutputModePlain},
		{name: "ci false", stdout: true, stdin: true, vars: map[string]string{"CI": "false"}, want: OutputModeStyled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := detectOutputMode(tt.interactive, tt.plain, tt.stdout, tt.stdin, env(tt.vars))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
}
