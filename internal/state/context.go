package state

import (
	"fmt"
	"strings"
)

// Workspace is the operating context a user picked.
type Workspace string

const (
	WorkspaceUnset       Workspace = ""
	WorkspaceUniversity  Workspace = "University"
	WorkspaceResidential Workspace = "Residential"
	WorkspaceMunicipal   Workspace = "Municipal"
)

// Mode is the perspective the views are rendered from.
type Mode string

const (
	ModeUnset      Mode = ""
	ModeIndividual Mode = "Individual"
	ModeCampus     Mode = "Campus"
	ModePolicy     Mode = "Policy"
)

// Context is the workspace/mode pair, owned separately from UserData.
type Context struct {
	Workspace Workspace
	Mode      Mode
}

// ParseWorkspace matches a workspace name case-insensitively. "" is unset.
func ParseWorkspace(s string) (Workspace, error) {
	for _, w := range []Workspace{WorkspaceUniversity, WorkspaceResidential, WorkspaceMunicipal} {
		if strings.EqualFold(string(w), strings.TrimSpace(s)) {
			return w, nil
		}
	}
	if strings.TrimSpace(s) == "" {
		return WorkspaceUnset, nil
	}
	return WorkspaceUnset, fmt.Errorf("unknown workspace %q", s)
}

// ParseMode matches a perspective mode case-insensitively. "" is unset.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeIndividual, ModeCampus, ModePolicy} {
		if strings.EqualFold(string(m), strings.TrimSpace(s)) {
			return m, nil
		}
	}
	if strings.TrimSpace(s) == "" {
		return ModeUnset, nil
	}
	return ModeUnset, fmt.Errorf("unknown mode %q", s)
}

// Set returns the context for ws and m.
func (Context) Set(ws Workspace, m Mode) Context {
	return Context{Workspace: ws, Mode: m}
}

// Reset returns the unset context.
func (Context) Reset() Context {
	return Context{}
}

// IsComplete reports whether both selectors are chosen; views are only
// reachable once they are.
func (c Context) IsComplete() bool {
	return c.Workspace != WorkspaceUnset && c.Mode != ModeUnset
}

// PolicyView reports whether the policy perspective replaces the personal views.
func (c Context) PolicyView() bool {
	return c.Mode == ModePolicy
}
