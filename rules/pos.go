package rules

import "fmt"

// FileRef names the rules file a Pos belongs to, kept as a distinct type
// in case we need path normalization rules later.
type FileRef string

// Pos is a line reference into a rules document, used for diagnostics.
type Pos struct {
	File FileRef
	Line int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}
