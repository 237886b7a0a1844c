package rules

import (
	"regexp"
	"strings"
)

// DescriptionProvider resolves the human-readable description of a mod,
// the external collaborator consumed only by DESC expressions. A missing
// description is reported with ok == false.
type DescriptionProvider interface {
	Description(mod string) (desc string, ok bool)
}

// Expression is a boolean predicate over a mod list. Implementations are
// a closed set (Atomic, All, Any, Not, Desc); this is a tagged variant
// expressed as an interface rather than a type switch over a sum type,
// since each variant carries its own Eval behavior and no other code
// needs to distinguish them by tag.
type Expression interface {
	// Eval reports whether the expression holds given the set of mods
	// currently present (already ASCII-lowercased) and, for Desc
	// expressions, a description lookup.
	Eval(mods map[string]struct{}, desc DescriptionProvider) bool
}

// Atomic holds a single mod identifier.
type Atomic struct {
	Name string
}

// NewAtomic lowercases name and returns an Atomic expression.
func NewAtomic(name string) Atomic {
	return Atomic{Name: strings.ToLower(name)}
}

func (a Atomic) Eval(mods map[string]struct{}, _ DescriptionProvider) bool {
	_, ok := mods[strings.ToLower(a.Name)]
	return ok
}

// All is true iff every child evaluates true. Parser enforces len >= 1.
type All struct {
	Children []Expression
}

func (a All) Eval(mods map[string]struct{}, desc DescriptionProvider) bool {
	for _, c := range a.Children {
		if !c.Eval(mods, desc) {
			return false
		}
	}
	return true
}

// Any is true iff at least one child evaluates true. Parser enforces len >= 1.
type Any struct {
	Children []Expression
}

func (a Any) Eval(mods map[string]struct{}, desc DescriptionProvider) bool {
	for _, c := range a.Children {
		if c.Eval(mods, desc) {
			return true
		}
	}
	return false
}

// Not negates its child.
type Not struct {
	Child Expression
}

func (n Not) Eval(mods map[string]struct{}, desc DescriptionProvider) bool {
	return !n.Child.Eval(mods, desc)
}

// Desc is true iff Child evaluates true and the named mod's description
// matches Pattern (a regexp), XORed with Negated. The description is
// ASCII-lowercased before matching. If Child is not an Atomic, has no
// description available, or Pattern does not compile, Desc is false
// regardless of Negated.
type Desc struct {
	Child   Expression
	Pattern string
	Negated bool
}

func (d Desc) Eval(mods map[string]struct{}, desc DescriptionProvider) bool {
	if !d.Child.Eval(mods, desc) {
		return false
	}
	if desc == nil {
		return false
	}
	atomic, ok := d.Child.(Atomic)
	if !ok {
		return false
	}
	text, ok := desc.Description(atomic.Name)
	if !ok {
		return false
	}
	re, err := regexp.Compile(d.Pattern)
	if err != nil {
		return false
	}
	matched := re.MatchString(strings.ToLower(text))
	return matched != d.Negated
}
