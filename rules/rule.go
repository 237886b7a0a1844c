package rules

import (
	"fmt"
	"strings"
)

// OrderRule contributes ordering edges to the sorter. The closed set is
// Order, NearStart, NearEnd.
type OrderRule interface {
	isOrderRule()
}

// WarningRule evaluates to a boolean against a mod list and, when true,
// contributes its Comment as a warning. The closed set is Note,
// Conflict, Requires, Patch.
type WarningRule interface {
	Comment() string
	Eval(mods map[string]struct{}, desc DescriptionProvider) bool
}

// Order implies pairwise edges names[i] -> names[i+1]. Requires len >= 2.
type Order struct {
	Names []string
}

func (Order) isOrderRule() {}

// Pairs returns the pairwise (before, after) edges this rule implies.
func (o Order) Pairs() [][2]string {
	pairs := make([][2]string, 0, len(o.Names)-1)
	for i := 0; i+1 < len(o.Names); i++ {
		pairs = append(pairs, [2]string{o.Names[i], o.Names[i+1]})
	}
	return pairs
}

// NearStart is a soft hint: the listed mods should float toward index 0.
type NearStart struct {
	Names []string
}

func (NearStart) isOrderRule() {}

// NearEnd is a soft hint: the listed mods should float toward the tail.
type NearEnd struct {
	Names []string
}

func (NearEnd) isOrderRule() {}

// Note is true iff any of Expressions evaluates true.
type Note struct {
	comment     string
	Expressions []Expression
}

func (n Note) Comment() string { return n.comment }

func (n Note) Eval(mods map[string]struct{}, desc DescriptionProvider) bool {
	for _, e := range n.Expressions {
		if e.Eval(mods, desc) {
			return true
		}
	}
	return false
}

// Conflict is true iff at least two of Expressions evaluate true.
type Conflict struct {
	comment     string
	Expressions []Expression
}

func (c Conflict) Comment() string { return c.comment }

func (c Conflict) Eval(mods map[string]struct{}, desc DescriptionProvider) bool {
	count := 0
	for _, e := range c.Expressions {
		if e.Eval(mods, desc) {
			count++
		}
	}
	return count > 1
}

// Requires is true iff A is true and B is false.
type Requires struct {
	comment string
	A, B    Expression
}

func (r Requires) Comment() string { return r.comment }

func (r Requires) Eval(mods map[string]struct{}, desc DescriptionProvider) bool {
	return r.A.Eval(mods, desc) && !r.B.Eval(mods, desc)
}

// Patch is true iff exactly one of A, B is true (XOR).
type Patch struct {
	comment string
	A, B    Expression
}

func (p Patch) Comment() string { return p.comment }

func (p Patch) Eval(mods map[string]struct{}, desc DescriptionProvider) bool {
	a, b := p.A.Eval(mods, desc), p.B.Eval(mods, desc)
	return a != b
}

// parseOrderBody tokenizes every line of body and collects the tokens
// into names. Every token must end with ']' (embedded bracketed
// commentary, rare but tolerated by the original grammar) or a
// registered extension.
func parseOrderBody(body string, exts []string) ([]string, error) {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, tok := range Tokenize(line, exts) {
			if !strings.HasSuffix(tok, "]") && !hasRegisteredExtension(tok, exts) {
				return nil, fmt.Errorf("rules: tokenize failed on %q", tok)
			}
			names = append(names, tok)
		}
	}
	return names, nil
}

func parseOrder(body string, exts []string) (Order, error) {
	names, err := parseOrderBody(body, exts)
	if err != nil {
		return Order{}, err
	}
	if len(names) < 2 {
		return Order{}, fmt.Errorf("rules: malformed Order rule: fewer than 2 names")
	}
	return Order{Names: names}, nil
}

func parseNearStart(body string, exts []string) (NearStart, error) {
	names, err := parseOrderBody(body, exts)
	if err != nil {
		return NearStart{}, err
	}
	return NearStart{Names: names}, nil
}

func parseNearEnd(body string, exts []string) (NearEnd, error) {
	names, err := parseOrderBody(body, exts)
	if err != nil {
		return NearEnd{}, err
	}
	return NearEnd{Names: names}, nil
}

func parseNote(comment, body string, exts []string) (Note, error) {
	exprs, err := ParseExpressions([]byte(body), exts)
	if err != nil {
		return Note{}, err
	}
	if len(exprs) == 0 {
		return Note{}, fmt.Errorf("rules: malformed Note rule: no expressions parsed")
	}
	return Note{comment: comment, Expressions: exprs}, nil
}

func parseConflict(comment, body string, exts []string) (Conflict, error) {
	exprs, err := ParseExpressions([]byte(body), exts)
	if err != nil {
		return Conflict{}, err
	}
	if len(exprs) == 0 {
		return Conflict{}, fmt.Errorf("rules: malformed Conflict rule: no expressions parsed")
	}
	return Conflict{comment: comment, Expressions: exprs}, nil
}

func parseRequires(comment, body string, exts []string) (Requires, error) {
	exprs, err := ParseExpressions([]byte(body), exts)
	if err != nil {
		return Requires{}, err
	}
	if len(exprs) != 2 {
		return Requires{}, fmt.Errorf("rules: malformed Requires rule: expected 2 expressions, got %d", len(exprs))
	}
	return Requires{comment: comment, A: exprs[0], B: exprs[1]}, nil
}

func parsePatch(comment, body string, exts []string) (Patch, error) {
	exprs, err := ParseExpressions([]byte(body), exts)
	if err != nil {
		return Patch{}, err
	}
	if len(exprs) != 2 {
		return Patch{}, fmt.Errorf("rules: malformed Patch rule: expected 2 expressions, got %d", len(exprs))
	}
	return Patch{comment: comment, A: exprs[0], B: exprs[1]}, nil
}
