package rules

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Document holds the parsed rules from one or more merged rules files:
// ordering rules (contribute edges/hints to the sorter) and warning
// rules (evaluated against a mod list to produce comments). Include is
// the only method that modifies a Document; the others only read it.
type Document struct {
	OrderRules   []OrderRule
	WarningRules []WarningRule
}

type rawChunk struct {
	startLine int
	lines     []string
}

// ParseDocument parses a rules document. It never returns a hard error:
// a malformed rule chunk is skipped and reported as a Diagnostic, while
// the rest of the document still parses.
func ParseDocument(r io.Reader, file FileRef, exts []string) (*Document, []Diagnostic) {
	chunks := chunkDocument(r)

	doc := &Document{}
	var diags []Diagnostic

	for _, chunk := range chunks {
		if err := doc.parseChunk(chunk, exts); err != nil {
			diags = append(diags, Diagnostic{
				Pos:     Pos{File: file, Line: chunk.startLine},
				Message: err.Error(),
			})
		}
	}

	return doc, diags
}

// chunkDocument splits the document into rule chunks: comment lines
// (first non-whitespace char ';') are dropped entirely, everything else
// is lowercased, and a blank line closes the current chunk. The starting
// line number of each chunk is preserved for diagnostics.
func chunkDocument(r io.Reader) []rawChunk {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var chunks []rawChunk
	var current *rawChunk
	lineNo := 0

	flush := func() {
		if current != nil {
			chunks = append(chunks, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.HasPrefix(strings.TrimSpace(line), ";") {
			continue
		}

		line = strings.ToLower(line)

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if current == nil {
			current = &rawChunk{startLine: lineNo}
		}
		current.lines = append(current.lines, line)
	}
	flush()

	return chunks
}

// parseChunk parses one rule section. The chunk text has already been
// lowercased by chunkDocument.
func (doc *Document) parseChunk(chunk rawChunk, exts []string) error {
	text := strings.Join(chunk.lines, "\n")
	if !strings.HasPrefix(text, "[") {
		return fmt.Errorf("rules: chunk does not start with '['")
	}

	head, rest, err := readRuleHead(text[1:])
	if err != nil {
		return err
	}

	kind, headComment, err := splitRuleHead(strings.TrimSpace(head))
	if err != nil {
		return err
	}

	comment, body := splitLeadingComment(rest, headComment)

	switch kind {
	case "order":
		rule, err := parseOrder(body, exts)
		if err != nil {
			return err
		}
		doc.OrderRules = append(doc.OrderRules, rule)
	case "nearstart":
		rule, err := parseNearStart(body, exts)
		if err != nil {
			return err
		}
		doc.OrderRules = append(doc.OrderRules, rule)
	case "nearend":
		rule, err := parseNearEnd(body, exts)
		if err != nil {
			return err
		}
		doc.OrderRules = append(doc.OrderRules, rule)
	case "note":
		rule, err := parseNote(comment, body, exts)
		if err != nil {
			return err
		}
		doc.WarningRules = append(doc.WarningRules, rule)
	case "conflict":
		rule, err := parseConflict(comment, body, exts)
		if err != nil {
			return err
		}
		doc.WarningRules = append(doc.WarningRules, rule)
	case "requires":
		rule, err := parseRequires(comment, body, exts)
		if err != nil {
			return err
		}
		doc.WarningRules = append(doc.WarningRules, rule)
	case "patch":
		rule, err := parsePatch(comment, body, exts)
		if err != nil {
			return err
		}
		doc.WarningRules = append(doc.WarningRules, rule)
	default:
		return fmt.Errorf("rules: unknown rule kind: %q", kind)
	}

	return nil
}

// readRuleHead reads from s (the text immediately following a chunk's
// leading '[') through the matching ']', honoring nested brackets (used
// by embedded commentary like "[note with [nested] text]"). Ported from
// original_source/src/parser.rs::parse_rule_expression.
func readRuleHead(s string) (head, rest string, err error) {
	depth := 1
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[:i], s[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("rules: unterminated rule head")
}

var ruleKeywords = []string{"nearstart", "nearend", "order", "note", "conflict", "requires", "patch"}

// splitRuleHead matches the rule-expression prefix against the known
// rule kinds, returning the kind and the remainder as an inline comment.
func splitRuleHead(head string) (kind, comment string, err error) {
	for _, kw := range ruleKeywords {
		if strings.HasPrefix(head, kw) {
			return kw, strings.TrimSpace(head[len(kw):]), nil
		}
	}
	return "", "", fmt.Errorf("rules: unknown rule kind: %q", head)
}

// splitLeadingComment strips any text after ';' on each body line,
// drops blank lines, and treats a run of leading whitespace-prefixed
// lines as additional comment continuation.
func splitLeadingComment(rest, headComment string) (comment, body string) {
	comment = headComment
	consumingComment := true
	var bodyLines []string

	for _, line := range strings.Split(rest, "\n") {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if consumingComment && (line[0] == ' ' || line[0] == '\t') {
			comment = strings.TrimSpace(comment + " " + strings.TrimSpace(line))
			continue
		}
		consumingComment = false
		bodyLines = append(bodyLines, line)
	}

	return strings.TrimSpace(comment), strings.Join(bodyLines, "\n")
}

// Edges returns every (before, after) pair implied by Order rules.
// Pairs with endpoints missing from the current mod list are resolved
// later, at sort time, by silently dropping them.
func (doc *Document) Edges() [][2]string {
	var edges [][2]string
	for _, r := range doc.OrderRules {
		if o, ok := r.(Order); ok {
			edges = append(edges, o.Pairs()...)
		}
	}
	return edges
}

// NearStartNames returns every name named by a NearStart rule.
func (doc *Document) NearStartNames() []string {
	var names []string
	for _, r := range doc.OrderRules {
		if ns, ok := r.(NearStart); ok {
			names = append(names, ns.Names...)
		}
	}
	return names
}

// NearEndNames returns every name named by a NearEnd rule.
func (doc *Document) NearEndNames() []string {
	var names []string
	for _, r := range doc.OrderRules {
		if ne, ok := r.(NearEnd); ok {
			names = append(names, ne.Names...)
		}
	}
	return names
}

// Evaluate returns, in rule-declaration order, the comments of every
// WarningRule that evaluates true against mods.
func (doc *Document) Evaluate(mods []string, desc DescriptionProvider) []string {
	set := make(map[string]struct{}, len(mods))
	for _, m := range mods {
		set[strings.ToLower(m)] = struct{}{}
	}

	var warnings []string
	for _, rule := range doc.WarningRules {
		if rule.Eval(set, desc) {
			warnings = append(warnings, rule.Comment())
		}
	}
	return warnings
}

// Include merges other's rules into doc, preserving declaration order
// across the merged files, since a game can name more than one
// canonical rules file.
func (doc *Document) Include(other *Document) {
	doc.OrderRules = append(doc.OrderRules, other.OrderRules...)
	doc.WarningRules = append(doc.WarningRules, other.WarningRules...)
}

// RuleCount returns the total number of parsed rules, used for load
// diagnostics ("Parsed file %s with %d rules").
func (doc *Document) RuleCount() int {
	return len(doc.OrderRules) + len(doc.WarningRules)
}
