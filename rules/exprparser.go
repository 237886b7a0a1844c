package rules

import (
	"fmt"
	"strings"
)

// ParseExpressions parses zero or more expressions out of buf. It first
// chunks the buffer on bracket-nesting / extension-suffix boundaries,
// then parses each chunk independently; the first chunk that fails to
// parse aborts the whole call (unlike the outer rule-document parser,
// which skips and continues past a malformed chunk).
func ParseExpressions(buf []byte, exts []string) ([]Expression, error) {
	chunks := chunkExpressions(string(buf), exts)

	exprs := make([]Expression, 0, len(chunks))
	for _, chunk := range chunks {
		expr, err := parseExpression(chunk, exts)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// chunkExpressions walks input byte by byte in one of three modes —
// idle, in-bracket, in-token — ported from parser.rs's parse_expressions
// byte loop.
func chunkExpressions(input string, exts []string) []string {
	const (
		modeIdle = iota
		modeBracket
		modeToken
	)

	mode := modeIdle
	depth := 0
	var current strings.Builder
	var chunks []string

	for _, b := range input {
		switch mode {
		case modeIdle:
			if b == '[' {
				mode = modeBracket
				depth = 1
				current.WriteRune(b)
			} else if !isASCIIWhitespace(b) {
				mode = modeToken
				current.WriteRune(b)
			}
			// whitespace in idle mode is skipped
		case modeBracket:
			current.WriteRune(b)
			if b == '[' {
				depth++
			} else if b == ']' {
				depth--
				if depth == 0 {
					chunks = append(chunks, current.String())
					current.Reset()
					mode = modeIdle
				}
			}
		case modeToken:
			current.WriteRune(b)
			if endsWithExtensionWhitespaceOrNewline(current.String(), exts) {
				chunks = append(chunks, strings.TrimRight(current.String(), " \n"))
				current.Reset()
				mode = modeIdle
			}
		}
	}

	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, current.String())
	}

	trimmed := make([]string, 0, len(chunks))
	for _, c := range chunks {
		c = strings.TrimSpace(c)
		if c != "" {
			trimmed = append(trimmed, c)
		}
	}
	return trimmed
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// parseExpression parses one chunk.
func parseExpression(chunk string, exts []string) (Expression, error) {
	if !strings.HasPrefix(chunk, "[") {
		if !hasRegisteredExtension(chunk, exts) {
			return nil, fmt.Errorf("rules: not an atomic expression: %q", chunk)
		}
		return NewAtomic(chunk), nil
	}

	// strip the outer brackets.
	inner := chunk[1:]
	if strings.HasSuffix(inner, "]") {
		inner = inner[:len(inner)-1]
	}
	lower := strings.ToLower(inner)

	switch {
	case strings.HasPrefix(lower, "any"):
		rest := strings.TrimSpace(inner[len("any"):])
		children, err := ParseExpressions([]byte(rest), exts)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("rules: ANY requires at least one expression")
		}
		return Any{Children: children}, nil

	case strings.HasPrefix(lower, "all"):
		rest := strings.TrimSpace(inner[len("all"):])
		children, err := ParseExpressions([]byte(rest), exts)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("rules: ALL requires at least one expression")
		}
		return All{Children: children}, nil

	case strings.HasPrefix(lower, "not"):
		rest := strings.TrimSpace(inner[len("not"):])
		children, err := ParseExpressions([]byte(rest), exts)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("rules: NOT requires an expression")
		}
		// NOT takes the last produced child when multiple are given.
		return Not{Child: children[len(children)-1]}, nil

	case strings.HasPrefix(lower, "desc"):
		rest := strings.TrimSpace(inner[len("desc"):])
		pattern, negated, body, ok := parseDescInput(rest)
		if !ok {
			return nil, fmt.Errorf("rules: malformed DESC expression: %q", chunk)
		}
		children, err := ParseExpressions([]byte(body), exts)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("rules: DESC requires an expression")
		}
		return Desc{Child: children[len(children)-1], Pattern: pattern, Negated: negated}, nil

	default:
		return nil, fmt.Errorf("rules: unknown expression: %q", chunk)
	}
}

// parseDescInput splits "/regex/ expr" or "!/regex/ expr" into the
// pattern, the negation flag, and the remaining expression text. This is
// a corrected version of parser.rs's parse_desc_input, whose `!/` branch
// was unreachable because its plain `/` search always matched first.
// Here the leading `!` is checked explicitly before the slash search.
func parseDescInput(input string) (pattern string, negated bool, body string, ok bool) {
	negated = strings.HasPrefix(input, "!")
	if negated {
		input = input[1:]
	}

	start := strings.IndexByte(input, '/')
	if start < 0 {
		return "", false, "", false
	}
	end := strings.LastIndexByte(input, '/')
	if end <= start {
		return "", false, "", false
	}

	pattern = strings.TrimSpace(input[start+1 : end])
	body = strings.TrimSpace(input[end+1:])
	return pattern, negated, body, true
}
