package rules

// Diagnostic records a single rule-chunk parse failure, carrying enough
// context for a caller to log it. Document parsing never aborts on a
// Diagnostic; it simply skips the offending chunk.
type Diagnostic struct {
	Pos     Pos
	Message string
}

func (d Diagnostic) Error() string {
	return d.Pos.String() + ": " + d.Message
}
