package entities

// LineRange is an optional 0-based selection inside a file.
// Any field may be nil.
type LineRange struct {
	StartLine   *int
	StartColumn *int
	EndLine     *int
	EndColumn   *int
}

// NewLineRange builds a range covering whole lines.
func NewLineRange(startLine, endLine int) LineRange {
	return LineRange{StartLine: &startLine, EndLine: &endLine}
}

// NewSelection builds a range with both lines and columns.
func NewSelection(startLine, startColumn, endLine, endColumn int) LineRange {
	return LineRange{
		StartLine:   &startLine,
		StartColumn: &startColumn,
		EndLine:     &endLine,
		EndColumn:   &endColumn,
	}
}

// StartLineOnly builds a range with a start line and nothing else.
func StartLineOnly(startLine int) LineRange {
	return LineRange{StartLine: &startLine}
}

// HasStart reports whether the start line is set.
func (r LineRange) HasStart() bool { return r.StartLine != nil }

// HasEnd reports whether the end line is set.
func (r LineRange) HasEnd() bool { return r.EndLine != nil }

// IsEmpty reports whether no bound is set at all.
func (r LineRange) IsEmpty() bool {
	return r.StartLine == nil && r.StartColumn == nil && r.EndLine == nil && r.EndColumn == nil
}

// Normalize swaps start and end (lines and columns together) when the
// selection was made bottom-to-top. Builders assume start <= end.
func (r LineRange) Normalize() LineRange {
	if r.StartLine == nil || r.EndLine == nil || *r.StartLine <= *r.EndLine {
		return r
	}
	return LineRange{
		StartLine:   r.EndLine,
		StartColumn: r.EndColumn,
		EndLine:     r.StartLine,
		EndColumn:   r.StartColumn,
	}
}
