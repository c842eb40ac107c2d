package adstxt

import "fmt"

// Parse failures are plain comparable values, one type per failure kind.
// Callers can switch on the type or compare with errors.Is; the message
// always carries the offending input verbatim.

// InvalidRelationError reports a token that is neither direct nor reseller.
// Token holds the original input before trimming or case folding.
type InvalidRelationError struct {
	Token string
}

func (e InvalidRelationError) Error() string {
	return fmt.Sprintf("invalid account relation: %s", e.Token)
}

// InvalidRecordError reports a line whose comma-split field count is
// neither 3 nor 4.
type InvalidRecordError struct {
	Line string
}

func (e InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid data record: %s", e.Line)
}

// InvalidVariableError reports a line whose =-split field count is not
// exactly 2. A value containing = is rejected, not parsed up to the first =.
type InvalidVariableError struct {
	Line string
}

func (e InvalidVariableError) Error() string {
	return fmt.Sprintf("invalid variable: %s", e.Line)
}

// InvalidLineError reports a line that parses as neither a data record nor
// a variable. It is the only error kind surfaced by Parse and collected by
// ParseLenient.
type InvalidLineError struct {
	Line string
}

func (e InvalidLineError) Error() string {
	return fmt.Sprintf("invalid ads.txt line: %s", e.Line)
}
