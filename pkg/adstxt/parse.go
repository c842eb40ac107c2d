package adstxt

import (
	"strings"
	"unicode"
)

// ParseAccountRelation parses a relation token. The token is trimmed and
// lower-cased before matching; only the exact words direct and reseller are
// accepted.
func ParseAccountRelation(token string) (AccountRelation, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "direct":
		return Direct, nil
	case "reseller":
		return Reseller, nil
	default:
		return 0, InvalidRelationError{Token: token}
	}
}

// ParseDataRecord parses one comma-delimited seller declaration. Exactly 3
// or 4 fields are accepted; there is no escaping, so a comma can never
// appear inside a field.
func ParseDataRecord(line string) (DataRecord, error) {
	fields := strings.Split(line, ",")

	switch len(fields) {
	case 3, 4:
		relation, err := ParseAccountRelation(fields[2])
		if err != nil {
			return DataRecord{}, err
		}
		record := DataRecord{
			Domain:      strings.TrimSpace(fields[0]),
			PublisherID: strings.TrimSpace(fields[1]),
			Relation:    relation,
		}
		if len(fields) == 4 {
			record.CertAuthority = strings.TrimSpace(fields[3])
			record.HasCertAuthority = true
		}
		return record, nil
	default:
		return DataRecord{}, InvalidRecordError{Line: line}
	}
}

// ParseVariable parses one name=value directive. Exactly one = is accepted;
// a value containing = fails rather than being split at the first =.
func ParseVariable(line string) (Variable, error) {
	fields := strings.Split(line, "=")
	if len(fields) != 2 {
		return Variable{}, InvalidVariableError{Line: line}
	}
	return Variable{
		Name:  strings.TrimSpace(fields[0]),
		Value: strings.TrimSpace(fields[1]),
	}, nil
}

// Parse parses a full ads.txt file fail-fast: the first unclassifiable line
// aborts with an InvalidLineError and no document is returned. Blank lines
// and #-comments are skipped. A line is tried as a data record first and as
// a variable second; record success always wins.
func Parse(text string) (*Document, error) {
	doc := &Document{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		if skipLine(line) {
			continue
		}

		if record, err := ParseDataRecord(line); err == nil {
			doc.Records = append(doc.Records, record)
			continue
		}

		if variable, err := ParseVariable(line); err == nil {
			doc.Variables = append(doc.Variables, variable)
			continue
		}

		return nil, InvalidLineError{Line: line}
	}

	return doc, nil
}

// ParseLenient parses a full ads.txt file collecting one InvalidLineError
// per unclassifiable line instead of aborting. It always returns a
// document; the error slice is empty exactly when every non-comment,
// non-blank line was classified.
func ParseLenient(text string) (*Document, []error) {
	doc := &Document{}
	var errs []error

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		if skipLine(line) {
			continue
		}

		if record, err := ParseDataRecord(line); err == nil {
			doc.Records = append(doc.Records, record)
			continue
		}

		if variable, err := ParseVariable(line); err == nil {
			doc.Variables = append(doc.Variables, variable)
			continue
		}

		errs = append(errs, InvalidLineError{Line: line})
	}

	return doc, errs
}

func skipLine(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}
