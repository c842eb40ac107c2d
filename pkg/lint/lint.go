// Package lint runs advisory checks over parsed ads.txt documents.
//
// Findings never change parse results: a document that parses stays parsed,
// lint only points at entries a publisher probably wants to fix. All checks
// are syntax-only; nothing is looked up over the network.
package lint

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"adscheck/pkg/adstxt"
)

// Finding is one advisory issue in a checked document.
type Finding struct {
	Source string
	Detail string
	Entry  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Detail, f.Entry)
}

// Well-known variable names from the ads.txt specification.
var knownVariables = map[string]bool{
	"contact":                true,
	"subdomain":              true,
	"inventorypartnerdomain": true,
	"ownerdomain":            true,
	"managerdomain":          true,
}

// Check inspects a parsed document and returns its findings in document
// order, records first.
func Check(source string, doc *adstxt.Document) []Finding {
	var findings []Finding

	add := func(detail string, entry string) {
		findings = append(findings, Finding{Source: source, Detail: detail, Entry: entry})
	}

	for _, record := range doc.Records {
		if record.Domain == "" {
			add("record has empty advertising system domain", recordEntry(record))
		} else if !isDomainName(record.Domain) {
			add("record domain is not a valid hostname", record.Domain)
		}
		if record.PublisherID == "" {
			add("record has empty publisher account ID", recordEntry(record))
		}
		if record.HasCertAuthority && record.CertAuthority == "" {
			add("record has empty certification authority ID", recordEntry(record))
		}
	}

	for _, variable := range doc.Variables {
		if !knownVariables[strings.ToLower(variable.Name)] {
			add("unknown variable name", variable.Name)
			continue
		}
		if strings.EqualFold(variable.Name, "subdomain") && !isDomainName(variable.Value) {
			add("subdomain value is not a valid hostname", variable.Value)
		}
	}

	return findings
}

func recordEntry(record adstxt.DataRecord) string {
	fields := []string{record.Domain, record.PublisherID, record.Relation.String()}
	if record.HasCertAuthority {
		fields = append(fields, record.CertAuthority)
	}
	return strings.Join(fields, ", ")
}

func isDomainName(name string) bool {
	trimmed := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
	if trimmed == "" {
		return false
	}
	if strings.ContainsAny(trimmed, "/: ") {
		return false
	}
	_, ok := dns.IsDomainName(trimmed)
	return ok
}
