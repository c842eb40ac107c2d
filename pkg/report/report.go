// Package report renders check results for human and machine consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"adscheck/pkg/lint"
	"adscheck/pkg/registry"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Summary is the per-file check result.
type Summary struct {
	Name        string   `json:"name" yaml:"name"`
	Source      string   `json:"source" yaml:"source"`
	Records     int      `json:"records" yaml:"records"`
	Variables   int      `json:"variables" yaml:"variables"`
	SubDomains  []string `json:"subdomains,omitempty" yaml:"subdomains,omitempty"`
	Contacts    []string `json:"contacts,omitempty" yaml:"contacts,omitempty"`
	ParseErrors []string `json:"parse_errors,omitempty" yaml:"parse_errors,omitempty"`
	Findings    []string `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// Summarize builds a Summary from a registry entry and its lint findings.
func Summarize(name string, entry registry.Entry, findings []lint.Finding) Summary {
	summary := Summary{
		Name:       name,
		Source:     entry.Source,
		SubDomains: entry.Doc.SubDomains(),
		Contacts:   entry.Doc.Contacts(),
	}
	summary.Records = len(entry.Doc.Records)
	summary.Variables = len(entry.Doc.Variables)
	for _, err := range entry.Errors {
		summary.ParseErrors = append(summary.ParseErrors, err.Error())
	}
	for _, finding := range findings {
		summary.Findings = append(summary.Findings, finding.String())
	}
	return summary
}

// ValidFormat reports whether format names a supported output format.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Render writes the summaries to w in the given format, sorted by name.
func Render(w io.Writer, format string, summaries []Summary) error {
	sorted := make([]Summary, len(summaries))
	copy(sorted, summaries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	switch format {
	case FormatText:
		return renderText(w, sorted)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(sorted)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() {
			_ = encoder.Close()
		}()
		return encoder.Encode(sorted)
	default:
		return fmt.Errorf("unknown report format: %s", format)
	}
}

func renderText(w io.Writer, summaries []Summary) error {
	for i, summary := range summaries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		status := "ok"
		if len(summary.ParseErrors) > 0 {
			status = "errors"
		}
		if _, err := fmt.Fprintf(w, "%s (%s): %s, %d records, %d variables\n",
			summary.Name, summary.Source, status, summary.Records, summary.Variables); err != nil {
			return err
		}
		for _, line := range summary.ParseErrors {
			if _, err := fmt.Fprintf(w, "  parse error: %s\n", line); err != nil {
				return err
			}
		}
		for _, line := range summary.Findings {
			if _, err := fmt.Fprintf(w, "  finding: %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}
