package lint

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"adscheck/pkg/adstxt"
)

func TestCheckCleanDocument(t *testing.T) {
	doc := &adstxt.Document{
		Records: []adstxt.DataRecord{
			{Domain: "greenadexchange.com", PublisherID: "12345", Relation: adstxt.Direct, CertAuthority: "d75815a79", HasCertAuthority: true},
			{Domain: "blueadexchange.com", PublisherID: "XF436", Relation: adstxt.Direct},
		},
		Variables: []adstxt.Variable{
			{Name: "subdomain", Value: "divisionone.example.com"},
			{Name: "CONTACT", Value: "ads@example.com"},
		},
	}

	if findings := Check("example.com", doc); len(findings) != 0 {
		t.Errorf("expected no findings, got %v", findings)
	}
}

func TestCheckFindings(t *testing.T) {
	tests := []struct {
		name       string
		doc        *adstxt.Document
		wantDetail string
	}{
		{
			name: "empty domain",
			doc: &adstxt.Document{Records: []adstxt.DataRecord{
				{PublisherID: "1", Relation: adstxt.Direct},
			}},
			wantDetail: "empty advertising system domain",
		},
		{
			name: "bad domain syntax",
			doc: &adstxt.Document{Records: []adstxt.DataRecord{
				{Domain: "http://adex.com", PublisherID: "1", Relation: adstxt.Direct},
			}},
			wantDetail: "not a valid hostname",
		},
		{
			name: "empty publisher id",
			doc: &adstxt.Document{Records: []adstxt.DataRecord{
				{Domain: "adex.com", Relation: adstxt.Reseller},
			}},
			wantDetail: "empty publisher account ID",
		},
		{
			name: "empty cert authority",
			doc: &adstxt.Document{Records: []adstxt.DataRecord{
				{Domain: "adex.com", PublisherID: "1", Relation: adstxt.Direct, HasCertAuthority: true},
			}},
			wantDetail: "empty certification authority ID",
		},
		{
			name: "unknown variable",
			doc: &adstxt.Document{Variables: []adstxt.Variable{
				{Name: "subdomian", Value: "x.example.com"},
			}},
			wantDetail: "unknown variable name",
		},
		{
			name: "bad subdomain value",
			doc: &adstxt.Document{Variables: []adstxt.Variable{
				{Name: "subdomain", Value: "bad..example.com"},
			}},
			wantDetail: "subdomain value is not a valid hostname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Check("example.com", tt.doc)
			if len(findings) == 0 {
				t.Fatal("expected at least one finding")
			}
			found := false
			for _, f := range findings {
				if strings.Contains(f.Detail, tt.wantDetail) {
					found = true
				}
				if f.Source != "example.com" {
					t.Errorf("finding source = %q, want example.com", f.Source)
				}
			}
			if !found {
				t.Errorf("findings %v do not contain detail %q", findings, tt.wantDetail)
			}
		})
	}
}

func TestLimiter(t *testing.T) {
	doc := &adstxt.Document{Variables: []adstxt.Variable{
		{Name: "bogus1", Value: "a"},
		{Name: "bogus2", Value: "b"},
		{Name: "bogus3", Value: "c"},
		{Name: "bogus4", Value: "d"},
	}}

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	limiter := NewLimiter(2)
	for _, finding := range Check("example.com", doc) {
		limiter.Log(logger, finding)
	}
	limiter.Summary(logger, "example.com")

	logText := logBuf.String()
	if got := strings.Count(logText, "lint finding\""); got != 2 {
		t.Errorf("expected 2 finding logs, got %d:\n%s", got, logText)
	}
	if !strings.Contains(logText, "lint findings suppressed") {
		t.Error("expected suppression summary log")
	}
}

func TestLimiterDisabled(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	limiter := NewLimiter(0)
	limiter.Log(logger, Finding{Source: "x", Detail: "d", Entry: "e"})
	limiter.Summary(logger, "x")

	if logBuf.Len() != 0 {
		t.Errorf("limit 0 should log nothing, got: %s", logBuf.String())
	}
}
