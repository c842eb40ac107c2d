// Package adstxt parses the IAB ads.txt / app-ads.txt format.
//
// The package is pure: it performs no I/O and takes the full file contents
// as a string. Retrieval of the file (HTTP, disk, cache) is the caller's
// job.
package adstxt

import "strings"

// AccountRelation states whether a seller account is held directly with the
// advertising system or through a reseller.
type AccountRelation int

const (
	Direct AccountRelation = iota + 1
	Reseller
)

// String returns the canonical upper-case form used in ads.txt files.
func (r AccountRelation) String() string {
	switch r {
	case Direct:
		return "DIRECT"
	case Reseller:
		return "RESELLER"
	default:
		return "UNKNOWN"
	}
}

// DataRecord is one authorized seller declaration. All fields hold the
// trimmed form of the source tokens. HasCertAuthority is true exactly when
// the source line carried a fourth field, even an empty one.
type DataRecord struct {
	Domain           string
	PublisherID      string
	Relation         AccountRelation
	CertAuthority    string
	HasCertAuthority bool
}

// Variable is a name=value directive line, e.g. subdomain= or contact=.
// Names need not be unique; repeated variables are all retained.
type Variable struct {
	Name  string
	Value string
}

// Document holds the records and variables of one ads.txt file in source
// order.
type Document struct {
	Records   []DataRecord
	Variables []Variable
}

// Values returns the values of every variable whose name exactly equals
// name, in source order.
func (d *Document) Values(name string) []string {
	var values []string
	for _, v := range d.Variables {
		if v.Name == name {
			values = append(values, v.Value)
		}
	}
	return values
}

// SubDomains returns the values of every subdomain= variable, matching the
// name case-insensitively.
func (d *Document) SubDomains() []string {
	return d.valuesFold("subdomain")
}

// Contacts returns the values of every contact= variable, matching the name
// case-insensitively.
func (d *Document) Contacts() []string {
	return d.valuesFold("contact")
}

func (d *Document) valuesFold(name string) []string {
	var values []string
	for _, v := range d.Variables {
		if strings.EqualFold(v.Name, name) {
			values = append(values, v.Value)
		}
	}
	return values
}
