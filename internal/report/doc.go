// Package report renders the environment report.
//
// The report is a fixed, ordered list of attributes. Each is printed as one
// line:
//
//	Java Version: 21.0.2
//	Java Vendor: Eclipse Adoptium
//	...
//	User Dir: /home/alice/src
//
// Values come from a Source, normally a Properties snapshot assembled once
// per run. A key the source does not define is printed with an empty value;
// it never aborts the report. Line breaks inside a value are replaced with
// spaces so the output always has one line per attribute.
package report
