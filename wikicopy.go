// Package wikicopy provides a CLI for searching Wikipedia and exporting
// articles as normalized HTML, plain text, or Markdown ready to paste into
// another authoring tool.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, htmltomarkdown/).
package wikicopy
