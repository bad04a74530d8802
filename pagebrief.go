// Package pagebrief reduces an arbitrary web page to a bounded, cleaned
// plain-text excerpt and hands it to an external language model for
// summarization.
//
// This package contains domain types, interfaces and pure pipeline logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// gemini/, http/).
package pagebrief
