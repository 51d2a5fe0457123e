// Package formazioni provides a CLI assistant for Serie A predicted starting
// lineups. It scrapes published lineup predictions, stores them as structured
// records, indexes them for semantic search, and answers natural language
// fantasy-football questions about them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, qdrant/, gemini/).
package formazioni
