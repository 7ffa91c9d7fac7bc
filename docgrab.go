// Package docgrab extracts structured textual content from documentation
// websites and consolidates it into a single plain-text document. It crawls
// a site (or fetches an explicit link list), isolates the main content of
// each page while preserving code blocks and tables through the flattening
// step, and assembles the cleaned pages into one timestamped output file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, trafilatura/).
package docgrab
