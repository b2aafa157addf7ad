// Package expodex provides a resumable crawl-and-extract pipeline for
// trade-show exhibitor directories. It walks the paginated exhibitor
// gallery of a show site, collects detail-page links, visits each detail
// page and extracts a fixed set of fields into CSV output, checkpointing
// progress so an interrupted run picks up where it left off.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package expodex
