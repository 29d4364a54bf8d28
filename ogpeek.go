// Package ogpeek extracts Open Graph metadata from HTML documents for link
// previews. A barebones tag scanner feeds meta tags into a grouper that
// partitions them into property bags, one per described object, and a
// factory turns each bag into a typed record (article, song, movie, ...).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package ogpeek
