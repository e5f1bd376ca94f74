// Package richmark converts semantically-annotated HTML documents into
// schema.org structured-data records (JSON-LD) for search-engine rich
// results. Authors mark elements with a fixed class-naming grammar
// ({baseID}[-{instanceID}]-{fieldType}); the engine locates those elements,
// groups them by logical entity instance, extracts typed field values,
// applies domain normalization, and emits schema.org-typed JSON objects.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, yaml/) or their
// domain (extract/, jsonld/).
package richmark
