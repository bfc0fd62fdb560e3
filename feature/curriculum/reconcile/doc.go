// Package reconcile merges imported curriculum documents into a live hierarchy.
//
// The Importer walks a parsed document top-down. At each level a node whose id
// is known within its parent's scope is updated, any other node is created, and
// nodes missing required fields are skipped silently. Identity maps are
// rebuilt from the live snapshot for every import, so ids are only matched
// within the parent the live hierarchy places them under.
package reconcile
