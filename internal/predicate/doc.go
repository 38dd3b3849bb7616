// Package predicate implements the catalog of match predicates used by Ferret
// scans. Each predicate is a stateless classifier over a single fsmeta.Entry
// and is safe to reuse across concurrent scans.
package predicate
