// Package fsmeta is the platform-abstracted metadata accessor for Ferret.
// It exposes permission bits, ownership, capabilities, size, and modification
// time behind discrete queries so that predicate code never inspects raw
// platform bit layouts. Features a platform lacks (e.g. Linux capabilities on
// Windows) are reported as explicitly unsupported, never as errors.
package fsmeta
