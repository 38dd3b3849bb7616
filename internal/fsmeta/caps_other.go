//go:build !linux

package fsmeta

const capsSupported = false

// Capabilities are a Linux concept. The unsupported marker lets predicates
// distinguish "no capabilities" from "cannot know".
func readCaps(path string) CapabilitySet {
	return CapabilitySet{}
}
