package resolver

import "sort"

// Capability names a guarded operation a resolver variant may support.
//
// Callers are expected to probe capabilities before invoking an operation
// instead of attempting the call and interpreting its failure.
type Capability string

const (
	CapabilityAttest             Capability = "attest"
	CapabilityRevoke             Capability = "revoke"
	CapabilityMultiAttest        Capability = "multi-attest"
	CapabilityMultiRevoke        Capability = "multi-revoke"
	CapabilityModuleRegistration Capability = "module-registration"

	// CapabilityPayable advertises acceptance of bare value transfers.
	// It tracks the payable flag and cannot be granted independently.
	CapabilityPayable Capability = "payable"
)

// AllCapabilities returns every guarded-operation capability, sorted.
// CapabilityPayable is excluded: it is derived from construction state.
func AllCapabilities() []Capability {
	return []Capability{
		CapabilityAttest,
		CapabilityModuleRegistration,
		CapabilityMultiAttest,
		CapabilityMultiRevoke,
		CapabilityRevoke,
	}
}

type capabilitySet map[Capability]struct{}

func newCapabilitySet(caps []Capability) capabilitySet {
	s := make(capabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

func (s capabilitySet) has(c Capability) bool {
	_, ok := s[c]
	return ok
}

func (s capabilitySet) sorted() []Capability {
	out := make([]Capability, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
