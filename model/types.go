package model

// AttestationRecord is the JSON form of record.Attestation.
//
// Addresses are 0x-hex; Schema and Payload are CID strings; values are
// decimal wei strings (JSON numbers cannot carry 256-bit values).
type AttestationRecord struct {
	Schema         string `json:"schema"`
	Subject        string `json:"subject"`
	Attester       string `json:"attester"`
	Time           uint64 `json:"time"`
	ExpirationTime uint64 `json:"expirationTime,omitempty"`
	RevocationTime uint64 `json:"revocationTime,omitempty"`
	Payload        string `json:"payload,omitempty"`
}

// ModuleRecord is the JSON form of record.Module.
type ModuleRecord struct {
	Resolver       string `json:"resolver"`
	Implementation string `json:"implementation"`
	Sender         string `json:"sender"`
	Metadata       []byte `json:"metadata,omitempty"`
}

// SingleRequest carries one attestation or revocation call.
type SingleRequest struct {
	Caller string            `json:"caller"`
	Value  string            `json:"value,omitempty"`
	Record AttestationRecord `json:"record"`
}

// BatchRequest carries one multi-attest or multi-revoke call. Values are
// per-item declared values; Value is the call's attached total.
type BatchRequest struct {
	Caller  string              `json:"caller"`
	Value   string              `json:"value,omitempty"`
	Records []AttestationRecord `json:"records"`
	Values  []string            `json:"values"`
}

// ModuleRequest carries one module-registration call.
type ModuleRequest struct {
	Caller string       `json:"caller"`
	Value  string       `json:"value,omitempty"`
	Record ModuleRecord `json:"record"`
}

// Verdict is the boolean outcome of an evaluated call.
type Verdict struct {
	Accepted bool `json:"accepted"`
}

// Capabilities describes a resolver variant's supported surface.
type Capabilities struct {
	Capabilities []string `json:"capabilities"`
	Payable      bool     `json:"payable"`
}
