package record

import (
	"encoding/binary"

	"github.com/ipfs/go-cid"

	"xdao.co/arc/uidutil"
)

// Canonical encodings are the identity-bearing byte forms of records: equal
// records always produce equal bytes, and UIDs are derived from them.
//
// Layout: a version tag, then every field in declaration order. Unsigned
// integers are 8-byte big-endian; variable-length fields carry a 4-byte
// big-endian length prefix. An undefined CID encodes as length zero.

const (
	tagAttestation  = "arc/attestation/v1"
	tagModule       = "arc/module/v1"
	tagRegistration = "arc/registration/v1"
)

// Canonical returns the canonical bytes of the attestation.
func (a Attestation) Canonical() []byte {
	var e encoder
	e.str(tagAttestation)
	e.cid(a.Schema)
	e.bytes(a.Subject[:])
	e.bytes(a.Attester[:])
	e.u64(a.Time)
	e.u64(a.ExpirationTime)
	e.u64(a.RevocationTime)
	e.cid(a.Payload)
	return e.buf
}

// UID returns the attestation UID derived from its canonical bytes.
func (a Attestation) UID() (cid.Cid, error) {
	return uidutil.UID(a.Canonical())
}

// Canonical returns the canonical bytes of the module record.
func (m Module) Canonical() []byte {
	var e encoder
	e.str(tagModule)
	e.cid(m.Resolver)
	e.bytes(m.Implementation[:])
	e.bytes(m.Sender[:])
	e.lenPrefixed(m.Metadata)
	return e.buf
}

// UID returns the module UID derived from its canonical bytes.
func (m Module) UID() (cid.Cid, error) {
	return uidutil.UID(m.Canonical())
}

// Canonical returns the canonical bytes of the registration.
func (r Registration) Canonical() []byte {
	var e encoder
	e.str(tagRegistration)
	e.lenPrefixed([]byte(r.Handle))
	e.bytes(r.Owner[:])
	return e.buf
}

// UID returns the registration UID. The registry uses it as the resolver id.
func (r Registration) UID() (cid.Cid, error) {
	return uidutil.UID(r.Canonical())
}

type encoder struct {
	buf []byte
}

func (e *encoder) str(s string) {
	e.lenPrefixed([]byte(s))
}

func (e *encoder) bytes(b []byte) {
	e.buf = append(e.buf, b...)
}

func (e *encoder) u64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) lenPrefixed(b []byte) {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(b)))
	e.buf = append(e.buf, l[:]...)
	e.buf = append(e.buf, b...)
}

func (e *encoder) cid(id cid.Cid) {
	if !id.Defined() {
		e.lenPrefixed(nil)
		return
	}
	e.lenPrefixed(id.Bytes())
}
