// Package model defines stable boundary types for API layers.
//
// These structs are the only types intended for direct JSON serialization by
// consumers; protocol types live in record and resolver.
package model

import (
	"errors"
	"strings"

	"github.com/holiman/uint256"
	"github.com/ipfs/go-cid"

	"xdao.co/arc/identity"
	"xdao.co/arc/record"
	"xdao.co/arc/resolver"
)

// ToCall converts the caller/value pair of a request.
func ToCall(caller, value string) (resolver.Call, error) {
	addr, err := identity.Parse(caller)
	if err != nil {
		return resolver.Call{}, NewError(ErrInvalidAddress, "invalid caller: "+err.Error())
	}
	v, err := toValue(value)
	if err != nil {
		return resolver.Call{}, err
	}
	return resolver.Call{Caller: addr, Value: v}, nil
}

// ToAttestation converts an AttestationRecord DTO.
func ToAttestation(r AttestationRecord) (record.Attestation, error) {
	schema, err := toCID(r.Schema, true)
	if err != nil {
		return record.Attestation{}, NewError(ErrInvalidUID, "invalid schema: "+err.Error())
	}
	payload, err := toCID(r.Payload, false)
	if err != nil {
		return record.Attestation{}, NewError(ErrInvalidUID, "invalid payload: "+err.Error())
	}
	subject, err := identity.Parse(r.Subject)
	if err != nil {
		return record.Attestation{}, NewError(ErrInvalidAddress, "invalid subject: "+err.Error())
	}
	attester, err := identity.Parse(r.Attester)
	if err != nil {
		return record.Attestation{}, NewError(ErrInvalidAddress, "invalid attester: "+err.Error())
	}

	att := record.Attestation{
		Schema:         schema,
		Subject:        subject,
		Attester:       attester,
		Time:           r.Time,
		ExpirationTime: r.ExpirationTime,
		RevocationTime: r.RevocationTime,
		Payload:        payload,
	}
	if err := att.Validate(); err != nil {
		return record.Attestation{}, NewError(ErrInvalidRequest, err.Error())
	}
	return att, nil
}

// ToModule converts a ModuleRecord DTO.
func ToModule(r ModuleRecord) (record.Module, error) {
	res, err := toCID(r.Resolver, true)
	if err != nil {
		return record.Module{}, NewError(ErrInvalidUID, "invalid resolver id: "+err.Error())
	}
	impl, err := identity.Parse(r.Implementation)
	if err != nil {
		return record.Module{}, NewError(ErrInvalidAddress, "invalid implementation: "+err.Error())
	}
	sender, err := identity.Parse(r.Sender)
	if err != nil {
		return record.Module{}, NewError(ErrInvalidAddress, "invalid sender: "+err.Error())
	}
	return record.Module{
		Resolver:       res,
		Implementation: impl,
		Sender:         sender,
		Metadata:       append([]byte(nil), r.Metadata...),
	}, nil
}

// ToValues converts per-item declared values.
func ToValues(vs []string) ([]*uint256.Int, error) {
	out := make([]*uint256.Int, 0, len(vs))
	for i, s := range vs {
		v, err := toValue(s)
		if err != nil {
			return nil, NewError(ErrInvalidValue, "invalid values["+itoa(i)+"]")
		}
		out = append(out, v)
	}
	return out, nil
}

// FromAttestation converts a protocol record to its DTO.
func FromAttestation(a record.Attestation) AttestationRecord {
	out := AttestationRecord{
		Subject:        a.Subject.String(),
		Attester:       a.Attester.String(),
		Time:           a.Time,
		ExpirationTime: a.ExpirationTime,
		RevocationTime: a.RevocationTime,
	}
	if a.Schema.Defined() {
		out.Schema = a.Schema.String()
	}
	if a.Payload.Defined() {
		out.Payload = a.Payload.String()
	}
	return out
}

// FromModule converts a protocol module record to its DTO.
func FromModule(m record.Module) ModuleRecord {
	out := ModuleRecord{
		Implementation: m.Implementation.String(),
		Sender:         m.Sender.String(),
		Metadata:       append([]byte(nil), m.Metadata...),
	}
	if m.Resolver.Defined() {
		out.Resolver = m.Resolver.String()
	}
	return out
}

// MapErr projects protocol errors onto stable coded errors.
func MapErr(err error) error {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}
	switch {
	case resolver.IsAccessDenied(err):
		return NewError(ErrAccessDenied, err.Error())
	case resolver.IsInsufficientValue(err):
		return NewError(ErrInsufficientValue, err.Error())
	case resolver.IsNotPayable(err):
		return NewError(ErrNotPayable, err.Error())
	case resolver.IsKind(err, resolver.KindValidation):
		return NewError(ErrInvalidRequest, err.Error())
	case resolver.IsKind(err, resolver.KindConfig):
		return NewError(ErrInvalidRequest, err.Error())
	default:
		return NewError(ErrInternal, err.Error())
	}
}

func toValue(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, NewError(ErrInvalidValue, "invalid decimal value "+s)
	}
	return v, nil
}

func toCID(s string, required bool) (cid.Cid, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		if required {
			return cid.Undef, errors.New("missing cid")
		}
		return cid.Undef, nil
	}
	id, err := cid.Decode(s)
	if err != nil || !id.Defined() {
		return cid.Undef, errors.New("malformed cid")
	}
	return id, nil
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var b [32]byte
	n := len(b)
	for i > 0 {
		n--
		b[n] = byte('0' + (i % 10))
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
