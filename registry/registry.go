// Package registry implements the trusted caller of the resolver protocol.
//
// A Registry owns a set of resolver variants keyed by registration UID and
// dispatches attestation, revocation, and module-registration requests to
// them. Every core it constructs trusts the registry's own identity, so the
// access guard holds by construction for calls made through this package.
package registry

import (
	"context"
	"sync"

	"github.com/holiman/uint256"
	"github.com/ipfs/go-cid"

	"xdao.co/arc/identity"
	"xdao.co/arc/record"
	"xdao.co/arc/resolver"
	"xdao.co/arc/storage"
)

// ResolverConfig describes the variant to construct for a registration.
// TrustedCaller is always the registry itself and cannot be overridden.
type ResolverConfig struct {
	Hook         resolver.Hook
	Payable      bool
	Capabilities []resolver.Capability
}

// Registry is an in-memory resolver and module index.
type Registry struct {
	self identity.Address

	// payloads, when non-nil, must hold the payload bytes of every
	// attestation dispatched through the registry.
	payloads storage.Store

	mu        sync.RWMutex
	resolvers map[cid.Cid]*entry
	modules   map[cid.Cid]record.Module
}

type entry struct {
	reg  record.Registration
	core *resolver.Core
}

// Option configures a Registry.
type Option func(*Registry)

// WithPayloadStore makes the registry require attestation payloads to be
// present in the store before dispatch.
func WithPayloadStore(s storage.Store) Option {
	return func(r *Registry) { r.payloads = s }
}

// New constructs a Registry acting under the given identity.
func New(self identity.Address, opts ...Option) (*Registry, error) {
	if self.IsZero() {
		return nil, ErrNullIdentity
	}
	r := &Registry{
		self:      self,
		resolvers: make(map[cid.Cid]*entry),
		modules:   make(map[cid.Cid]record.Module),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Self returns the registry's identity, the trusted caller of every core it
// constructs.
func (r *Registry) Self() identity.Address { return r.self }

// RegisterResolver constructs a resolver core for the registration and
// indexes it under the registration UID, which becomes the resolver id.
func (r *Registry) RegisterResolver(reg record.Registration, cfg ResolverConfig) (cid.Cid, error) {
	core, err := resolver.New(resolver.Config{
		TrustedCaller: r.self,
		Hook:          cfg.Hook,
		Payable:       cfg.Payable,
		Capabilities:  cfg.Capabilities,
	})
	if err != nil {
		return cid.Undef, err
	}
	id, err := reg.UID()
	if err != nil {
		return cid.Undef, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resolvers[id]; ok {
		return cid.Undef, ErrDuplicateResolver
	}
	r.resolvers[id] = &entry{reg: reg, core: core}
	return id, nil
}

// Resolver returns the core registered under id.
func (r *Registry) Resolver(id cid.Cid) (*resolver.Core, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.core, nil
}

// Registration returns the registration record behind a resolver id.
func (r *Registry) Registration(id cid.Cid) (record.Registration, error) {
	e, err := r.lookup(id)
	if err != nil {
		return record.Registration{}, err
	}
	return e.reg, nil
}

// Resolvers returns the registered resolver ids in unspecified order.
func (r *Registry) Resolvers() []cid.Cid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]cid.Cid, 0, len(r.resolvers))
	for id := range r.resolvers {
		out = append(out, id)
	}
	return out
}

// Attest dispatches a single attestation to the resolver registered under id.
func (r *Registry) Attest(ctx context.Context, id cid.Cid, att record.Attestation, value *uint256.Int) (bool, error) {
	e, err := r.lookup(id)
	if err != nil {
		return false, err
	}
	if err := r.checkPayload(att); err != nil {
		return false, err
	}
	return e.core.Attest(ctx, r.call(value), att)
}

// Revoke dispatches a single revocation.
func (r *Registry) Revoke(ctx context.Context, id cid.Cid, att record.Attestation, value *uint256.Int) (bool, error) {
	e, err := r.lookup(id)
	if err != nil {
		return false, err
	}
	return e.core.Revoke(ctx, r.call(value), att)
}

// MultiAttest dispatches a batch of attestations with per-item declared
// values under a single attached total.
func (r *Registry) MultiAttest(ctx context.Context, id cid.Cid, atts []record.Attestation, values []*uint256.Int, total *uint256.Int) (bool, error) {
	e, err := r.lookup(id)
	if err != nil {
		return false, err
	}
	for _, att := range atts {
		if err := r.checkPayload(att); err != nil {
			return false, err
		}
	}
	return e.core.MultiAttest(ctx, r.call(total), atts, values)
}

// MultiRevoke dispatches a batch of revocations.
func (r *Registry) MultiRevoke(ctx context.Context, id cid.Cid, atts []record.Attestation, values []*uint256.Int, total *uint256.Int) (bool, error) {
	e, err := r.lookup(id)
	if err != nil {
		return false, err
	}
	return e.core.MultiRevoke(ctx, r.call(total), atts, values)
}

// RegisterModule evaluates a module registration against the resolver named
// by mod.Resolver and indexes the module under its UID when accepted. A
// rejected or failed registration leaves the index untouched.
func (r *Registry) RegisterModule(ctx context.Context, mod record.Module, value *uint256.Int) (cid.Cid, bool, error) {
	e, err := r.lookup(mod.Resolver)
	if err != nil {
		return cid.Undef, false, err
	}
	id, err := mod.UID()
	if err != nil {
		return cid.Undef, false, err
	}

	r.mu.RLock()
	_, dup := r.modules[id]
	r.mu.RUnlock()
	if dup {
		return cid.Undef, false, ErrDuplicateModule
	}

	ok, err := e.core.ModuleRegistration(ctx, r.call(value), mod)
	if err != nil || !ok {
		return cid.Undef, ok, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.modules[id]; dup {
		return cid.Undef, false, ErrDuplicateModule
	}
	r.modules[id] = mod
	return id, true, nil
}

// Module returns the module registered under id.
func (r *Registry) Module(id cid.Cid) (record.Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mod, ok := r.modules[id]
	if !ok {
		return record.Module{}, ErrUnknownModule
	}
	return mod, nil
}

func (r *Registry) lookup(id cid.Cid) (*entry, error) {
	if !id.Defined() {
		return nil, ErrUnknownResolver
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.resolvers[id]
	if !ok {
		return nil, ErrUnknownResolver
	}
	return e, nil
}

func (r *Registry) call(value *uint256.Int) resolver.Call {
	return resolver.Call{Caller: r.self, Value: value}
}

func (r *Registry) checkPayload(att record.Attestation) error {
	if r.payloads == nil || !att.Payload.Defined() {
		return nil
	}
	if !r.payloads.Has(att.Payload) {
		return ErrPayloadMissing
	}
	return nil
}
