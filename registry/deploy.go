package registry

import (
	"context"

	"github.com/ipfs/go-cid"

	"xdao.co/arc/identity"
	"xdao.co/arc/record"
)

// Deployer provisions module implementations for accepted registrations.
//
// The registry itself never deploys anything; it evaluates registrations and
// records them. A Deployer is the seam where an execution environment plugs
// in its provisioning strategy.
type Deployer interface {
	// Deploy provisions the module's implementation directly.
	Deploy(ctx context.Context, mod record.Module) (identity.Address, error)

	// DeployViaContentAddress provisions from content-addressed code bytes.
	DeployViaContentAddress(ctx context.Context, code cid.Cid, mod record.Module) (identity.Address, error)

	// DeployViaFactory delegates provisioning to a factory identity.
	DeployViaFactory(ctx context.Context, factory identity.Address, mod record.Module) (identity.Address, error)
}
