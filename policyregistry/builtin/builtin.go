// Package builtin registers the stock policy backends.
//
// Import for side effects:
//
//	import _ "xdao.co/arc/policyregistry/builtin"
package builtin

import (
	"flag"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"xdao.co/arc/identity"
	"xdao.co/arc/policy"
	"xdao.co/arc/policyregistry"
	"xdao.co/arc/resolver"
)

var (
	flagFee       string
	flagDeny      string
	flagExpiryTTL uint64
)

func init() {
	policyregistry.MustRegister(policyregistry.Backend{
		Name:        "open",
		Description: "approve every request",
		Open: func() (resolver.Hook, func() error, error) {
			return policy.Open{}, nil, nil
		},
	})

	policyregistry.MustRegister(policyregistry.Backend{
		Name:        "fee",
		Description: "require a minimum value per attestation",
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagFee, "policy-fee", "0", "Minimum wei per attestation (for --policy=fee)")
		},
		Open: func() (resolver.Hook, func() error, error) {
			amount, err := uint256.FromDecimal(strings.TrimSpace(flagFee))
			if err != nil {
				return nil, nil, fmt.Errorf("invalid --policy-fee: %w", err)
			}
			return policy.Fee{Amount: amount}, nil, nil
		},
	})

	policyregistry.MustRegister(policyregistry.Backend{
		Name:        "denylist",
		Description: "reject requests involving blocked identities",
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.StringVar(&flagDeny, "policy-deny", "", "Comma-separated hex addresses to block (for --policy=denylist)")
		},
		Open: func() (resolver.Hook, func() error, error) {
			var addrs []identity.Address
			for _, s := range strings.Split(flagDeny, ",") {
				s = strings.TrimSpace(s)
				if s == "" {
					continue
				}
				a, err := identity.Parse(s)
				if err != nil {
					return nil, nil, fmt.Errorf("invalid --policy-deny entry %q: %w", s, err)
				}
				addrs = append(addrs, a)
			}
			return policy.NewDenylist(addrs...), nil, nil
		},
	})

	policyregistry.MustRegister(policyregistry.Backend{
		Name:        "expiry",
		Description: "require a bounded expiration on attestations",
		RegisterFlags: func(fs *flag.FlagSet) {
			fs.Uint64Var(&flagExpiryTTL, "policy-expiry-max-ttl", 86400, "Max seconds between creation and expiration (for --policy=expiry)")
		},
		Open: func() (resolver.Hook, func() error, error) {
			return policy.ExpiryWindow{MaxTTL: flagExpiryTTL}, nil, nil
		},
	})
}
