package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"google.golang.org/grpc"

	"xdao.co/arc/identity"
	"xdao.co/arc/policyregistry"
	"xdao.co/arc/resolver"
	"xdao.co/arc/resolverrpc"

	_ "xdao.co/arc/policyregistry/builtin"
)

func main() {
	fs := flag.NewFlagSet("arc-resolverd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7878", "listen address")
	trusted := fs.String("trusted", "", "trusted caller address (0x-hex, required)")
	payable := fs.Bool("payable", false, "accept bare value transfers")
	policyName := fs.String("policy", "open", "policy backend name")
	caps := fs.String("capabilities", "", "comma-separated capability subset (empty means all)")
	listPolicies := fs.Bool("list-policies", false, "List supported policy backends and exit")

	policyregistry.RegisterFlags(fs)

	_ = fs.Parse(os.Args[1:])
	if *listPolicies {
		for _, b := range policyregistry.List() {
			if b.Description == "" {
				_, _ = fmt.Fprintf(os.Stdout, "%s\n", b.Name)
				continue
			}
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\n", b.Name, b.Description)
		}
		return
	}

	trustedAddr, err := identity.Parse(*trusted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -trusted: %v\n", err)
		os.Exit(2)
	}

	hook, closeFn, err := policyregistry.Open(*policyName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if closeFn != nil {
		defer closeFn()
	}

	cfg := resolver.Config{
		TrustedCaller: trustedAddr,
		Hook:          hook,
		Payable:       *payable,
	}
	if *caps != "" {
		for _, c := range strings.Split(*caps, ",") {
			cfg.Capabilities = append(cfg.Capabilities, resolver.Capability(strings.TrimSpace(c)))
		}
	}
	core, err := resolver.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	resolverrpc.RegisterResolverServer(s, &resolverrpc.Server{Core: core})

	fmt.Fprintf(os.Stderr, "arc-resolverd listening on %s (policy=%s payable=%v)\n",
		lis.Addr().String(), *policyName, *payable)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
