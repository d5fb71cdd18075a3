package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"xdao.co/arc/identity"
	"xdao.co/arc/model"
	"xdao.co/arc/resolverrpc"
	"xdao.co/arc/uidutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "addr":
		return cmdAddr(args[1:], out, errOut)
	case "uid":
		return cmdUID(args[1:], out, errOut)
	case "attest":
		return cmdVerdict("attest", args[1:], out, errOut)
	case "revoke":
		return cmdVerdict("revoke", args[1:], out, errOut)
	case "multi-attest":
		return cmdVerdict("multi-attest", args[1:], out, errOut)
	case "multi-revoke":
		return cmdVerdict("multi-revoke", args[1:], out, errOut)
	case "register-module":
		return cmdVerdict("register-module", args[1:], out, errOut)
	case "caps":
		return cmdCaps(args[1:], out, errOut)
	case "is-payable":
		return cmdIsPayable(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "arc: resolver protocol CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  arc addr --seed-hex <64hex>")
	fmt.Fprintln(w, "  arc uid payload <file>")
	fmt.Fprintln(w, "  arc uid attestation <record.json>")
	fmt.Fprintln(w, "  arc attest --target <host:port> <request.json>")
	fmt.Fprintln(w, "  arc revoke --target <host:port> <request.json>")
	fmt.Fprintln(w, "  arc multi-attest --target <host:port> <request.json>")
	fmt.Fprintln(w, "  arc multi-revoke --target <host:port> <request.json>")
	fmt.Fprintln(w, "  arc register-module --target <host:port> <request.json>")
	fmt.Fprintln(w, "  arc caps --target <host:port>")
	fmt.Fprintln(w, "  arc is-payable --target <host:port>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - request.json carries the JSON request DTO (caller, value, record/records)")
	fmt.Fprintln(w, "  - values are decimal strings; addresses are 0x-hex")
	fmt.Fprintln(w, "  - verdict commands print ACCEPT or REJECT and exit 0 either way")
}

func cmdAddr(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("addr", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var seedHex string
	fs.StringVar(&seedHex, "seed-hex", "", "ed25519 seed as 64 hex chars")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if seedHex == "" {
		fmt.Fprintln(errOut, "missing --seed-hex")
		return 2
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil || len(seed) != ed25519.SeedSize {
		fmt.Fprintln(errOut, "invalid --seed-hex (expected 64 hex chars)")
		return 2
	}
	priv := ed25519.NewKeyFromSeed(seed)
	addr, err := identity.FromED25519(priv.Public().(ed25519.PublicKey))
	if err != nil {
		fmt.Fprintf(errOut, "derive address: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, addr)
	return 0
}

func cmdUID(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "usage: arc uid <payload|attestation> <file>")
		return 2
	}
	switch args[0] {
	case "payload":
		fs := flag.NewFlagSet("uid payload", flag.ContinueOnError)
		fs.SetOutput(errOut)
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(errOut, "usage: arc uid payload <file>")
			return 2
		}
		b, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(errOut, "read payload: %v\n", err)
			return 1
		}
		id, err := uidutil.UID(b)
		if err != nil {
			fmt.Fprintf(errOut, "uid: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, id)
		return 0
	case "attestation":
		fs := flag.NewFlagSet("uid attestation", flag.ContinueOnError)
		fs.SetOutput(errOut)
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(errOut, "usage: arc uid attestation <record.json>")
			return 2
		}
		var dto model.AttestationRecord
		if err := readJSON(fs.Arg(0), &dto); err != nil {
			fmt.Fprintf(errOut, "read record: %v\n", err)
			return 1
		}
		att, err := model.ToAttestation(dto)
		if err != nil {
			fmt.Fprintf(errOut, "invalid record: %v\n", err)
			return 2
		}
		id, err := att.UID()
		if err != nil {
			fmt.Fprintf(errOut, "uid: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, id)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown uid subcommand: %s\n", args[0])
		return 2
	}
}

func cmdVerdict(op string, args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet(op, flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("target", "127.0.0.1:7878", "resolver address")
	timeout := fs.Duration("timeout", 5*time.Second, "per-RPC timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(errOut, "usage: arc %s --target <host:port> <request.json>\n", op)
		return 2
	}

	client, err := resolverrpc.Dial(*target, resolverrpc.DialOptions{Timeout: *timeout})
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()
	client.Timeout = *timeout

	var ok bool
	switch op {
	case "attest", "revoke":
		var req model.SingleRequest
		if err := readJSON(fs.Arg(0), &req); err != nil {
			fmt.Fprintf(errOut, "read request: %v\n", err)
			return 1
		}
		if op == "attest" {
			ok, err = client.Attest(req)
		} else {
			ok, err = client.Revoke(req)
		}
	case "multi-attest", "multi-revoke":
		var req model.BatchRequest
		if err := readJSON(fs.Arg(0), &req); err != nil {
			fmt.Fprintf(errOut, "read request: %v\n", err)
			return 1
		}
		if op == "multi-attest" {
			ok, err = client.MultiAttest(req)
		} else {
			ok, err = client.MultiRevoke(req)
		}
	case "register-module":
		var req model.ModuleRequest
		if err := readJSON(fs.Arg(0), &req); err != nil {
			fmt.Fprintf(errOut, "read request: %v\n", err)
			return 1
		}
		ok, err = client.RegisterModule(req)
	}
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", op, err)
		return 1
	}
	if ok {
		_, _ = fmt.Fprintln(out, "ACCEPT")
	} else {
		_, _ = fmt.Fprintln(out, "REJECT")
	}
	return 0
}

func cmdCaps(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("caps", flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("target", "127.0.0.1:7878", "resolver address")
	timeout := fs.Duration("timeout", 5*time.Second, "per-RPC timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	client, err := resolverrpc.Dial(*target, resolverrpc.DialOptions{Timeout: *timeout})
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()
	client.Timeout = *timeout

	caps, err := client.Capabilities()
	if err != nil {
		fmt.Fprintf(errOut, "caps: %v\n", err)
		return 1
	}
	for _, c := range caps.Capabilities {
		_, _ = fmt.Fprintln(out, c)
	}
	return 0
}

func cmdIsPayable(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("is-payable", flag.ContinueOnError)
	fs.SetOutput(errOut)
	target := fs.String("target", "127.0.0.1:7878", "resolver address")
	timeout := fs.Duration("timeout", 5*time.Second, "per-RPC timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	client, err := resolverrpc.Dial(*target, resolverrpc.DialOptions{Timeout: *timeout})
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()
	client.Timeout = *timeout

	payable, err := client.IsPayable()
	if err != nil {
		fmt.Fprintf(errOut, "is-payable: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, payable)
	return 0
}

func readJSON(path string, out interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
