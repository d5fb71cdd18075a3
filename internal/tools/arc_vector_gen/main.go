// arc_vector_gen regenerates the batch accounting conformance vectors under
// testdata/conformance. Expected outcomes are produced by running the
// scenarios through a resolver core, so the vectors always reflect the
// implementation the tests pin down.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/holiman/uint256"

	"xdao.co/arc/identity"
	"xdao.co/arc/record"
	"xdao.co/arc/resolver"
)

type vector struct {
	Name        string   `json:"name"`
	Total       string   `json:"total"`
	Values      []string `json:"values"`
	RejectIndex int      `json:"rejectIndex"`
	Expect      expect   `json:"expect"`
}

type expect struct {
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
	Dispatched int    `json:"dispatched"`
	Consumed   string `json:"consumed"`
	Remaining  string `json:"remaining"`
}

type scenario struct {
	name        string
	total       string
	values      []string
	rejectIndex int
}

var scenarios = []scenario{
	{name: "exact-total", total: "6", values: []string{"1", "2", "3"}, rejectIndex: -1},
	{name: "overcommit-last", total: "6", values: []string{"1", "2", "4"}, rejectIndex: -1},
	{name: "reject-short-circuit", total: "6", values: []string{"1", "2", "3"}, rejectIndex: 1},
	{name: "surplus-retained", total: "10", values: []string{"1", "2", "3"}, rejectIndex: -1},
	{name: "zero-declared", total: "", values: []string{"", "", ""}, rejectIndex: -1},
	{name: "first-item-overcommit", total: "0", values: []string{"1"}, rejectIndex: -1},
}

func main() {
	outPath := flag.String("out", filepath.Join("testdata", "conformance", "batch_vectors.json"), "output file")
	flag.Parse()

	vectors := make([]vector, 0, len(scenarios))
	for _, s := range scenarios {
		v, err := runScenario(s)
		if err != nil {
			fatalf("scenario %s: %v", s.name, err)
		}
		vectors = append(vectors, v)
	}

	b, err := json.MarshalIndent(struct {
		Vectors []vector `json:"vectors"`
	}{Vectors: vectors}, "", "  ")
	if err != nil {
		fatalf("marshal: %v", err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatalf("mkdir out: %v", err)
	}
	if err := os.WriteFile(*outPath, b, 0o644); err != nil {
		fatalf("write vectors: %v", err)
	}
}

func runScenario(s scenario) (vector, error) {
	values, err := parseValues(s.values)
	if err != nil {
		return vector{}, err
	}
	total, err := parseValue(s.total)
	if err != nil {
		return vector{}, err
	}

	trusted := identity.MustParse("0x0101010101010101010101010101010101010101")
	dispatched := 0
	hook := scriptedHook{onAttest: func() (bool, error) {
		i := dispatched
		dispatched++
		return i != s.rejectIndex, nil
	}}
	core, err := resolver.New(resolver.Config{TrustedCaller: trusted, Hook: hook, Payable: true})
	if err != nil {
		return vector{}, err
	}

	atts := make([]record.Attestation, len(values))
	for i := range atts {
		atts[i] = record.Attestation{Subject: trusted, Attester: trusted, Time: 1}
	}

	ok, runErr := core.MultiAttest(context.Background(),
		resolver.Call{Caller: trusted, Value: total}, atts, values)

	// Replay the accounting to recover consumed/remaining; the core keeps its
	// ledger call-local.
	ledger := resolver.NewLedger(total)
	for i := 0; i < dispatched; i++ {
		if i == s.rejectIndex {
			break
		}
		v := values[i]
		if v == nil {
			v = new(uint256.Int)
		}
		if err := ledger.Covered(v); err != nil {
			break
		}
		if err := ledger.Consume(v); err != nil {
			return vector{}, err
		}
	}

	exp := expect{
		OK:         ok,
		Dispatched: dispatched,
		Consumed:   ledger.Consumed().Dec(),
		Remaining:  ledger.Remaining().Dec(),
	}
	if runErr != nil {
		if !resolver.IsInsufficientValue(runErr) {
			return vector{}, fmt.Errorf("unexpected error: %w", runErr)
		}
		exp.Error = "INSUFFICIENT_VALUE"
	}

	return vector{
		Name:        s.name,
		Total:       s.total,
		Values:      s.values,
		RejectIndex: s.rejectIndex,
		Expect:      exp,
	}, nil
}

func parseValues(ss []string) ([]*uint256.Int, error) {
	out := make([]*uint256.Int, len(ss))
	for i, s := range ss {
		v, err := parseValue(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseValue(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, nil
	}
	return uint256.FromDecimal(s)
}

type scriptedHook struct {
	onAttest func() (bool, error)
}

func (h scriptedHook) ValidateAttest(context.Context, record.Attestation, *uint256.Int) (bool, error) {
	return h.onAttest()
}

func (h scriptedHook) ValidateRevoke(context.Context, record.Attestation, *uint256.Int) (bool, error) {
	return h.onAttest()
}

func (h scriptedHook) ValidateModuleRegistration(context.Context, record.Module, *uint256.Int) (bool, error) {
	return h.onAttest()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
