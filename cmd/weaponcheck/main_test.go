package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/doomerang-arsenal/actions"
	"github.com/automoto/doomerang-arsenal/assets"
	"github.com/automoto/doomerang-arsenal/weapon"
)

var gameSources = []string{"primary", "secondary", "ability", "melee"}

func TestEmbeddedWeaponsPass(t *testing.T) {
	var logs bytes.Buffer
	catalog, err := weapon.LoadCatalog(assets.FS, "weapons", actions.NewRegistry(), log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	var out bytes.Buffer
	if n := check(&out, catalog, gameSources, true); n != 0 {
		t.Errorf("%d embedded weapons failed:\n%s%s", n, out.String(), logs.String())
	}
	for _, name := range []string{"blaster", "charge_cannon", "plasma_lance", "boomerang"} {
		if !strings.Contains(out.String(), "ok   "+name) {
			t.Errorf("report missing %s:\n%s", name, out.String())
		}
	}
}

func TestCheckReportsProblems(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yaml": {Data: []byte(`
bindings:
  - {mode: press, input: primary, actions: [{phase: on_perform, type: recoil, params: {force: 1}}]}
`)},
		"bad.yaml": {Data: []byte(`
bindings:
  - {mode: charge, input: trigger, actions: [{phase: on_perform, type: recoil}]}
`)},
	}
	catalog, err := weapon.LoadCatalog(fsys, ".", actions.NewRegistry(), nil)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	var out bytes.Buffer
	if n := check(&out, catalog, gameSources, false); n != 1 {
		t.Fatalf("failed = %d, want 1:\n%s", n, out.String())
	}
	report := out.String()
	for _, want := range []string{"FAIL bad", `input "trigger" is not provided`, "action 0 (recoil)"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "good") {
		t.Errorf("quiet report mentions a passing weapon:\n%s", report)
	}
}

func TestCheckWithoutSourcesSkipsInputCheck(t *testing.T) {
	catalog := weapon.NewCatalog()
	def, err := weapon.Decode([]byte(`
name: odd
bindings:
  - {mode: press, input: anything, actions: [{phase: on_perform, type: log, params: {message: hi}}]}
`), actions.NewRegistry(), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := catalog.Add(def); err != nil {
		t.Fatal(err)
	}
	if n := check(io.Discard, catalog, nil, false); n != 0 {
		t.Errorf("failed = %d, want 0", n)
	}
}
