package weapon

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"testing/fstest"
)

type sayAction struct {
	Message string `yaml:"message"`
}

func (a *sayAction) Execute(Context, *InputBinding, *ActionBinding) error { return nil }

func testRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("say", func(p Params) (Action, error) {
		a := &sayAction{}
		if err := p.Decode(a); err != nil {
			return nil, err
		}
		if a.Message == "" {
			return nil, errors.New("message is required")
		}
		return a, nil
	})
	reg.Register("noop", func(Params) (Action, error) {
		return ActionFunc(func(Context, *InputBinding, *ActionBinding) error { return nil }), nil
	})
	return reg
}

const lance = `
name: lance
bindings:
  - name: beam
    mode: continuous
    input: primary
    hand: left
    actions:
      - {phase: on_start, type: say, params: {message: hum}}
      - {phase: on_tick, tick_rate: 0.1, type: noop}
  - mode: press
    input: secondary
    cooldown: 0.25
    actions:
      - {phase: on_perform, type: say, params: {message: bang}}
`

func TestDecode(t *testing.T) {
	def, err := Decode([]byte(lance), testRegistry(), nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if def.Name != "lance" || len(def.Bindings) != 2 {
		t.Fatalf("def = %+v", def)
	}
	beam := def.Bindings[0]
	if beam.Mode != ModeContinuous || beam.Hand != HandLeft || beam.Actions[1].TickRate != 0.1 {
		t.Errorf("beam = %+v", beam)
	}
	if say, ok := beam.Actions[0].Action.(*sayAction); !ok || say.Message != "hum" {
		t.Errorf("on_start action = %#v", beam.Actions[0].Action)
	}
	press := def.Bindings[1]
	if press.Hand != HandRight || press.Cooldown != 0.25 {
		t.Errorf("press = %+v", press)
	}
	if press.Label(1) != "press:secondary[1]" {
		t.Errorf("label = %q", press.Label(1))
	}
	if err := def.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDecodeUnbuiltActionsAreReported(t *testing.T) {
	var logs bytes.Buffer
	src := `
name: junk
bindings:
  - mode: press
    input: primary
    actions:
      - {phase: on_perform, type: laser}
      - {phase: on_perform, type: say}
`
	def, err := Decode([]byte(src), testRegistry(), log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(logs.String(), `unknown action type "laser"`) || !strings.Contains(logs.String(), "message is required") {
		t.Errorf("logs = %s", logs.String())
	}
	err = def.Validate()
	if !errors.Is(err, ErrNilAction) {
		t.Errorf("Validate = %v, want ErrNilAction", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte("bindings: [oops"), testRegistry(), nil); err == nil {
		t.Error("expected a decode error")
	}
}

func TestValidateCollectsProblems(t *testing.T) {
	def := &Definition{Bindings: []InputBinding{
		{Mode: "tap", Input: "primary"},
		{Mode: ModeContinuous, HoldTime: -1, Actions: []ActionBinding{{Phase: PhaseOnTick, Action: &sayAction{}}}},
		{Mode: ModePress, Input: "primary", Hand: "lft", Actions: []ActionBinding{{Phase: PhaseOnPerform, Action: &sayAction{}}}},
	}}
	err := def.Validate()
	for _, want := range []error{ErrUnknownMode, ErrUnknownHand, ErrMissingSource, ErrBadTiming, ErrBadTickRate} {
		if !errors.Is(err, want) {
			t.Errorf("Validate missing %v: %v", want, err)
		}
	}
	if !strings.Contains(err.Error(), "name must not be empty") {
		t.Errorf("Validate = %v", err)
	}
	var nilDef *Definition
	if !errors.Is(nilDef.Validate(), ErrNilDefinition) {
		t.Error("nil definition should fail validation")
	}
}

func TestLoadCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"weapons/lance.yaml": {Data: []byte(lance)},
		"weapons/pistol.yml": {Data: []byte(`
bindings:
  - {mode: press, input: primary, actions: [{phase: on_perform, type: noop}]}
`)},
		"weapons/README.md": {Data: []byte("not a weapon")},
	}
	cat, err := LoadCatalog(fsys, "weapons", testRegistry(), nil)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if got := strings.Join(cat.Names(), ","); got != "lance,pistol" {
		t.Errorf("names = %s", got)
	}
	if _, ok := cat.Get("pistol"); !ok {
		t.Error("pistol missing; the file stem should name it")
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"empty": {"weapons/notes.txt": {Data: []byte("x")}},
		"duplicate": {
			"weapons/a.yaml": {Data: []byte("name: same")},
			"weapons/b.yaml": {Data: []byte("name: same")},
		},
		"malformed": {"weapons/a.yaml": {Data: []byte("name: [")}},
		"missing":   {},
	}
	for name, fsys := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadCatalog(fsys, "weapons", testRegistry(), nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := testRegistry()
	if !reg.Has("say") || reg.Has("laser") {
		t.Error("Has")
	}
	if got := strings.Join(reg.Tags(), ","); got != "noop,say" {
		t.Errorf("Tags = %s", got)
	}
	if _, err := reg.Build("laser", nodeParams{}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Build unknown = %v", err)
	}
	reg.Register("nil", func(Params) (Action, error) { return nil, nil })
	if _, err := reg.Build("nil", nodeParams{}); !errors.Is(err, ErrNilAction) {
		t.Errorf("Build nil = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	reg.Register("say", func(Params) (Action, error) { return nil, nil })
}
