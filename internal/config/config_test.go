package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/san-kum/motionkit/internal/mover"
	"github.com/san-kum/motionkit/internal/physics"
	"github.com/san-kum/motionkit/internal/preset"
)

const sceneDoc = `
physics:
  open: {stiffness: 200}
  close: {}
movers:
  - name: opacity
    value: 0
    goal: 1
    moving: true
    config: open
  - name: offset
    kind: point2d
    value: [10, 20]
    mode: slide
    configs:
      drag: {friction: 0.2}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sceneDoc))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Movers) != 2 {
		t.Fatalf("expected 2 movers, got %d", len(cfg.Movers))
	}
	if cfg.Movers[0].Kind != KindNumber {
		t.Errorf("expected default kind %s, got %s", KindNumber, cfg.Movers[0].Kind)
	}
	if len(cfg.Movers[0].Value) != 1 || cfg.Movers[0].Value[0] != 0 {
		t.Errorf("expected scalar value [0], got %v", cfg.Movers[0].Value)
	}
	if len(cfg.Movers[1].Value) != 2 {
		t.Errorf("expected 2d value, got %v", cfg.Movers[1].Value)
	}
	if cfg.Movers[1].Goal != nil {
		t.Errorf("expected no goal, got %v", cfg.Movers[1].Goal)
	}
}

func TestBuild(t *testing.T) {
	cfg, err := Parse([]byte(sceneDoc))
	if err != nil {
		t.Fatal(err)
	}
	scene, err := cfg.Build(preset.New())
	if err != nil {
		t.Fatal(err)
	}

	if names := scene.Physics.Names(); len(names) != 2 || names[0] != "open" || names[1] != "close" {
		t.Errorf("expected physics [open close], got %v", names)
	}
	if p, _ := scene.Physics.Get("open"); p.Stiffness != 200 || p.Mass != physics.DefaultMass {
		t.Errorf("unexpected open params %+v", p)
	}

	state := scene.State
	if state["opacity"] != 0.0 || state["opacityGoal"] != 1.0 || state["opacityIsMoving"] != true {
		t.Errorf("unexpected opacity state: %v", state)
	}
	if state["opacityMoveConfigName"] != "open" {
		t.Errorf("expected config name open, got %v", state["opacityMoveConfigName"])
	}
	if state["offset"] != (mover.Point2D{X: 10, Y: 20}) {
		t.Errorf("unexpected offset %v", state["offset"])
	}
	if state["offsetGoal"] != (mover.Point2D{}) {
		t.Errorf("expected default goal, got %v", state["offsetGoal"])
	}
	if state["offsetMoveMode"] != mover.ModeSlide {
		t.Errorf("expected slide mode, got %v", state["offsetMoveMode"])
	}
	if _, ok := state["offsetMoveConfigs"]; !ok {
		t.Error("expected offset configs")
	}
	if _, ok := state["offsetMoveConfigName"]; ok {
		t.Error("did not expect offset config name")
	}
	if len(state) != 10 {
		t.Errorf("expected 10 state keys, got %d", len(state))
	}

	if len(scene.Order) != 2 || scene.Movers["offset"].ValueGoal != "offsetGoal" {
		t.Errorf("unexpected movers %v %v", scene.Order, scene.Movers)
	}
}

func TestBuild_Physics(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		names []string
	}{
		{"absent", "movers: []", []string{physics.DefaultName}},
		{"single", "physics: {mass: 2}", []string{physics.DefaultName}},
		{"empty multi", "physics: {}", []string{}},
		{"preset", "physics: gentle", []string{physics.DefaultName}},
	}

	for _, tt := range tests {
		cfg, err := Parse([]byte(tt.doc))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		scene, err := cfg.Build(nil)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got := scene.Physics.Names(); len(got) != len(tt.names) || (len(got) > 0 && got[0] != tt.names[0]) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.names, got)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown preset", "physics: bouncy", preset.ErrUnknownPreset},
		{"bad physics", "physics: [1]", physics.ErrMalformedConfig},
		{"unknown kind", "movers: [{name: a, kind: color}]", ErrUnknownKind},
		{"duplicate", "movers: [{name: a}, {name: a}]", ErrDuplicateMover},
		{"missing name", "movers: [{kind: number}]", ErrMissingName},
		{"bad arity", "movers: [{name: a, kind: point3d, value: [1, 2]}]", ErrBadValue},
		{"state key clash", "movers: [{name: a, goal: 5}, {name: aGoal, value: 9}]", ErrDuplicateMover},
		{"state key clash reversed", "movers: [{name: aGoal}, {name: a}]", ErrDuplicateMover},
	}

	for _, tt := range tests {
		cfg, err := Parse([]byte(tt.doc))
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if _, err := cfg.Build(nil); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestLoad_RelativePresets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "presets.yaml"), []byte("presets:\n  snappy: {stiffness: 400}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	scenePath := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(scenePath, []byte("physics: snappy\npresets: presets.yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(scenePath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PresetsPath() != filepath.Join(dir, "presets.yaml") {
		t.Errorf("unexpected presets path %s", cfg.PresetsPath())
	}

	scene, err := cfg.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := scene.Physics.Default(); p.Stiffness != 400 {
		t.Errorf("expected stiffness 400, got %f", p.Stiffness)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParse_BadValue(t *testing.T) {
	if _, err := Parse([]byte("movers: [{name: a, value: high}]")); err == nil {
		t.Error("expected error for non-numeric value")
	}
}

func TestBuild_SceneAndCallerPresets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "presets.yaml"), []byte("presets:\n  snappy: {stiffness: 400}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	reg := preset.New()
	custom := physics.NewSet()
	custom.Put(physics.DefaultName, physics.Params{Mass: 3, Stiffness: 30, Damping: 3})
	reg.Register("custom", custom)

	tests := []struct {
		physics   string
		stiffness float64
	}{
		{"custom", 30},
		{"snappy", 400},
	}
	for _, tt := range tests {
		scenePath := filepath.Join(dir, tt.physics+".yaml")
		doc := "physics: " + tt.physics + "\npresets: presets.yaml\n"
		if err := os.WriteFile(scenePath, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(scenePath)
		if err != nil {
			t.Fatal(err)
		}
		scene, err := cfg.Build(reg)
		if err != nil {
			t.Errorf("%s: %v", tt.physics, err)
			continue
		}
		if p, _ := scene.Physics.Default(); p.Stiffness != tt.stiffness {
			t.Errorf("%s: expected stiffness %g, got %g", tt.physics, tt.stiffness, p.Stiffness)
		}
	}

	if _, err := reg.Lookup("snappy"); !errors.Is(err, preset.ErrUnknownPreset) {
		t.Errorf("scene presets leaked into the caller's registry: %v", err)
	}
}

func TestScene_UnknownModes(t *testing.T) {
	doc := `
movers:
  - name: a
    mode: wiggle
  - name: b
  - name: c
    mode: drag
  - name: d
    mode: bounce
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	scene, err := cfg.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := scene.UnknownModes(), []string{"a", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
