package main

import "testing"

func TestWorldOptionsFillsTerminalSize(t *testing.T) {
	opts := worldOptions(map[string]string{}, "", 80, 46)
	want := map[string]string{
		"w":                "80",
		"h":                "46",
		"drain_half_width": "8",
		"spawn_radius":     "2",
	}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("%s: expected %q, got %q", k, v, opts[k])
		}
	}
	if _, ok := opts["config"]; ok {
		t.Fatal("config key should only be set when a path is given")
	}
}

func TestWorldOptionsKeepsOverrides(t *testing.T) {
	opts := worldOptions(map[string]string{"w": "40", "drain_half_width": "3"}, "world.yaml", 80, 46)
	if opts["w"] != "40" || opts["drain_half_width"] != "3" {
		t.Fatalf("explicit overrides must win, got %v", opts)
	}
	if opts["h"] != "46" {
		t.Fatalf("expected terminal height, got %q", opts["h"])
	}
	if opts["config"] != "world.yaml" {
		t.Fatalf("expected config path, got %q", opts["config"])
	}
}
