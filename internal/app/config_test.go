package app

import (
	"flag"
	"testing"
)

func TestConfigBindAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ocean", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-width", "320", "-cell", "4", "-seed", "9", "-set", "fish_speed=2", "-set", "w=400"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	oc := cfg.Ocean()
	if oc.Width != 400 {
		t.Fatalf("width = %d, want -set override 400", oc.Width)
	}
	if oc.Controls.CellSize != 4 || oc.Seed != 9 || oc.Controls.FishSpeed != 2 {
		t.Fatalf("ocean config = %+v", oc)
	}
}

func TestKVListRejectsBarePairs(t *testing.T) {
	var l KVList
	if err := l.Set("fish"); err == nil {
		t.Fatal("expected error for missing '='")
	}
	if err := l.Set(" a = 1 "); err != nil {
		t.Fatal(err)
	}
	if got := l.Map()["a"]; got != "1" {
		t.Fatalf("a = %q", got)
	}
}
