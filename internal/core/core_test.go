package core

import (
	"slices"
	"testing"
)

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nilfactory", nil)
	if len(Sims()) != before {
		t.Fatal("empty names and nil factories must not register")
	}

	Register("core-test-sim", func(map[string]string) Sim { return nil })
	if _, ok := Sims()["core-test-sim"]; !ok {
		t.Fatal("valid factory did not register")
	}
	delete(sims, "core-test-sim")
}

func TestFillDensityDeterministicAndClamped(t *testing.T) {
	a := make([]uint8, 1024)
	b := make([]uint8, 1024)
	FillDensity(NewRNG(5).Source(), a, 0.3)
	FillDensity(NewRNG(5).Source(), b, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed should produce the same fill")
	}

	FillDensity(NewRNG(1).Source(), a, -0.5)
	for i, v := range a {
		if v != 0 {
			t.Fatalf("negative density left cell %d alive", i)
		}
	}
	FillDensity(NewRNG(1).Source(), a, 2)
	for i, v := range a {
		if v != 1 {
			t.Fatalf("density above 1 left cell %d dead", i)
		}
	}
}

func TestFixedStepTPSClamp(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 1 {
		t.Fatalf("TPS %d, want clamp to 1", fs.TPS())
	}
	fs.SetTPS(1000)
	if fs.TPS() != 240 {
		t.Fatalf("TPS %d, want clamp to 240", fs.TPS())
	}
	fs.SetTPS(30)
	if !fs.ShouldStep() {
		t.Fatal("a freshly configured ticker should step immediately")
	}
}
