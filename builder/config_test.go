// SPDX-License-Identifier: MIT

// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.nameFn(6); got != "item7" {
		t.Errorf("default nameFn: expected \"item7\", got %q", got)
	}
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.valueLo != DefaultMinValue || cfg.valueHi != DefaultMaxValue {
		t.Errorf("default values: got [%d,%d]", cfg.valueLo, cfg.valueHi)
	}
	if cfg.weightLo != DefaultMinWeight || cfg.weightHi != DefaultMaxWeight {
		t.Errorf("default weights: got [%d,%d]", cfg.weightLo, cfg.weightHi)
	}
	if cfg.ratio != DefaultCapacityRatio || cfg.iterations != DefaultIterations {
		t.Errorf("default ratio/iterations: got %g/%d", cfg.ratio, cfg.iterations)
	}
}

// TestNameSchemeOptions verifies that name scheme options apply in order.
func TestNameSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig(WithExcelColumnNames()).nameFn(27); got != "AB" {
		t.Errorf("WithExcelColumnNames: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithAlphanumericNames()).nameFn(35); got != "z" {
		t.Errorf("WithAlphanumericNames: expected \"z\", got %q", got)
	}
	if got := newBuilderConfig(WithHexNames()).nameFn(255); got != "ff" {
		t.Errorf("WithHexNames: expected \"ff\", got %q", got)
	}
	if got := newBuilderConfig(WithPrefixedNames("sku-")).nameFn(0); got != "sku-1" {
		t.Errorf("WithPrefixedNames: expected \"sku-1\", got %q", got)
	}
	if got := newBuilderConfig(WithHexNames(), WithDefaultNames()).nameFn(3); got != "item4" {
		t.Errorf("WithDefaultNames override: expected \"item4\", got %q", got)
	}
}

// TestRNGOptions verifies WithRand identity and WithSeed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	exp := rand.New(rand.NewSource(123))
	if got := newBuilderConfig(WithRand(exp)).rng; got != exp {
		t.Errorf("WithRand: expected %p, got %p", exp, got)
	}

	a, b := newBuilderConfig(WithSeed(42)).rng, newBuilderConfig(WithSeed(42)).rng
	for i := 0; i < 4; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("WithSeed reproducibility: draw %d got %d vs %d", i, x, y)
		}
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithNameScheme(nil)": func() { WithNameScheme(nil) },
		"WithRand(nil)":       func() { WithRand(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestUniformIntBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	seenLo, seenHi := false, false
	for i := 0; i < 500; i++ {
		v := uniformInt(rng, 3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("uniformInt out of [3,6]: %d", v)
		}
		seenLo = seenLo || v == 3
		seenHi = seenHi || v == 6
	}
	if !seenLo || !seenHi {
		t.Errorf("uniformInt never hit an endpoint: lo=%v hi=%v", seenLo, seenHi)
	}
	if got := uniformInt(nil, 5, 5); got != 5 {
		t.Errorf("degenerate range: expected 5, got %d", got)
	}
	if got := correlationSpread(5); got != 1 {
		t.Errorf("correlationSpread floor: expected 1, got %d", got)
	}
}
