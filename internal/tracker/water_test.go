package tracker

import (
	"testing"
)

func TestDrinkWater(t *testing.T) {
	trk, _ := newTestTracker(t)

	water, err := trk.DrinkWater()
	if err != nil {
		t.Fatalf("drink failed: %v", err)
	}
	if water.IntakeMl != water.SelectedSize {
		t.Errorf("intake = %d, want one glass (%d)", water.IntakeMl, water.SelectedSize)
	}
	if water.LastIntakeAt == nil {
		t.Error("lastIntakeAt should be stamped")
	}

	water, err = trk.DrinkWater()
	if err != nil {
		t.Fatalf("drink failed: %v", err)
	}
	if water.IntakeMl != 2*water.SelectedSize {
		t.Errorf("intake = %d, want two glasses", water.IntakeMl)
	}
}

func TestAddWater(t *testing.T) {
	trk, _ := newTestTracker(t)

	if _, err := trk.AddWater(0); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, err := trk.AddWater(-100); err == nil {
		t.Error("expected error for negative amount")
	}

	water, err := trk.AddWater(750)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if water.IntakeMl != 750 {
		t.Errorf("intake = %d, want 750", water.IntakeMl)
	}
}

func TestSetWaterTarget(t *testing.T) {
	trk, _ := newTestTracker(t)

	if err := trk.SetWaterTarget(0); err == nil {
		t.Error("expected error for non-positive target")
	}
	if err := trk.SetWaterTarget(3000); err != nil {
		t.Fatalf("set target failed: %v", err)
	}

	water, _ := trk.Water()
	if water.TargetMl != 3000 {
		t.Errorf("target = %d, want 3000", water.TargetMl)
	}
}

func TestSetWaterSize(t *testing.T) {
	trk, _ := newTestTracker(t)

	if err := trk.SetWaterSize(123); err == nil {
		t.Error("expected error for a size outside the configured set")
	}
	if err := trk.SetWaterSize(330); err != nil {
		t.Fatalf("set size failed: %v", err)
	}

	water, _ := trk.Water()
	if water.SelectedSize != 330 {
		t.Errorf("selected size = %d, want 330", water.SelectedSize)
	}
}

func TestSetWaterSizes(t *testing.T) {
	trk, _ := newTestTracker(t)

	if err := trk.SetWaterSizes(nil); err == nil {
		t.Error("expected error for empty size set")
	}
	if err := trk.SetWaterSizes([]int{200, -1}); err == nil {
		t.Error("expected error for non-positive size")
	}

	// Selected size survives when it stays in the set
	if err := trk.SetWaterSize(330); err != nil {
		t.Fatalf("set size failed: %v", err)
	}
	if err := trk.SetWaterSizes([]int{330, 400}); err != nil {
		t.Fatalf("set sizes failed: %v", err)
	}
	water, _ := trk.Water()
	if water.SelectedSize != 330 {
		t.Errorf("selected size = %d, want 330 to survive", water.SelectedSize)
	}

	// Selected size clamps to the first entry when removed
	if err := trk.SetWaterSizes([]int{150, 500}); err != nil {
		t.Fatalf("set sizes failed: %v", err)
	}
	water, _ = trk.Water()
	if water.SelectedSize != 150 {
		t.Errorf("selected size = %d, want clamp to 150", water.SelectedSize)
	}
}
