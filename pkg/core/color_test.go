package core

import (
	"math"
	"testing"
)

func TestColor_RGBABytes(t *testing.T) {
	c := RGBABytes(255, 0, 51, 255)
	if c.R != 1 || c.G != 0 || math.Abs(c.B-0.2) > 1e-12 || c.A != 1 {
		t.Errorf("Expected (1, 0, 0.2, 1), got %+v", c)
	}
}

func TestColor_Blend(t *testing.T) {
	got := RGB(0.5, 1, 0.2).Blend(RGB(1.2, 0.5, 1))
	expected := RGB(0.6, 0.5, 0.2)
	if math.Abs(got.R-expected.R) > 1e-12 || math.Abs(got.G-expected.G) > 1e-12 ||
		math.Abs(got.B-expected.B) > 1e-12 {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestColor_Clamp(t *testing.T) {
	got := RGB(-0.5, 0.5, 1.5).Clamp(0, 1)
	if got.R != 0 || got.G != 0.5 || got.B != 1 {
		t.Errorf("Expected (0, 0.5, 1), got %+v", got)
	}
}
