package unit

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestLengthAsPx(t *testing.T) {
	if px := Px(10).AsPx(); px != 10.0 {
		t.Errorf("expected 10px to read as 10, is %g", px)
	}
	if px := Pt(72).AsPx(); px != 96.0 {
		t.Errorf("expected 72pt to convert to 96px, is %g", px)
	}
}

func TestLengthRel(t *testing.T) {
	if f := Em(1.5).Rel(); f != 1.5 {
		t.Errorf("expected 1.5em to have relative factor 1.5, is %g", f)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Rel() on absolute length to panic, didn't")
		}
	}()
	Px(10).Rel()
}

func TestRelativeLengthIsOpaque(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected AsPx() on em-length to panic, didn't")
		}
	}()
	Em(2).AsPx()
}

func TestLengthDU(t *testing.T) {
	if du := Pt(10).DU(); du != 10*dimen.PT {
		t.Errorf("expected 10pt to bridge to 10*dimen.PT, is %v", du)
	}
	// 96px = 72pt
	if du := Px(96).DU(); du != 72*dimen.PT {
		t.Errorf("expected 96px to bridge to 72*dimen.PT, is %v", du)
	}
}

func TestAsPercent(t *testing.T) {
	if p := AsPercent(150); p != percent.FromInt(150) {
		t.Errorf("expected 150 to bridge to 150%%, is %v", p)
	}
	// fractional percentages round to the nearest integer
	if p := AsPercent(33.4); p != percent.FromInt(33) {
		t.Errorf("expected 33.4 to round to 33%%, is %v", p)
	}
	if p := AsPercent(66.6); p != percent.FromInt(67) {
		t.Errorf("expected 66.6 to round to 67%%, is %v", p)
	}
}

func TestLengthEquality(t *testing.T) {
	if Px(10) != Px(10) {
		t.Error("expected equal px lengths to compare equal, don't")
	}
	if Px(10) == Pt(10) {
		t.Error("expected px and pt lengths to differ, don't")
	}
}

func TestAbsoluteSizePx(t *testing.T) {
	if Medium.Px() != 16.0 {
		t.Errorf("expected medium to be 16px, is %g", Medium.Px())
	}
	if XXLarge.Px() != 32.0 {
		t.Errorf("expected xx-large to be 32px, is %g", XXLarge.Px())
	}
	if s := Small.String(); s != "small" {
		t.Errorf("expected keyword 'small', got %q", s)
	}
}
