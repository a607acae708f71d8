package util

import (
	"testing"
)

func TestIfThenElse(t *testing.T) {
	if IfThenElse(true, 1, 2) != 1 {
		t.Error("IfThenElse(true, 1, 2) should be 1")
	}
	if IfThenElse(false, 1, 2) != 2 {
		t.Error("IfThenElse(false, 1, 2) should be 2")
	}
	if IfThenElse(true, "a", "b") != "a" {
		t.Error("IfThenElse(true, 'a', 'b') should be 'a'")
	}
	if IfThenElse(false, "a", "b") != "b" {
		t.Error("IfThenElse(false, 'a', 'b') should be 'b'")
	}
}

func TestBox(t *testing.T) {
	b := NewBox(1, 2, 3, 4)
	if b.Pos.Y != 1 || b.Pos.X != 2 || b.Size.Height != 3 || b.Size.Width != 4 {
		t.Errorf("NewBox fields wrong: %+v", b)
	}
	if b.EndX() != 6 || b.EndY() != 4 {
		t.Errorf("Box ends wrong: %d, %d", b.EndX(), b.EndY())
	}
	if !b.ContainedIn(Dimension{Width: 6, Height: 4}) {
		t.Error("box should be contained in 6x4")
	}
	if b.ContainedIn(Dimension{Width: 5, Height: 4}) {
		t.Error("box should not be contained in 5x4")
	}
	if NewBox(0, 0, 0, 5).IsEmpty() != true {
		t.Error("zero height box should be empty")
	}
}
