package editor

import "testing"

func TestUpdateRenderExpandsTabs(t *testing.T) {
	row := NewRow([]byte("\tabc"))
	want := "        abc" // 8 spaces + abc
	if string(row.Render) != want {
		t.Errorf("render = %q, want %q", row.Render, want)
	}
}

func TestCxToRxTab(t *testing.T) {
	row := NewRow([]byte("\tabc"))
	if rx := CxToRx(row, 1); rx != 8 {
		t.Errorf("CxToRx(1) = %d, want 8", rx)
	}
}

func TestRxToCxIsLeftInverseOfCxToRx(t *testing.T) {
	row := NewRow([]byte("a\tbc\td"))
	for cx := 0; cx <= row.Len(); cx++ {
		rx := CxToRx(row, cx)
		if got := RxToCx(row, rx); got != cx {
			t.Errorf("RxToCx(CxToRx(%d)=%d) = %d, want %d", cx, rx, got, cx)
		}
	}
}

func TestInsertAndDeleteByte(t *testing.T) {
	row := NewRow([]byte("ac"))
	row.InsertByte(1, 'b')
	if string(row.Raw) != "abc" {
		t.Fatalf("Raw = %q, want %q", row.Raw, "abc")
	}

	row.DeleteByte(1)
	if string(row.Raw) != "ac" {
		t.Errorf("Raw = %q, want %q", row.Raw, "ac")
	}
}

func TestInsertByteClampsOutOfRange(t *testing.T) {
	row := NewRow([]byte("ab"))
	row.InsertByte(99, 'c')
	if string(row.Raw) != "abc" {
		t.Errorf("Raw = %q, want %q", row.Raw, "abc")
	}
}

func TestAppend(t *testing.T) {
	row := NewRow([]byte("foo"))
	row.Append([]byte("bar"))
	if string(row.Raw) != "foobar" {
		t.Errorf("Raw = %q, want %q", row.Raw, "foobar")
	}
}

func TestUpdateSyntaxFlagsDigits(t *testing.T) {
	row := NewRow([]byte("a1b2"))
	want := []Highlight{HLNormal, HLNumber, HLNormal, HLNumber}
	for i, h := range want {
		if row.Highlight[i] != h {
			t.Errorf("Highlight[%d] = %v, want %v", i, row.Highlight[i], h)
		}
	}
}
