package models

import "testing"

func TestStringList_ValueScan(t *testing.T) {
	in := StringList{"lunch", "dinner"}

	v, err := in.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != `["lunch","dinner"]` {
		t.Fatalf("unexpected encoding: %v", v)
	}

	var out StringList
	if err := out.Scan([]byte(v.(string))); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(out) != 2 || out[0] != "lunch" || out[1] != "dinner" {
		t.Fatalf("unexpected decode: %v", out)
	}
}

func TestStringList_NilAndEmpty(t *testing.T) {
	var nilList StringList
	if v, _ := nilList.Value(); v != "[]" {
		t.Fatalf("nil list should encode as [], got %v", v)
	}

	var out StringList
	for _, src := range []any{nil, "", []byte{}} {
		if err := out.Scan(src); err != nil {
			t.Fatalf("scan %v: %v", src, err)
		}
		if out == nil || len(out) != 0 {
			t.Fatalf("expected empty list for %v, got %v", src, out)
		}
	}

	if err := out.Scan(42); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
