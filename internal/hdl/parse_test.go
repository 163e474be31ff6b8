package hdl_test

import (
	"testing"

	"github.com/db47h/hwnet/internal/hdl"
	"github.com/google/go-cmp/cmp"
)

func TestParseRef(t *testing.T) {
	td := []struct {
		in  string
		ref hdl.Ref
		err string
	}{
		{"a", hdl.Ref{Path: []string{"a"}}, ""},
		{"alu.in.x", hdl.Ref{Path: []string{"alu", "in", "x"}}, ""},
		{" alu . out ", hdl.Ref{Path: []string{"alu", "out"}}, ""},
		{"alu.out[0:4]", hdl.Ref{Path: []string{"alu", "out"}, Slice: true, Lo: 0, Hi: 4}, ""},
		{"r_1.q[12:16]", hdl.Ref{Path: []string{"r_1", "q"}, Slice: true, Lo: 12, Hi: 16}, ""},
		{"", hdl.Ref{}, `in "" at pos 1: expected name`},
		{"a.", hdl.Ref{}, `in "a." at pos 3: expected name`},
		{"a..b", hdl.Ref{}, `in "a..b" at pos 3: expected name`},
		{"1a", hdl.Ref{}, `in "1a" at pos 1: expected name`},
		{"a b", hdl.Ref{}, `in "a b" at pos 3: expected '.', '[' or end of input`},
		{"a[", hdl.Ref{}, `in "a[" at pos 3: missing slice start`},
		{"a[1", hdl.Ref{}, `in "a[1" at pos 4: expected ':'`},
		{"a[1:]", hdl.Ref{}, `in "a[1:]" at pos 5: missing slice end`},
		{"a[1:2", hdl.Ref{}, `in "a[1:2" at pos 6: missing close bracket`},
		{"a[1:2].x", hdl.Ref{}, `in "a[1:2].x" at pos 7: expected end of input`},
		{"a[-1:2]", hdl.Ref{}, `in "a[-1:2]" at pos 3: missing slice start`},
		{"v[18446744073709551619:18446744073709551620]", hdl.Ref{}, `in "v[18446744073709551619:18446744073709551620]" at pos 3: slice start 18446744073709551619 out of range`},
		{"v[0:99999999999999999999]", hdl.Ref{}, `in "v[0:99999999999999999999]" at pos 5: slice end 99999999999999999999 out of range`},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			r, err := hdl.ParseRef(d.in)
			if err != nil {
				if d.err == "" || err.Error() != d.err {
					t.Fatalf("got error %q, expected %q", err, d.err)
				}
				return
			}
			if d.err != "" {
				t.Fatalf("expected error %q", d.err)
			}
			if diff := cmp.Diff(d.ref, r); diff != "" {
				t.Errorf("ParseRef(%q) mismatch (-want +got):\n%s", d.in, diff)
			}
		})
	}
}

func TestRef_String(t *testing.T) {
	for _, s := range []string{"a", "a.b.c", "a.b[3:7]"} {
		r, err := hdl.ParseRef(s)
		if err != nil {
			t.Fatal(err)
		}
		if r.String() != s {
			t.Errorf("got %q, expected %q", r.String(), s)
		}
	}
}

func TestIsIdent(t *testing.T) {
	td := map[string]bool{
		"a":        true,
		"in_":      true,
		"__const0": true,
		"Bus16":    true,
		"":         false,
		"1a":       false,
		"a b":      false,
		" a":       false,
		"a.b":      false,
		"a[0]":     false,
		"a-b":      false,
	}
	for in, exp := range td {
		if got := hdl.IsIdent(in); got != exp {
			t.Errorf("IsIdent(%q) = %v, expected %v", in, got, exp)
		}
	}
}
