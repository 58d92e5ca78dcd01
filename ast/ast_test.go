// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jsax"
	"github.com/creachadair/jsax/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2.5e3
    }
  ],
  "y": {
    "hello": "there\tyou"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": NULL,
    "q!": False
  }
}`

func mustParse(t *testing.T, input string) ast.Value {
	t.Helper()
	v, err := ast.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	return v
}

func TestJSON(t *testing.T) {
	v := mustParse(t, testJSON)
	const want = `{"list":[{"x":1},{"x":2.5e3}],"y":{"hello":"there\tyou"},` +
		`"o":["hi","yourself"],"xyz":{"p":true,"d":NULL,"q!":False}}`
	if diff := cmp.Diff(want, v.JSON()); diff != "" {
		t.Errorf("JSON (-want, +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	root := mustParse(t, testJSON).(*ast.Object)

	list := check[*ast.Array](t, root, "list")
	if len(list.Values) != 2 {
		t.Fatalf("List has %d values, want 2", len(list.Values))
	}
	x := check[*ast.Datum](t, list.Values[1].(*ast.Object), "x")
	if f, err := x.Float64(); err != nil || f != 2500 {
		t.Errorf("Float64: got (%v, %v), want (2500, nil)", f, err)
	}

	hello := check[*ast.Datum](t, check[*ast.Object](t, root, "y"), "hello")
	if u, err := hello.Unquote(); err != nil || string(u) != "there\tyou" {
		t.Errorf("Unquote: got (%q, %v), want (%q, nil)", u, err, "there\tyou")
	}

	xyz := check[*ast.Object](t, root, "xyz")
	if p, err := check[*ast.Datum](t, xyz, "p").Bool(); err != nil || !p {
		t.Errorf("Bool p: got (%v, %v), want (true, nil)", p, err)
	}
	if d := check[*ast.Datum](t, xyz, "d"); !d.IsNull() {
		t.Errorf("Value d is %v, want null", d.Kind())
	}

	// Find compares decoded keys.
	q := xyz.Find("q!")
	if q == nil {
		t.Fatal(`Key "q!" not found`)
	} else if got := q.RawKey(); got != `q!` {
		t.Errorf("RawKey: got %#q, want %#q", got, `q!`)
	}
	if m := root.Find("nonesuch"); m != nil {
		t.Errorf("Find nonesuch: got %+v, want nil", m)
	}
}

func TestMemberJSON(t *testing.T) {
	root := mustParse(t, testJSON).(*ast.Object)

	var v ast.Value = root.Find("o")
	if got, want := v.JSON(), `"o":["hi","yourself"]`; got != want {
		t.Errorf("Member JSON: got %#q, want %#q", got, want)
	}
	if got, want := root.Find("xyz").Value.(*ast.Object).Find("q!").JSON(), `"q!":False`; got != want {
		t.Errorf("Member JSON: got %#q, want %#q", got, want)
	}

	// A member with no value yet renders as null.
	if got, want := new(ast.Member).JSON(), `"":null`; got != want {
		t.Errorf("Empty member: got %#q, want %#q", got, want)
	}
}

func TestDatumPanics(t *testing.T) {
	// A Datum with no value is not valid, and rendering it panics.
	mtest.MustPanic(t, func() { _ = new(ast.Object).Find("x").Value.JSON() })

	// The zero Datum has no text and renders empty.
	if got := new(ast.Datum).JSON(); got != "" {
		t.Errorf("Empty datum: got %q, want empty", got)
	}
	d := &ast.Datum{Value: jsax.NewValue(jsax.Number, []byte("15"))}
	if got := d.JSON(); got != "15" {
		t.Errorf("Datum: got %q, want 15", got)
	}
}

func check[T ast.Value](t *testing.T, obj *ast.Object, key string) T {
	t.Helper()
	m := obj.Find(key)
	if m == nil {
		t.Fatalf("Key %q not found", key)
	}
	v, ok := m.Value.(T)
	if !ok {
		var zero T
		t.Fatalf("Key %q value is %T, not %T", key, m.Value, zero)
	}
	return v
}
