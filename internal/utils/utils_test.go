package utils

/*

go test -v ./internal/utils -count=1

*/

import (
	"strings"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Sol@X.com ", "sol@x.com"},
		{"a@b.com", "a@b.com"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeEmail(tc.in); got != tc.want {
			t.Fatalf("in=%q want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestDecodeStrict(t *testing.T) {
	type item struct {
		Name string `json:"name"`
	}

	var ok []item
	if err := DecodeStrict(strings.NewReader(`[{"name":"ACME"}]`), &ok); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ok) != 1 || ok[0].Name != "ACME" {
		t.Fatalf("payload inesperado: %#v", ok)
	}

	var unknown []item
	if err := DecodeStrict(strings.NewReader(`[{"name":"ACME","cnpj":"x"}]`), &unknown); err == nil {
		t.Fatal("esperava erro para campo desconhecido")
	}

	var trailing item
	if err := DecodeStrict(strings.NewReader(`{"name":"a"} {"name":"b"}`), &trailing); err == nil {
		t.Fatal("esperava erro para conteúdo extra")
	}
}
