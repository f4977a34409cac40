package dtoform_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flakey-bit/dtoform"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	req, err := dtoform.NewRequest(context.Background(), http.MethodPost, "https://example.com/accounts", newAccount(),
		dtoform.WithNamer(dtoform.TagNamer{}),
		roundTripConverter(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(dtoform.ContentType, req.Header.Get("Content-Type")); diff != "" {
		t.Errorf("content type (-want +got):\n%s", diff)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "SomeProperty=Foo&another_property=Bar+123&Child%5Bthe_number%5D=42&Child%5Bnested_child%5D%5Ba_value%5D=1983-11-07T00%3A00%3A00.0000000"
	if diff := cmp.Diff(want, string(body)); diff != "" {
		t.Errorf("body (-want +got):\n%s", diff)
	}
	if req.ContentLength != int64(len(want)) {
		t.Errorf("expected content length %d, got %d", len(want), req.ContentLength)
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff("42", form.Get("Child[the_number]")); diff != "" {
		t.Errorf("form value (-want +got):\n%s", diff)
	}
}

func TestNewRequest_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		url   string
		input any
	}{
		"unencodable value": {
			url:   "https://example.com",
			input: cycle(2),
		},
		"invalid url": {
			url:   "://missing-scheme",
			input: &Outer{A: "x"},
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := dtoform.NewRequest(context.Background(), http.MethodPost, tt.url, tt.input); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
