package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formclient/pkg/transport"
)

func TestHTTPClient_PostSendsJSONBody(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	client := transport.NewHTTPClient()
	resp, err := client.Do(context.Background(), transport.Request{
		Method: "post",
		URL:    server.URL + "/users",
		Body:   map[string]any{"name": "Ada"},
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q", gotContentType)
	}
	if diff := cmp.Diff(map[string]any{"name": "Ada"}, gotBody); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}

	var decoded map[string]any
	if err := resp.Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"id": float64(1)}, decoded); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPClient_GetEncodesParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := transport.NewHTTPClient()
	_, err := client.Do(context.Background(), transport.Request{
		Method: "get",
		URL:    server.URL + "/search",
		Params: map[string]any{
			"q":    "kettle & pot",
			"page": 2,
			"tags": []any{"a", "b"},
		},
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	want := "page=2&q=kettle+%26+pot&tags=a&tags=b"
	if gotQuery != want {
		t.Fatalf("query = %q, want %q", gotQuery, want)
	}
}

func TestHTTPClient_RejectionCarriesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":{"email":"invalid"}}`))
	}))
	defer server.Close()

	client := transport.NewHTTPClient()
	resp, err := client.Do(context.Background(), transport.Request{Method: "post", URL: server.URL})
	if err == nil {
		t.Fatal("expected a transport error")
	}
	if resp != nil {
		t.Fatalf("no response value expected alongside the error, got %+v", resp)
	}

	var terr *transport.Error
	if !errors.As(err, &terr) {
		t.Fatalf("error type = %T, want *transport.Error", err)
	}
	if terr.Response == nil || terr.Response.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("rejection should carry the server response, got %+v", terr.Response)
	}

	payload, ok := terr.Response.JSON()
	if !ok {
		t.Fatal("payload should decode")
	}
	want := map[string]any{"errors": map[string]any{"email": "invalid"}}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestHTTPClient_BaseURLAndDefaultHeaders(t *testing.T) {
	var (
		gotPath  string
		gotToken string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := transport.NewHTTPClient(
		transport.WithBaseURL(server.URL),
		transport.WithHeader("Authorization", "Bearer token-1"),
	)
	_, err := client.Do(context.Background(), transport.Request{Method: "delete", URL: "/users/7"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if gotPath != "/users/7" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotToken != "Bearer token-1" {
		t.Fatalf("authorization header = %q", gotToken)
	}
}

func TestHTTPClient_NetworkFailureHasNoResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := transport.NewHTTPClient()
	_, err := client.Do(context.Background(), transport.Request{Method: "post", URL: server.URL})
	if err == nil {
		t.Fatal("expected a failure")
	}

	var terr *transport.Error
	if errors.As(err, &terr) && terr.Response != nil {
		t.Fatalf("pure network failure must not carry a response, got %+v", terr.Response)
	}
}

func TestResponse_JSON(t *testing.T) {
	resp := &transport.Response{Body: []byte(`{"ok":true}`)}
	payload, ok := resp.JSON()
	if !ok {
		t.Fatal("payload should decode")
	}
	if diff := cmp.Diff(map[string]any{"ok": true}, payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	broken := &transport.Response{Body: []byte(`<html>`)}
	if _, ok := broken.JSON(); ok {
		t.Fatal("non-JSON body must not decode")
	}

	empty := &transport.Response{}
	if _, ok := empty.JSON(); ok {
		t.Fatal("empty body must not decode")
	}
}
