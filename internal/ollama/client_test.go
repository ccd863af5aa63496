package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Ollama is running")
	}))
	defer srv.Close()
	if err := New(srv.URL).Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}
}

func TestHealthDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	if err := New(srv.URL).Health(context.Background()); err == nil {
		t.Fatalf("expected error on 503")
	}
	srv.Close()
	if err := New(srv.URL).Health(context.Background()); err == nil {
		t.Fatalf("expected error on closed server")
	}
}

func TestTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"models":[{"name":"llama3.2:latest","size":2019393189},{"name":"mistral:latest","size":4113301824}]}`)
	}))
	defer srv.Close()
	models, err := New(srv.URL).Tags(context.Background())
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	if len(models) != 2 || models[0].Name != "llama3.2:latest" {
		t.Fatalf("unexpected models: %+v", models)
	}
}

func TestHasMatchesLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"models":[{"name":"llama3.2:latest"},{"name":"qwen2.5:7b"}]}`)
	}))
	defer srv.Close()
	c := New(srv.URL)
	cases := []struct {
		name string
		want bool
	}{
		{"llama3.2", true},        // bare name resolves to :latest
		{"llama3.2:latest", true}, // explicit tag
		{"qwen2.5:7b", true},      // non-latest tag must match exactly
		{"qwen2.5", false},
		{"mistral", false},
	}
	for _, tc := range cases {
		got, err := c.Has(context.Background(), tc.name)
		if err != nil {
			t.Fatalf("has(%s): %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("has(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPullStreamsProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/pull" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintln(w, `{"status":"pulling manifest"}`)
		fmt.Fprintln(w, `{"status":"downloading","digest":"sha256:abc","total":100,"completed":50}`)
		fmt.Fprintln(w, `{"status":"success"}`)
	}))
	defer srv.Close()
	var seen []string
	err := New(srv.URL).Pull(context.Background(), "llama3.2", func(p PullProgress) {
		seen = append(seen, p.Status)
	})
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	if len(seen) != 3 || seen[2] != "success" {
		t.Fatalf("unexpected progress: %v", seen)
	}
}

func TestPullServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"status":"pulling manifest"}`)
		fmt.Fprintln(w, `{"error":"pull model manifest: file does not exist"}`)
	}))
	defer srv.Close()
	err := New(srv.URL).Pull(context.Background(), "nope", nil)
	if err == nil {
		t.Fatalf("expected error from error line in stream")
	}
}

func TestHostDefault(t *testing.T) {
	if New("").Host() != DefaultHost {
		t.Fatalf("empty host should fall back to default")
	}
	if New("http://x:1/").Host() != "http://x:1" {
		t.Fatalf("trailing slash should be trimmed")
	}
}
