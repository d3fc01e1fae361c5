package middleware

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

const pantryJSON = `[{"id":1,"food_name":"Milk","quantity":2}]`

func jsonHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Content-Length до сжатия; мидлварь обязана его убрать
		w.Header().Set("Content-Length", "44")
		_, _ = w.Write([]byte(pantryJSON))
	})
}

// Тест: без Accept-Encoding ответ уходит как есть
func TestWithGzip_NoAcceptEncoding(t *testing.T) {
	rr := httptest.NewRecorder()
	WithGzip(jsonHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/7/pantry", nil))

	if ce := rr.Header().Get("Content-Encoding"); ce != "" {
		t.Fatalf("unexpected Content-Encoding: %q", ce)
	}
	if rr.Body.String() != pantryJSON {
		t.Fatalf("body must be unmodified, got %q", rr.Body.String())
	}
}

// Тест: с Accept-Encoding: gzip тело сжато, Content-Length снят,
// распакованный JSON совпадает с исходным
func TestWithGzip_CompressesJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/7/pantry", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	rr := httptest.NewRecorder()
	WithGzip(jsonHandler()).ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip Content-Encoding, got %q", rr.Header().Get("Content-Encoding"))
	}
	if cl := rr.Header().Get("Content-Length"); cl != "" {
		t.Fatalf("stale Content-Length survived compression: %q", cl)
	}

	gr, err := gzip.NewReader(rr.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer gr.Close()
	data, err := io.ReadAll(gr)
	if err != nil {
		t.Fatalf("read gzipped body: %v", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("decompressed body is not the original JSON: %v", err)
	}
	if len(items) != 1 || items[0]["food_name"] != "Milk" {
		t.Fatalf("unexpected payload after round-trip: %s", data)
	}
}
