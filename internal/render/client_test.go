package render

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientRender(t *testing.T) {
	var got renderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("ошибка разбора тела: %v", err)
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	image, err := client.Render(context.Background(), "<html></html>", 1800)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(image) != "png-bytes" {
		t.Errorf("Render() = %q, want %q", image, "png-bytes")
	}

	if got.HTML != "<html></html>" {
		t.Errorf("html = %q", got.HTML)
	}
	if got.Width != 1800 {
		t.Errorf("width = %d, want 1800", got.Width)
	}
	if got.Type != "png" {
		t.Errorf("type = %q, want png", got.Type)
	}
}

func TestClientRenderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Render(context.Background(), "<html></html>", 1800); err == nil {
		t.Fatal("ожидалась ошибка при статусе 502")
	}
}

func TestClientRenderNoURL(t *testing.T) {
	client := NewClient("")
	if _, err := client.Render(context.Background(), "<html></html>", 1800); err == nil {
		t.Fatal("пустой адрес сервиса должен быть ошибкой")
	}
}
