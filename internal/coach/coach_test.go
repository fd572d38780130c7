package coach

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serverReturning(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("missing api key header")
		}
		w.WriteHeader(status)
		if status != http.StatusOK {
			return
		}
		resp := generateResponse{}
		resp.Candidates = []struct {
			Content content `json:"content"`
		}{{Content: content{Parts: []part{{Text: text}}}}}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAdvice(t *testing.T) {
	srv := serverReturning(t, http.StatusOK, "1. Faça pausas.\n2. Revise.\n3. Durma bem.")
	c := NewClientWithBase("key", srv.URL, srv.Client())

	got := c.Advice(context.Background(), "Física", "Difícil")
	if got != "1. Faça pausas.\n2. Revise.\n3. Durma bem." {
		t.Fatalf("unexpected advice: %q", got)
	}
}

func TestAdviceFallbackOnServerError(t *testing.T) {
	srv := serverReturning(t, http.StatusInternalServerError, "")
	c := NewClientWithBase("key", srv.URL, srv.Client())

	if got := c.Advice(context.Background(), "Física", "Fácil"); got != adviceFallback {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestAdviceFallbackWhenOffline(t *testing.T) {
	c := NewClient("")
	if !c.Offline() {
		t.Fatal("empty key should mean offline")
	}
	if got := c.Advice(context.Background(), "Química", "Médio"); got != adviceFallback {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGenerateSchedule(t *testing.T) {
	plan := `[{"time":"14:00","subject":"Cálculo"},{"time":"15:30","subject":"Exercícios"}]`
	srv := serverReturning(t, http.StatusOK, plan)
	c := NewClientWithBase("key", srv.URL, srv.Client())

	got := c.GenerateSchedule(context.Background(), "passar em Cálculo 1")
	if len(got) != 2 {
		t.Fatalf("expected 2 plan items, got %d", len(got))
	}
	if got[0].Time != "14:00" || got[0].Subject != "Cálculo" {
		t.Fatalf("unexpected first item: %+v", got[0])
	}
}

func TestGenerateScheduleNilOnError(t *testing.T) {
	srv := serverReturning(t, http.StatusBadGateway, "")
	c := NewClientWithBase("key", srv.URL, srv.Client())

	if got := c.GenerateSchedule(context.Background(), "objetivo"); got != nil {
		t.Fatalf("expected nil plan on failure, got %v", got)
	}
}

func TestGenerateScheduleNilOnMalformedJSON(t *testing.T) {
	srv := serverReturning(t, http.StatusOK, "not json at all")
	c := NewClientWithBase("key", srv.URL, srv.Client())

	if got := c.GenerateSchedule(context.Background(), "objetivo"); got != nil {
		t.Fatalf("expected nil plan on malformed payload, got %v", got)
	}
}

func TestGenerateScheduleNilWhenOffline(t *testing.T) {
	c := NewClient("")
	if got := c.GenerateSchedule(context.Background(), "objetivo"); got != nil {
		t.Fatalf("expected nil plan offline, got %v", got)
	}
}

func TestAdviceRespectsContextCancel(t *testing.T) {
	srv := serverReturning(t, http.StatusOK, "dica")
	c := NewClientWithBase("key", srv.URL, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := c.Advice(ctx, "Física", "Fácil"); got != adviceFallback {
		t.Fatalf("cancelled call should fall back, got %q", got)
	}
}
