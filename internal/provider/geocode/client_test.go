package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/swapnilsborase/blooddonor-service/config"
	"github.com/swapnilsborase/blooddonor-service/internal/domain/fault"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.GeocodeConfig{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestLookup_FirstMatchWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "411001" {
			t.Errorf("q = %q; want 411001", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q; want test-key", got)
		}
		w.Write([]byte(`{"results":[
			{"geometry":{"lat":18.52,"lng":73.86}},
			{"geometry":{"lat":0,"lng":0}}
		]}`))
	}))
	defer server.Close()

	coord, err := newTestClient(server.URL).Lookup(context.Background(), "411001")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if coord == nil || coord.Latitude != 18.52 || coord.Longitude != 73.86 {
		t.Errorf("coordinate = %+v; want 18.52/73.86", coord)
	}
}

func TestLookup_NoMatchIsNilNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	coord, err := newTestClient(server.URL).Lookup(context.Background(), "999999")
	if err != nil {
		t.Fatalf("no match must not be an error, got: %v", err)
	}
	if coord != nil {
		t.Errorf("coordinate = %+v; want nil on no match", coord)
	}
}

func TestLookup_ServerErrorIsAFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Lookup(context.Background(), "411001")
	if !fault.IsLookup(err) {
		t.Fatalf("Lookup error = %v; want a lookup fault", err)
	}
}

func TestLookup_UndecodableBodyIsAFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Lookup(context.Background(), "411001")
	if !fault.IsLookup(err) {
		t.Fatalf("Lookup error = %v; want a lookup fault", err)
	}
}
