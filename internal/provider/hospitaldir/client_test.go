package hospitaldir

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
	return NewClient(config.HospitalDirConfig{
		BaseURL: serverURL,
		APIHost: "directory.example",
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestByPincode_ReturnsHospitals(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hospitals/pin/411001" {
			t.Errorf("path = %q; want /hospitals/pin/411001", r.URL.Path)
		}
		if r.Header.Get("X-RapidAPI-Key") != "test-key" {
			t.Errorf("missing API key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"City Hospital","address":"1 Main Rd","city":"Pune","state":"MH","phone":"020-1234"},
			{"name":"Rural Clinic","address":"2 Farm Ln","city":"Pune","state":"MH"}
		]`))
	}))
	defer server.Close()

	hospitals, err := newTestClient(server.URL).ByPincode(context.Background(), "411001")
	if err != nil {
		t.Fatalf("ByPincode returned error: %v", err)
	}
	if len(hospitals) != 2 {
		t.Fatalf("got %d hospitals; want 2", len(hospitals))
	}
	if hospitals[0].Name != "City Hospital" {
		t.Errorf("first hospital = %q; want City Hospital", hospitals[0].Name)
	}
	if hospitals[1].Phone != "" {
		t.Errorf("missing phone = %q; want empty string preserved", hospitals[1].Phone)
	}
}

func TestByPincode_EmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	hospitals, err := newTestClient(server.URL).ByPincode(context.Background(), "999999")
	if err != nil {
		t.Fatalf("an empty directory page is not a failure, got: %v", err)
	}
	if hospitals == nil || len(hospitals) != 0 {
		t.Errorf("got %v; want an empty non-nil slice", hospitals)
	}
}

func TestByPincode_NonArrayPayloadIsNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"no records found"}`))
	}))
	defer server.Close()

	hospitals, err := newTestClient(server.URL).ByPincode(context.Background(), "999999")
	if err != nil {
		t.Fatalf("a non-array payload is the no-match shape, got error: %v", err)
	}
	if len(hospitals) != 0 {
		t.Errorf("got %d hospitals; want 0", len(hospitals))
	}
}

func TestByPincode_UndecodableBodyIsAFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"broken`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ByPincode(context.Background(), "411001")
	if !fault.IsLookup(err) {
		t.Fatalf("ByPincode error = %v; want a lookup fault", err)
	}
}

func TestByPincode_ServerErrorIsAFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ByPincode(context.Background(), "411001")
	if !fault.IsLookup(err) {
		t.Fatalf("ByPincode error = %v; want a lookup fault", err)
	}
}

func TestByPincode_TransportFailureIsAFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	_, err := newTestClient(server.URL).ByPincode(context.Background(), "411001")
	if !fault.IsLookup(err) {
		t.Fatalf("ByPincode error = %v; want a lookup fault", err)
	}
}
