package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEquivalentIncome(t *testing.T) {
	tests := []struct {
		name       string
		downstream string
		want       float64
	}{
		{"integral value", "93000", 93000},
		{"rounds down to nearest 100", "93042.7", 93000},
		{"rounds up to nearest 100", "93050", 93100},
		{"trailing whitespace tolerated", "93000\n", 93000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/equivalent-income" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				w.Write([]byte(tt.downstream))
			}))
			defer srv.Close()

			client := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
			got, err := client.EquivalentIncome(context.Background(), Query{
				TargetCity:       "Zurich",
				TargetCurrency:   "USD",
				BaseCity:         "Austin",
				BaseIncomeAmount: 80000,
				BaseCurrency:     "USD",
			})
			if err != nil {
				t.Fatalf("EquivalentIncome() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("EquivalentIncome() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEquivalentIncomeQueryParameters(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"targetCity":       r.URL.Query().Get("targetCity"),
			"targetCurrency":   r.URL.Query().Get("targetCurrency"),
			"baseCity":         r.URL.Query().Get("baseCity"),
			"baseIncomeAmount": r.URL.Query().Get("baseIncomeAmount"),
			"baseCurrency":     r.URL.Query().Get("baseCurrency"),
		}
		w.Write([]byte("100"))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.EquivalentIncome(context.Background(), Query{
		TargetCity:       "Zurich",
		TargetCurrency:   "CHF",
		BaseCity:         "Austin",
		BaseIncomeAmount: 80000,
		BaseCurrency:     "USD",
	})
	if err != nil {
		t.Fatalf("EquivalentIncome() error = %v", err)
	}

	want := map[string]string{
		"targetCity":       "Zurich",
		"targetCurrency":   "CHF",
		"baseCity":         "Austin",
		"baseIncomeAmount": "80000",
		"baseCurrency":     "USD",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query parameter %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestEquivalentIncomeDownstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		downstream string
	}{
		{"non-200 status", http.StatusInternalServerError, "boom"},
		{"non-decimal body", http.StatusOK, "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.downstream))
			}))
			defer srv.Close()

			client := NewClient(WithBaseURL(srv.URL))
			if _, err := client.EquivalentIncome(context.Background(), Query{}); err == nil {
				t.Fatal("EquivalentIncome() expected error, got nil")
			}
		})
	}
}

func TestEquivalentIncomeUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.EquivalentIncome(context.Background(), Query{}); err == nil {
		t.Fatal("EquivalentIncome() expected error for unreachable service, got nil")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()
	if client.baseURL != DefaultBaseURL {
		t.Errorf("NewClient() baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
}
