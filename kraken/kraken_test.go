package kraken

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSign(t *testing.T) {
	// Known-answer test from the Kraken API documentation.
	c := NewClient("key", "kQH5HW/8p1uGOVjbgWA7FunAmGO8lsSUXNsu3eow76sz84Q18fWxnyRzBHCd3pd5nE9qa99HAZtuZuj6F1huXg==")

	got, err := c.sign(
		"/0/private/AddOrder",
		"nonce=1616492376594&ordertype=limit&pair=XBTUSD&price=37500&type=buy&volume=1.25",
		"1616492376594",
	)
	if err != nil {
		t.Fatalf("sign() error = %v", err)
	}
	want := "4/dpxb3iT4tp/ZCVEwSnEsLxx0bqyhLpdfOpc6fn7OR8+UClSV5n9E6aSS8MPtnRfp32bAb0nmbRn6H8ndwLUQ=="
	if got != want {
		t.Errorf("sign() = %s, want %s", got, want)
	}
}

func TestSignRejectsBadSecret(t *testing.T) {
	c := NewClient("key", "not base64!!!")
	if _, err := c.sign("/0/private/TradesHistory", "nonce=1", "1"); err == nil {
		t.Fatal("expected an error for a non-base64 secret")
	}
}

func TestJwpostErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":["EAPI:Invalid key"]}`))
	}))
	defer srv.Close()

	c := NewClient("key", "c2VjcmV0")
	c.BaseURL = srv.URL

	_, err := c.TradesHistory(Query{Pair: "XXBTZEUR"}, 0)
	var apiErr APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want an APIError", err)
	}
	if apiErr.Error() != "kraken API error: EAPI:Invalid key" {
		t.Errorf("unexpected message: %s", apiErr.Error())
	}
}

func TestJwpostHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient("key", "c2VjcmV0")
	c.BaseURL = srv.URL

	if _, err := c.TradesHistory(Query{Pair: "XXBTZEUR"}, 0); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestJwpostMissingResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":[]}`))
	}))
	defer srv.Close()

	c := NewClient("key", "c2VjcmV0")
	c.BaseURL = srv.URL

	if _, err := c.TradesHistory(Query{Pair: "XXBTZEUR"}, 0); err == nil {
		t.Fatal("expected an error when the envelope carries no result")
	}
}

func TestJwpostSetsAuthHeaders(t *testing.T) {
	var gotKey, gotSign string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("API-Key")
		gotSign = r.Header.Get("API-Sign")
		w.Write([]byte(`{"error":[],"result":{"trades":{},"count":0}}`))
	}))
	defer srv.Close()

	c := NewClient("the-key", "c2VjcmV0")
	c.BaseURL = srv.URL

	if _, err := c.TradesHistory(Query{Pair: "XXBTZEUR"}, 0); err != nil {
		t.Fatalf("TradesHistory() error = %v", err)
	}
	if gotKey != "the-key" {
		t.Errorf("API-Key = %q, want %q", gotKey, "the-key")
	}
	if gotSign == "" {
		t.Error("API-Sign header is empty")
	}
}

func TestDelayForTier(t *testing.T) {
	tests := []struct {
		tier    string
		seconds int
		wantErr bool
	}{
		{"starter", 7, false},
		{"intermediate", 4, false},
		{"pro", 2, false},
		{"", 0, true},
		{"Pro", 0, true},
		{"whale", 0, true},
	}
	for _, tc := range tests {
		d, err := DelayForTier(tc.tier)
		if (err != nil) != tc.wantErr {
			t.Errorf("DelayForTier(%q) error = %v, wantErr %v", tc.tier, err, tc.wantErr)
			continue
		}
		if got := int(d.Seconds()); got != tc.seconds {
			t.Errorf("DelayForTier(%q) = %ds, want %ds", tc.tier, got, tc.seconds)
		}
	}
}
