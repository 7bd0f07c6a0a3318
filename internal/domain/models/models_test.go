package models

import (
	"encoding/json"
	"testing"
)

func TestParseCustomerType(t *testing.T) {
	cases := map[string]CustomerType{
		"adults":    CustomerAdult,
		"Adult":     CustomerAdult,
		" children": CustomerChild,
		"child":     CustomerChild,
	}
	for in, want := range cases {
		got, err := ParseCustomerType(in)
		if err != nil || got != want {
			t.Fatalf("ParseCustomerType(%q) = %v, %v", in, got, err)
		}
	}

	if _, err := ParseCustomerType("infant"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestCustomerType_JSON(t *testing.T) {
	var c Customer
	if err := json.Unmarshal([]byte(`{"id":"1","customer_type":"children","birthdate":"2016-03-04T00:00:00Z"}`), &c); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if c.Type != CustomerChild {
		t.Fatalf("unexpected type %v", c.Type)
	}

	if _, err := json.Marshal(Customer{ID: "1"}); err == nil {
		t.Fatal("expected marshal error for unknown type")
	}
}

func TestHotelInfoQuery_CacheKey(t *testing.T) {
	if got := (HotelInfoQuery{ZoneCode: "ABC"}).CacheKey(); got != "zone:ABC" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := (HotelInfoQuery{ZoneCode: "ABC", HotelCode: "H1"}).CacheKey(); got != "hotel:H1" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := (HotelInfoQuery{}).CacheKey(); got != "" {
		t.Fatalf("expected empty key, got %q", got)
	}
}

func TestSessionConfig_SessionKey(t *testing.T) {
	cfg := SessionConfig{AgencyCode: "AG", Username: "user", Language: "ES"}
	if got := cfg.SessionKey(); got != "AG:user:ES" {
		t.Fatalf("unexpected key %q", got)
	}
}
