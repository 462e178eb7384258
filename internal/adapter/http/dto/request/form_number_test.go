package request

import (
	"encoding/json"
	"testing"
)

func TestParseLeadingInt(t *testing.T) {
	cases := map[string]int{
		"":        0,
		"abc":     0,
		"12":      12,
		"  7 pcs": 7,
		"1.9":     1,
		"-3":      -3,
		"+4x":     4,
		"-":       0,
	}
	for in, want := range cases {
		if got := ParseLeadingInt(in); got != want {
			t.Fatalf("ParseLeadingInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseLeadingDecimal(t *testing.T) {
	cases := map[string]string{
		"":                                "0",
		"abc":                             "0",
		"12.50":                           "12.5",
		" 99kg":                           "99",
		".5":                              "0.5",
		"5.":                              "5",
		"-1.25":                           "-1.25",
		"1e3":                             "1000",
		"2e":                              "2",
		"3.1.4":                           "3.1",
		"1.5E-1x":                         "0.15",
		"999999999999999.99":              "999999999999999.99",
		"1e15":                            "0",
		"-1e15":                           "0",
		"1e400":                           "0",
		"1e50000000":                      "0",
		"1e-50000000":                     "0",
		"1e99999999999999999999":          "0",
		"1000000000000000000000000000000": "0",
	}
	for in, want := range cases {
		if got := ParseLeadingDecimal(in).String(); got != want {
			t.Fatalf("ParseLeadingDecimal(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestFormNumber_UnmarshalJSON(t *testing.T) {
	var body struct {
		A FormNumber `json:"a"`
		B FormNumber `json:"b"`
		C FormNumber `json:"c"`
		D FormNumber `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"a":12.5,"b":"7 units","c":true,"d":null}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.A.Decimal().String() != "12.5" {
		t.Fatalf("expected 12.5, got %s", body.A.Decimal())
	}
	if body.B.Int() != 7 {
		t.Fatalf("expected 7, got %d", body.B.Int())
	}
	if !body.C.IsEmpty() || body.C.Int() != 0 {
		t.Fatalf("expected bool to read as empty")
	}
	if !body.D.IsEmpty() {
		t.Fatalf("expected null to read as empty")
	}
}
