package yahoo

import (
	"path/filepath"
	"testing"
)

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		broker string
		want   string
	}{
		{"AAPL_US_EQ", "AAPL"},
		{"VODl_EQ", "VOD.L"},
		{"ASMLa_EQ", "ASML.AS"},
		{"BMWd_EQ", "BMW.DE"},
		{"NESNs_EQ", "NESN.SW"},
		{"EDP_PT_EQ", "EDP.LS"},
		{"SHOP_CA_EQ", "SHOP.TO"},
		{"MSFT", "MSFT"}, // already a Yahoo symbol
	}
	for _, tt := range tests {
		got, err := NormalizeTicker(tt.broker, nil)
		if err != nil {
			t.Errorf("%s: %v", tt.broker, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.broker, got, tt.want)
		}
	}
}

func TestNormalizeTicker_Unknown(t *testing.T) {
	for _, broker := range []string{"VODx_EQ", "EDP_XX_EQ", "A_B_C_EQ"} {
		if _, err := NormalizeTicker(broker, nil); err == nil {
			t.Errorf("%s: want error", broker)
		}
	}
}

func TestNormalizeTicker_OverrideWins(t *testing.T) {
	got, err := NormalizeTicker("VUAAm_EQ", Overrides{"VUAAm_EQ": "VUAA.L"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "VUAA.L" {
		t.Errorf("got %q, want override VUAA.L", got)
	}
}

func TestOverrides_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom_tickers.json")

	// A missing file is just an empty map.
	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(o) != 0 {
		t.Fatalf("got %d entries from a missing file", len(o))
	}

	o["VUAAm_EQ"] = "VUAA.L"
	if err := o.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadOverrides(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded["VUAAm_EQ"] != "VUAA.L" {
		t.Errorf("got %v, want saved override back", loaded)
	}
}
