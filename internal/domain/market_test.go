package domain

import "testing"

func TestMarketCatalog(t *testing.T) {
	markets := AllMarkets()
	if len(markets) != 12 {
		t.Fatalf("Expected 12 markets, got %d", len(markets))
	}

	seen := make(map[Market]bool)
	for _, m := range markets {
		if seen[m] {
			t.Errorf("Duplicate market %s", m)
		}
		seen[m] = true

		if m.Label() == string(m) {
			t.Errorf("Market %s has no label", m)
		}
	}
}

func TestMarketByLabel(t *testing.T) {
	m, ok := MarketByLabel("HELSINKI_LARGE")
	if !ok {
		t.Fatal("Expected HELSINKI_LARGE to resolve")
	}
	if m != HelsinkiLarge {
		t.Errorf("Expected %s, got %s", HelsinkiLarge, m)
	}
	if m.Code() != "L:INET:H7054310" {
		t.Errorf("Unexpected code %s", m.Code())
	}

	if _, ok := MarketByLabel("OSLO_LARGE"); ok {
		t.Error("Expected unknown label to fail")
	}
}
