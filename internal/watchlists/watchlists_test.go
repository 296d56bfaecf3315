package watchlists

import "testing"

func assertWellFormed(t *testing.T, name string, symbols []string) {
	t.Helper()

	seen := make(map[string]bool, len(symbols))
	for _, symbol := range symbols {
		if symbol == "" {
			t.Errorf("%s contains an empty symbol", name)
		}
		if seen[symbol] {
			t.Errorf("%s contains %s more than once", name, symbol)
		}
		seen[symbol] = true
		for _, r := range symbol {
			if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '&' && r != '-' {
				t.Errorf("%s: unexpected character %q in %s", name, r, symbol)
			}
		}
	}
}

func TestWatchlists(t *testing.T) {
	assertWellFormed(t, "FNO", FNO)
	assertWellFormed(t, "Nifty50", Nifty50)
	assertWellFormed(t, "NiftyNext50", NiftyNext50)

	if len(Nifty50) != 50 {
		t.Errorf("expected 50 NIFTY 50 members, got %d", len(Nifty50))
	}
	if len(NiftyNext50) != 49 {
		t.Errorf("expected 49 NIFTY Next 50 members, got %d", len(NiftyNext50))
	}
	if len(FNO) < 150 {
		t.Errorf("FNO universe looks truncated: %d symbols", len(FNO))
	}
}
