package grievance

import "testing"

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in        string
		wantLabel string
		wantKnown bool
	}{
		{"Coach Cleanliness", "Coach Cleanliness", true},
		{"  Coach Cleanliness  ", "Coach Cleanliness", true},
		{"coach cleanliness", "coach cleanliness", true}, // case-insensitive match, verbatim label
		{"Goods Related", "Goods Related", true},
		{"Catering & Vending Services", "Catering & Vending Services", true},
		{"Signal Problems", "Signal Problems", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got := ParseCategory(tc.in)
		if got.Label() != tc.wantLabel || got.Known() != tc.wantKnown {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)",
				tc.in, got.Label(), got.Known(), tc.wantLabel, tc.wantKnown)
		}
	}
}

func TestCategoryIsGoodsRelated(t *testing.T) {
	if !ParseCategory("Goods Related").IsGoodsRelated() {
		t.Error("Goods Related should be the goods sentinel")
	}
	if ParseCategory("Coach Cleanliness").IsGoodsRelated() {
		t.Error("Coach Cleanliness is not the goods sentinel")
	}
}

func TestParseDomain(t *testing.T) {
	cases := []struct {
		in        string
		wantTrain bool
		wantKnown bool
	}{
		{"Train", true, true},
		{"train", true, true},
		{"TRAIN", true, true},
		{" Train ", true, true},
		{"Station", false, true},
		{"Platform", false, false},
		{"", false, false},
	}
	for _, tc := range cases {
		got := ParseDomain(tc.in)
		if got.IsTrain() != tc.wantTrain || got.Known() != tc.wantKnown {
			t.Errorf("ParseDomain(%q): IsTrain=%v Known=%v, want IsTrain=%v Known=%v",
				tc.in, got.IsTrain(), got.Known(), tc.wantTrain, tc.wantKnown)
		}
	}
}

func TestDomainScanPreservesRawLabel(t *testing.T) {
	var d Domain
	if err := d.Scan("Platform"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if d.Label() != "Platform" || d.Known() {
		t.Errorf("scanned domain = (%q, %v), want (Platform, false)", d.Label(), d.Known())
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if d.Label() != "" {
		t.Errorf("scanned NULL domain = %q, want empty", d.Label())
	}
}
