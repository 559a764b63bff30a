package domain

import "testing"

func TestClassify(t *testing.T) {
	asset := &Asset{ID: "asset-1", AssetType: "pallet", Name: "Pallet 1"}
	other := &Asset{ID: "asset-2", AssetType: "pallet", Name: "Pallet 2"}

	tests := []struct {
		name   string
		epc    string
		seen   map[string]bool
		result LookupResult
		want   ScanStatus
	}{
		{
			name:   "registered tag for current asset",
			epc:    "epc-a",
			result: LookupResult{Status: LookupStatusFound, Asset: asset},
			want:   ScanStatusValid,
		},
		{
			name:   "unknown tag",
			epc:    "epc-x",
			result: LookupResult{Status: LookupStatusNotFound},
			want:   ScanStatusNotFound,
		},
		{
			name:   "tag counted elsewhere",
			epc:    "epc-a",
			result: LookupResult{Status: LookupStatusSurplus, Asset: asset},
			want:   ScanStatusSurplus,
		},
		{
			name:   "tag registered to another asset",
			epc:    "epc-b",
			result: LookupResult{Status: LookupStatusFound, Asset: other},
			want:   ScanStatusWrongAsset,
		},
		{
			name:   "seen this session beats everything",
			epc:    "epc-a",
			seen:   map[string]bool{"epc-a": true},
			result: LookupResult{Status: LookupStatusFound, Asset: asset},
			want:   ScanStatusDuplicate,
		},
		{
			name:   "seen beats not found",
			epc:    "epc-x",
			seen:   map[string]bool{"epc-x": true},
			result: LookupResult{Status: LookupStatusNotFound},
			want:   ScanStatusDuplicate,
		},
		{
			name:   "not found beats surplus when asset missing",
			epc:    "epc-y",
			result: LookupResult{Status: LookupStatusSurplus, Asset: nil},
			want:   ScanStatusNotFound,
		},
		{
			name:   "surplus beats wrong asset",
			epc:    "epc-b",
			result: LookupResult{Status: LookupStatusSurplus, Asset: other},
			want:   ScanStatusSurplus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.epc, "asset-1", tt.seen, tt.result)
			if got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	asset := &Asset{ID: "asset-1"}
	result := LookupResult{Status: LookupStatusFound, Asset: asset}

	first := Classify("epc-a", "asset-1", nil, result)
	for i := 0; i < 10; i++ {
		if got := Classify("epc-a", "asset-1", nil, result); got != first {
			t.Fatalf("classification changed between calls: %s vs %s", first, got)
		}
	}
}
