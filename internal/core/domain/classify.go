package domain

// Classify assigns exactly one status to a scanned EPC. The case order
// is the contract: a tag already seen this session is a duplicate no
// matter what the registry says, an unknown tag beats a surplus claim,
// and a surplus claim beats an asset mismatch.
func Classify(epc, currentAssetID string, seen map[string]bool, result LookupResult) ScanStatus {
	switch {
	case seen[epc]:
		return ScanStatusDuplicate
	case result.Status == LookupStatusNotFound || result.Asset == nil:
		return ScanStatusNotFound
	case result.Status == LookupStatusSurplus:
		return ScanStatusSurplus
	case result.Asset.ID != currentAssetID:
		return ScanStatusWrongAsset
	default:
		return ScanStatusValid
	}
}
