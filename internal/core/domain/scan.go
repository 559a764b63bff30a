package domain

import "time"

type ScanStatus string

const (
	ScanStatusValid      ScanStatus = "valid"
	ScanStatusDuplicate  ScanStatus = "invalid_duplicate"
	ScanStatusWrongAsset ScanStatus = "invalid_wrong_asset"
	ScanStatusSurplus    ScanStatus = "invalid_surplus"
	ScanStatusNotFound   ScanStatus = "invalid_not_found"
)

// ScanRecord is the outcome of classifying one scanned EPC. Asset is
// populated when the registry knows the tag, regardless of status.
type ScanRecord struct {
	EPC       string
	Status    ScanStatus
	Asset     *Asset
	ScannedAt time.Time
}

// Partition groups a session's records into the three buckets the
// counting screen displays. Surplus covers both surplus and
// wrong-asset tags; Error covers tags the registry does not know.
// Duplicates are never stored, so the buckets cover every record.
type Partition struct {
	Valid   []ScanRecord
	Surplus []ScanRecord
	Error   []ScanRecord
}

func (p Partition) Total() int {
	return len(p.Valid) + len(p.Surplus) + len(p.Error)
}
