package domain

import "time"

type Asset struct {
	ID        string
	AssetType string
	Name      string
	CreatedAt time.Time
}

type LookupStatus string

const (
	LookupStatusNotFound LookupStatus = "not_found"
	LookupStatusSurplus  LookupStatus = "surplus"
	LookupStatusFound    LookupStatus = "found"
)

// LookupResult is the registry's answer for one EPC. Asset is set for
// surplus and found results, nil for not_found.
type LookupResult struct {
	Status LookupStatus
	Asset  *Asset
}
