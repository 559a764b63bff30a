package registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/rl1809/epc-inventory/internal/core/domain"
)

// RemoteRegistry implements the registry lookup port against an
// upstream registry HTTP API, for sites where the registry of record
// is not this service's own database. The upstream pre-computes the
// surplus status; this adapter only maps the payload.
type RemoteRegistry struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewRemoteRegistry(baseURL string, logger *zap.Logger) *RemoteRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &RemoteRegistry{httpClient: restyClient, logger: logger}
}

type lookupResponse struct {
	Status string `json:"status"`
	Asset  *struct {
		ID        string `json:"id"`
		AssetType string `json:"asset_type"`
		Name      string `json:"name"`
	} `json:"asset,omitempty"`
}

func (r *RemoteRegistry) Lookup(ctx context.Context, epc, taskID string) (domain.LookupResult, error) {
	result := new(lookupResponse)

	resp, err := r.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"epc":     epc,
			"task_id": taskID,
		}).
		SetResult(result).
		Get("/api/registry/lookup")
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("registry request: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return domain.LookupResult{Status: domain.LookupStatusNotFound}, nil
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return domain.LookupResult{}, fmt.Errorf("registry returned status %d", resp.StatusCode())
	}

	var asset *domain.Asset
	if result.Asset != nil {
		asset = &domain.Asset{
			ID:        result.Asset.ID,
			AssetType: result.Asset.AssetType,
			Name:      result.Asset.Name,
		}
	}

	switch result.Status {
	case "found":
		if asset == nil {
			return domain.LookupResult{Status: domain.LookupStatusNotFound}, nil
		}
		return domain.LookupResult{Status: domain.LookupStatusFound, Asset: asset}, nil
	case "surplus":
		return domain.LookupResult{Status: domain.LookupStatusSurplus, Asset: asset}, nil
	case "not_found":
		return domain.LookupResult{Status: domain.LookupStatusNotFound}, nil
	default:
		return domain.LookupResult{}, fmt.Errorf("registry returned unknown status %q", result.Status)
	}
}
