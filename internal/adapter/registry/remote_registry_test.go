package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/epc-inventory/internal/core/domain"
)

func newRegistryServer(t *testing.T, responses map[string]lookupResponse) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/registry/lookup", r.URL.Path)
		epc := r.URL.Query().Get("epc")

		resp, ok := responses[epc]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func found(id, name string) lookupResponse {
	resp := lookupResponse{Status: "found"}
	resp.Asset = &struct {
		ID        string `json:"id"`
		AssetType string `json:"asset_type"`
		Name      string `json:"name"`
	}{ID: id, AssetType: "pallet", Name: name}
	return resp
}

func TestRemoteRegistry_Found(t *testing.T) {
	srv := newRegistryServer(t, map[string]lookupResponse{
		"epc-1": found("asset-1", "Pallet 1"),
	})

	reg := NewRemoteRegistry(srv.URL, nil)

	result, err := reg.Lookup(context.Background(), "epc-1", "task-1")
	require.NoError(t, err)
	assert.Equal(t, domain.LookupStatusFound, result.Status)
	require.NotNil(t, result.Asset)
	assert.Equal(t, "asset-1", result.Asset.ID)
	assert.Equal(t, "Pallet 1", result.Asset.Name)
}

func TestRemoteRegistry_NotFoundStatusCode(t *testing.T) {
	srv := newRegistryServer(t, nil)

	reg := NewRemoteRegistry(srv.URL, nil)

	result, err := reg.Lookup(context.Background(), "ghost", "task-1")
	require.NoError(t, err)
	assert.Equal(t, domain.LookupStatusNotFound, result.Status)
	assert.Nil(t, result.Asset)
}

func TestRemoteRegistry_NotFoundPayload(t *testing.T) {
	srv := newRegistryServer(t, map[string]lookupResponse{
		"epc-1": {Status: "not_found"},
	})

	reg := NewRemoteRegistry(srv.URL, nil)

	result, err := reg.Lookup(context.Background(), "epc-1", "task-1")
	require.NoError(t, err)
	assert.Equal(t, domain.LookupStatusNotFound, result.Status)
}

func TestRemoteRegistry_Surplus(t *testing.T) {
	resp := found("asset-1", "Pallet 1")
	resp.Status = "surplus"
	srv := newRegistryServer(t, map[string]lookupResponse{"epc-1": resp})

	reg := NewRemoteRegistry(srv.URL, nil)

	result, err := reg.Lookup(context.Background(), "epc-1", "task-1")
	require.NoError(t, err)
	assert.Equal(t, domain.LookupStatusSurplus, result.Status)
	require.NotNil(t, result.Asset)
}

func TestRemoteRegistry_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	reg := NewRemoteRegistry(srv.URL, nil)

	_, err := reg.Lookup(context.Background(), "epc-1", "task-1")
	assert.Error(t, err)
}

func TestRemoteRegistry_UnknownStatus(t *testing.T) {
	srv := newRegistryServer(t, map[string]lookupResponse{
		"epc-1": {Status: "maybe"},
	})

	reg := NewRemoteRegistry(srv.URL, nil)

	_, err := reg.Lookup(context.Background(), "epc-1", "task-1")
	assert.Error(t, err)
}
