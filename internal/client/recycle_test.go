package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
)

func TestMembersClient_ListDeleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wastebasket/member/", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.Member]{
			Count: 1,
			Results: []easyverein.Member{
				{RecordBase: easyverein.RecordBase{
					ID:        7,
					DeletedBy: easyverein.Ptr("admin"),
				}},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	list, err := client.Members().ListDeleted(context.Background(), easyverein.NewListOptions().WithLimit(25))
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "admin", *list.Results[0].DeletedBy)
}

func TestMembersClient_Purge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wastebasket/member/7/", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	require.NoError(t, client.Members().Purge(context.Background(), 7))
}

func TestMembersClient_DeleteAndPurge(t *testing.T) {
	var calls []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	require.NoError(t, client.Members().DeleteAndPurge(context.Background(), 7))
	assert.Equal(t, []string{
		"DELETE /member/7",
		"DELETE /wastebasket/member/7/",
	}, calls)
}

func TestMembersClient_DeleteAndPurgeLeavesSoftDeletedOnPurgeFailure(t *testing.T) {
	var calls []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)

		if r.URL.Path == "/member/7" {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	// Purge retries are disabled so the failure surfaces immediately.
	client := NewTestClient(server.URL)

	err := client.Members().DeleteAndPurge(context.Background(), 7)
	require.Error(t, err)

	// The delete before the failing purge went through, so the record is
	// in the recycle bin, not restored.
	assert.Contains(t, calls, "DELETE /member/7")
	assert.Contains(t, calls, "DELETE /wastebasket/member/7/")
}

func TestMembersClient_DeleteAndPurgeStopsOnDeleteFailure(t *testing.T) {
	var calls []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Members().DeleteAndPurge(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, easyverein.IsNotFound(err))
	assert.Equal(t, []string{"DELETE /member/7"}, calls)
}
