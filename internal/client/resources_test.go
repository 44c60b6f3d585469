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

func TestMemberCustomFieldsClient_EnsureSetCreatesWhenUnset(t *testing.T) {
	var calls []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)

		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/member/7/custom-fields/", r.URL.Path)
			assert.Equal(t, "{id,value,customField{id}}", r.URL.Query().Get("query"))

			_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.MemberCustomField]{
				Count: 1,
				Results: []easyverein.MemberCustomField{
					{RecordBase: easyverein.RecordBase{ID: 60}, CustomField: easyverein.RefID(5)},
				},
			})

		case http.MethodPost:
			assert.Equal(t, "/member/7/custom-fields/", r.URL.Path)

			var payload map[string]interface{}

			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.InEpsilon(t, 9.0, payload["customField"], 0.001)
			assert.Equal(t, "blue", payload["value"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": 61, "customField": 9, "value": "blue"}`))
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	field, err := client.MemberCustomFields().EnsureSet(context.Background(), 7, 9, "blue")
	require.NoError(t, err)
	assert.Equal(t, int64(61), field.ID)
	assert.Len(t, calls, 2)
}

func TestMemberCustomFieldsClient_EnsureSetUpdatesExisting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.MemberCustomField]{
				Count: 1,
				Results: []easyverein.MemberCustomField{
					{RecordBase: easyverein.RecordBase{ID: 60}, CustomField: easyverein.RefID(9), Value: easyverein.Ptr("red")},
				},
			})

		case http.MethodPatch:
			assert.Equal(t, "/member/7/custom-fields/60", r.URL.Path)

			var payload map[string]interface{}

			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "blue", payload["value"])

			_, _ = w.Write([]byte(`{"id": 60, "customField": 9, "value": "blue"}`))

		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	field, err := client.MemberCustomFields().EnsureSet(context.Background(), 7, 9, "blue")
	require.NoError(t, err)
	assert.Equal(t, int64(60), field.ID)
	assert.Equal(t, "blue", *field.Value)
}

func TestMemberMemberGroupsClient_AddToGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/member/7/groups/", r.URL.Path)
			assert.Equal(t, "12", r.URL.Query().Get("memberGroup"))

			_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.MemberMemberGroup]{
				Count:   0,
				Results: []easyverein.MemberMemberGroup{},
			})

		case http.MethodPost:
			assert.Equal(t, "/member/7/groups/", r.URL.Path)

			var payload map[string]interface{}

			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.InEpsilon(t, 12.0, payload["memberGroup"], 0.001)
			assert.Equal(t, true, payload["paymentActive"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": 80, "memberGroup": 12, "paymentActive": true}`))
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	membership, err := client.MemberMemberGroups().AddToGroup(context.Background(), 7, 12, true)
	require.NoError(t, err)
	assert.Equal(t, int64(80), membership.ID)
}

func TestMemberMemberGroupsClient_AddToGroupAlreadyMember(t *testing.T) {
	posts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
		}

		_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.MemberMemberGroup]{
			Count: 1,
			Results: []easyverein.MemberMemberGroup{
				{RecordBase: easyverein.RecordBase{ID: 80}, MemberGroup: easyverein.RefID(12)},
			},
		})
	}))
	defer server.Close()

	logger := &capturingLogger{}
	client := NewTestClientWithLogger(server.URL, logger)

	membership, err := client.MemberMemberGroups().AddToGroup(context.Background(), 7, 12, true)
	require.NoError(t, err)
	assert.Equal(t, int64(80), membership.ID)
	// Adding an existing membership is a no-op, not an error.
	assert.Equal(t, 0, posts)
}

func TestMemberMemberGroupsClient_RemoveFromGroup(t *testing.T) {
	var calls []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)

		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.MemberMemberGroup]{
				Count: 1,
				Results: []easyverein.MemberMemberGroup{
					{RecordBase: easyverein.RecordBase{ID: 80}, MemberGroup: easyverein.RefID(12)},
				},
			})

		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	require.NoError(t, client.MemberMemberGroups().RemoveFromGroup(context.Background(), 7, 12))
	assert.Equal(t, []string{
		"GET /member/7/groups/",
		"DELETE /member/7/groups/80",
	}, calls)
}

func TestMemberMemberGroupsClient_RemoveFromGroupNotAMember(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.MemberMemberGroup]{
			Count:   0,
			Results: []easyverein.MemberMemberGroup{},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.MemberMemberGroups().RemoveFromGroup(context.Background(), 7, 12)
	require.Error(t, err)
	assert.True(t, easyverein.IsNotFound(err))
}

func TestMemberMemberGroupsClient_SetGroupBillingStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(easyverein.ListResponse[easyverein.MemberMemberGroup]{
				Count: 1,
				Results: []easyverein.MemberMemberGroup{
					{RecordBase: easyverein.RecordBase{ID: 80}, PaymentActive: easyverein.Ptr(true)},
				},
			})

		case http.MethodPatch:
			assert.Equal(t, "/member/7/groups/80", r.URL.Path)

			var payload map[string]interface{}

			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, false, payload["paymentActive"])

			_, _ = w.Write([]byte(`{"id": 80, "paymentActive": false}`))
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	membership, err := client.MemberMemberGroups().SetGroupBillingStatus(context.Background(), 7, 12, false)
	require.NoError(t, err)
	assert.False(t, *membership.PaymentActive)
}
