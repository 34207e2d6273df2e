package ticketing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LoginStoresSessionCookie(t *testing.T) {
	var sawCookie string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "helpdesk_session", Value: "abc123", Path: "/"})
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"user_id": 1, "username": "alice", "is_admin": false},
		})
	})
	mux.HandleFunc("/api/sessions/current", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("helpdesk_session"); err == nil {
			sawCookie = c.Value
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"user_id": 1, "username": "alice", "is_admin": false},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL)

	session, err := client.Login(context.Background(), "alice", "alice123")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)

	_, err = client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", sawCookie, "session cookie should ride along automatically")
}

func TestClient_ErrorEnvelopeBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]any{"type": "NOT_FOUND", "message": "ticket not found"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.GetTicket(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "ticket not found", apiErr.Message)
}

func TestClient_EstimateSendsBearerToken(t *testing.T) {
	var sawAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"title": "wifi down", "estimation": 5, "unit": "days"},
		})
	}))
	defer srv.Close()

	client := NewClient("http://unused", WithEstimatorURL(srv.URL))

	estimate, err := client.Estimate(context.Background(), "tok-1", EstimateRequest{
		Title:    "wifi down",
		Category: "maintenance",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", sawAuth)
	assert.Equal(t, 5, estimate.Estimation)
	assert.Equal(t, "days", estimate.Unit)
}

func TestClient_EstimateBatchCorrelatesByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Tickets []EstimateRequest `json:"tickets"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		results := make([]map[string]any, 0, len(req.Tickets))
		for _, ticket := range req.Tickets {
			results = append(results, map[string]any{
				"id":         ticket.ID,
				"title":      ticket.Title,
				"estimation": 42,
				"unit":       "hours",
			})
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": results})
	}))
	defer srv.Close()

	client := NewClient("http://unused", WithEstimatorURL(srv.URL))

	estimates, err := client.EstimateBatch(context.Background(), "tok-1", []EstimateRequest{
		{ID: 7, Title: "same title", Category: "payment"},
		{ID: 8, Title: "same title", Category: "payment"},
	})
	require.NoError(t, err)
	require.Len(t, estimates, 2)
	assert.Equal(t, uint(7), estimates[0].ID)
	assert.Equal(t, uint(8), estimates[1].ID)
}

func TestClient_ListTicketsDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": 2, "title": "newest", "state": "open", "owner_username": "bob"},
				{"id": 1, "title": "oldest", "state": "close", "owner_username": "alice"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	tickets, err := client.ListTickets(context.Background())
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, uint(2), tickets[0].ID)
	assert.Equal(t, "bob", tickets[0].OwnerUsername)
	assert.Equal(t, "close", tickets[1].State)
}
