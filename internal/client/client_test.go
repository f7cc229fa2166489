package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-key-123"

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewWithHTTPClient(Config{
		APIBaseURL:   srv.URL,
		APIKey:       testAPIKey,
		AssetBaseURL: srv.URL + "/storage/",
	}, srv.Client())
	return c, srv
}

func bookingJSON() string {
	return `{
		"id": "7b1c9a4e-1f2d-4c3b-8a5e-6d7f8a9b0c1d",
		"booking_trx_id": "FO-8A2KQZ",
		"office_space_id": "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
		"name": "Putri Ayu",
		"phone_number": "081234567890",
		"started_at": "2024-07-01",
		"ended_at": "2024-07-20",
		"duration": 20,
		"total_amount": 7000000,
		"is_paid": false,
		"office": {
			"name": "Sky Tower Workspace",
			"thumbnail": "thumbnails/sky-tower.png",
			"city": {"name": "Jakarta"}
		}
	}`
}

func TestLookup(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/check-booking", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(APIKeyHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var form LookupForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "FO-8A2KQZ", form.BookingTrxID)
		assert.Equal(t, "081234567890", form.PhoneNumber)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": ` + bookingJSON() + `}`))
	})

	details, err := c.Lookup(context.Background(), LookupForm{
		BookingTrxID: "FO-8A2KQZ",
		PhoneNumber:  "081234567890",
	})
	require.NoError(t, err)

	assert.Equal(t, "7b1c9a4e-1f2d-4c3b-8a5e-6d7f8a9b0c1d", details.ID)
	assert.Equal(t, "FO-8A2KQZ", details.BookingTrxID)
	assert.Equal(t, "Putri Ayu", details.Name)
	assert.Equal(t, "2024-07-01", details.StartedAt)
	assert.Equal(t, "2024-07-20", details.EndedAt)
	assert.Equal(t, 20, details.Duration)
	assert.Equal(t, int64(7000000), details.TotalAmount)
	assert.False(t, bool(details.IsPaid))
	assert.Equal(t, "Sky Tower Workspace", details.Office.Name)
	assert.Equal(t, "Jakarta", details.Office.City.Name)
}

func TestLookup_NotFoundUsesServerMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "booking not found: FO-XXXXXX"}`))
	})

	_, err := c.Lookup(context.Background(), LookupForm{BookingTrxID: "FO-XXXXXX", PhoneNumber: "081234567890"})
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusNotFound, transportErr.StatusCode)
	assert.Equal(t, "booking not found: FO-XXXXXX", transportErr.Message)
	assert.Equal(t, "booking not found: FO-XXXXXX", ErrorMessage(err))
}

func TestLookup_UnparseableErrorBodyFallsBackToStatusMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	})

	_, err := c.Lookup(context.Background(), LookupForm{BookingTrxID: "FO-8A2KQZ", PhoneNumber: "081234567890"})
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "Request failed with status code 502", transportErr.Message)
}

func TestLookup_ConnectionRefusedIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c := New(Config{APIBaseURL: srv.URL, APIKey: testAPIKey})
	_, err := c.Lookup(context.Background(), LookupForm{BookingTrxID: "FO-8A2KQZ", PhoneNumber: "081234567890"})
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 0, transportErr.StatusCode)
	assert.Equal(t, "Network Error", transportErr.Message)
	assert.Error(t, transportErr.Unwrap())
}

func TestUpdate(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/update-booking/7b1c9a4e-1f2d-4c3b-8a5e-6d7f8a9b0c1d", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(APIKeyHeader))

		var sent BookingDetails
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "Dewi Lestari", sent.Name)
		assert.Equal(t, "FO-8A2KQZ", sent.BookingTrxID, "the full record goes over the wire")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": ` + bookingJSON() + `}`))
	})

	var details BookingDetails
	require.NoError(t, json.Unmarshal([]byte(bookingJSON()), &details))
	details.Name = "Dewi Lestari"

	updated, err := c.Update(context.Background(), details)
	require.NoError(t, err)
	assert.Equal(t, "FO-8A2KQZ", updated.BookingTrxID)
}

func TestCancel(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/cancel-booking/7b1c9a4e-1f2d-4c3b-8a5e-6d7f8a9b0c1d", r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get(APIKeyHeader))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"deleted": true}}`))
	})

	require.NoError(t, c.Cancel(context.Background(), "7b1c9a4e-1f2d-4c3b-8a5e-6d7f8a9b0c1d"))
}

func TestCancel_Unauthorized(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid or missing API key"}`))
	})

	err := c.Cancel(context.Background(), "7b1c9a4e-1f2d-4c3b-8a5e-6d7f8a9b0c1d")
	require.Error(t, err)
	assert.Equal(t, "invalid or missing API key", ErrorMessage(err))
}

func TestResolveAsset(t *testing.T) {
	c := New(Config{AssetBaseURL: "http://localhost:8000/storage/"})

	assert.Equal(t, "http://localhost:8000/storage/thumbnails/a.png", c.ResolveAsset("thumbnails/a.png"))
	assert.Equal(t, "http://localhost:8000/storage/thumbnails/a.png", c.ResolveAsset("/thumbnails/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", c.ResolveAsset("https://cdn.example.com/a.png"))
	assert.Equal(t, "", c.ResolveAsset(""))

	noSlash := New(Config{AssetBaseURL: "http://localhost:8000/storage"})
	assert.Equal(t, "http://localhost:8000/storage/a.png", noSlash.ResolveAsset("a.png"))
}

func TestBoolFlagUnmarshal(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`null`, false},
	}
	for _, tt := range tests {
		var f BoolFlag
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &f), "raw %s", tt.raw)
		assert.Equal(t, tt.want, bool(f), "raw %s", tt.raw)
	}

	var f BoolFlag
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &f))

	out, err := json.Marshal(BoolFlag(true))
	require.NoError(t, err)
	assert.Equal(t, `true`, string(out))
}

func TestErrorMessage_UnknownError(t *testing.T) {
	assert.Equal(t, UnexpectedErrorMessage, ErrorMessage(assert.AnError))
}
