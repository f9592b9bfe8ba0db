package trading212

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL), WithRetryWait(time.Millisecond))
}

func TestOrders_Pagination(t *testing.T) {
	var cursors []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		cursor := r.URL.Query().Get("cursor")
		cursors = append(cursors, cursor)

		w.Header().Set("Content-Type", "application/json")
		if cursor == "" {
			fmt.Fprint(w, `{"items": [
				{"id": 2, "ticker": "AAPL_US_EQ", "dateCreated": "2024-01-09T14:30:00Z",
				 "filledQuantity": 5, "fillPrice": 120, "filledValue": 600, "status": "FILLED"},
				{"id": 1, "ticker": "VOD_l_EQ", "dateCreated": "2024-01-02T09:00:00Z",
				 "filledQuantity": null, "fillPrice": 70, "filledValue": 100, "status": "FILLED"}
			]}`)
			return
		}
		fmt.Fprint(w, `{"items": []}`)
	})

	orders, err := c.Orders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Second request resumes from the last item's millisecond timestamp.
	wantCursor := fmt.Sprint(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC).UnixMilli())
	assert.Equal(t, []string{"", wantCursor}, cursors)

	assert.Equal(t, uint64(2), orders[0].ID)
	assert.Equal(t, date.New(2024, 1, 9), orders[0].Date)
	assert.False(t, orders[0].PenceQuoted)

	// Null filledQuantity survives as zero, LSE ticker is pence quoted.
	assert.True(t, orders[1].Quantity.IsZero())
	assert.True(t, orders[1].PenceQuoted)
}

func TestOrders_EmptyHistory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": []}`)
	})
	_, err := c.Orders(context.Background())
	assert.Error(t, err)
}

func TestOrders_RateLimitRetry(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		if r.URL.Query().Get("cursor") == "" {
			fmt.Fprint(w, `{"items": [
				{"id": 1, "ticker": "AAPL_US_EQ", "dateCreated": "2024-01-02T09:00:00Z",
				 "filledQuantity": 1, "fillPrice": 100, "filledValue": 100, "status": "FILLED"}
			]}`)
			return
		}
		fmt.Fprint(w, `{"items": []}`)
	})

	orders, err := c.Orders(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.GreaterOrEqual(t, calls, 3)
}

func TestOrders_HardFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := c.Orders(context.Background())
	assert.ErrorContains(t, err, "401")
}

func TestDividends_StopsOnNullNextPage(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"items": [
			{"ticker": "AAPL_US_EQ", "amount": 1.5, "paidOn": "2024-02-10T00:00:00Z"}
		], "nextPagePath": null}`)
	})

	divs, err := c.Dividends(context.Background())
	require.NoError(t, err)
	require.Len(t, divs, 1)
	assert.Equal(t, 1, calls)
	assert.Equal(t, date.New(2024, 2, 10), divs[0].PaidOn)
	assert.Equal(t, "1.5", divs[0].Amount.String())
}
