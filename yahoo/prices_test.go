package yahoo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MaiqTheHonest/Trading212-PnL/date"
)

func chartJSON(timestamps []int64, closes []string) string {
	ts := make([]string, len(timestamps))
	for i, v := range timestamps {
		ts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf(`{"chart": {"result": [{
		"timestamp": [%s],
		"indicators": {"quote": [{"close": [%s]}]}
	}]}}`, strings.Join(ts, ","), strings.Join(closes, ","))
}

func TestPrices(t *testing.T) {
	day1 := date.New(2024, 1, 4)
	day2 := date.New(2024, 1, 5)

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, chartJSON(
			[]int64{day1.Unix(), day2.Unix()},
			[]string{"185.5", "186.25"},
		))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	h, err := c.Prices("AAPL", day1, day2)
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/v8/finance/chart/AAPL" {
		t.Errorf("got path %q", gotPath)
	}
	if got, _ := h.Get(day1); got != 185.5 {
		t.Errorf("day 1: got %v, want 185.5", got)
	}
	if got, _ := h.Get(day2); got != 186.25 {
		t.Errorf("day 2: got %v, want 186.25", got)
	}
}

func TestPrices_SkipsNullCloses(t *testing.T) {
	day1 := date.New(2024, 1, 4)
	day2 := date.New(2024, 1, 5)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON([]int64{day1.Unix(), day2.Unix()}, []string{"null", "186.25"}))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	h, err := c.Prices("AAPL", day1, day2)
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 1 {
		t.Fatalf("got %d entries, want the null dropped", h.Len())
	}
}

func TestPrices_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": null, "error": {"code": "Not Found"}}}`)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	if _, err := c.Prices("NOPE", date.New(2024, 1, 4), date.New(2024, 1, 5)); err == nil {
		t.Error("want a loud error for a symbol with no data")
	}
}
