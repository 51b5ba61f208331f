// Package coingecko fetches cryptocurrency spot prices from the public
// CoinGecko API. It is a market-data collaborator: it produces plain price
// observations for the journal and knows nothing about the ledger.
package coingecko

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/gmottier/patrimoine"
)

const api = "https://api.coingecko.com/api/v3"

// FetchPrice returns the current spot price of a coin (e.g. "bitcoin") in the
// given currency (e.g. "EUR").
func FetchPrice(coin, currency string) (float64, error) {
	cur := strings.ToLower(currency)
	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s", api, url.QueryEscape(coin), cur)
	return fetchFloat(new(http.Client), addr, fmt.Sprintf("$.%s.%s", coin, cur), coin)
}

// FetchPriceOn returns the closing price of a coin on a past date. Historical
// prices never change, so responses are served from the daily disk cache.
func FetchPriceOn(coin, currency string, on patrimoine.Date) (float64, error) {
	cur := strings.ToLower(currency)
	// the history endpoint wants dd-mm-yyyy
	addr := fmt.Sprintf("%s/coins/%s/history?date=%s", api, url.QueryEscape(coin), on.Format("02-01-2006"))
	return fetchFloat(daily(), addr, fmt.Sprintf("$.market_data.current_price.%s", cur), coin)
}

// fetchFloat GETs a JSON document and extracts a single float from it.
func fetchFloat(client *http.Client, addr, path, what string) (float64, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error fetching %q: %w", what, err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", what, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or a
	// single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q not a float: %v", what, path, jval)
	}
	return val, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
