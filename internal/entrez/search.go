package entrez

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// searchRetMax is the most ids requested from a single esearch call.
const searchRetMax = 100000

// Minimal esearch response shape for unmarshalling. Entrez returns
// the count as a JSON string.
type searchResult struct {
	ESearchResult struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// Search runs an esearch for term against db and returns the total
// hit count along with the result id list.
func (c *Client) Search(ctx context.Context, db, term string) (int, []string, error) {
	params := url.Values{}
	params.Set("db", db)
	params.Set("term", term)
	params.Set("retmode", "json")
	params.Set("retmax", strconv.Itoa(searchRetMax))

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return 0, nil, err
	}

	var result searchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, nil, &TransportError{Util: "esearch.fcgi", Err: err}
	}

	count, err := strconv.Atoi(result.ESearchResult.Count)
	if err != nil {
		return 0, nil, &TransportError{Util: "esearch.fcgi", Err: err}
	}

	return count, result.ESearchResult.IDList, nil
}
