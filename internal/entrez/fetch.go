package entrez

import (
	"context"
	"net/url"
	"strings"
)

// Fetch downloads the records for ids from db in the requested
// rettype ("fasta" here) as raw text. The ids are batched into a
// single efetch request.
func (c *Client) Fetch(ctx context.Context, db string, ids []string, rettype string) ([]byte, error) {
	params := url.Values{}
	params.Set("db", db)
	params.Set("id", strings.Join(ids, ","))
	params.Set("rettype", rettype)
	params.Set("retmode", "text")

	return c.get(ctx, "efetch.fcgi", params)
}
