package entrez

import (
	"context"
	"encoding/json"
	"net/url"
)

// LinkSet is one named group of links from a source id to ids in
// another database, e.g. "assembly_nuccore_insdc".
type LinkSet struct {
	Name string
	IDs  []string
}

// Minimal elink response shape for unmarshalling.
type linkResult struct {
	LinkSets []struct {
		LinkSetDBs []struct {
			LinkName string   `json:"linkname"`
			Links    []string `json:"links"`
		} `json:"linksetdbs"`
	} `json:"linksets"`
}

// Link returns every linkset connecting id in fromDB to records in
// toDB. An id with no links returns an empty slice, not an error.
func (c *Client) Link(ctx context.Context, fromDB, toDB, id string) ([]LinkSet, error) {
	params := url.Values{}
	params.Set("dbfrom", fromDB)
	params.Set("db", toDB)
	params.Set("id", id)
	params.Set("retmode", "json")

	body, err := c.get(ctx, "elink.fcgi", params)
	if err != nil {
		return nil, err
	}

	var result linkResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &TransportError{Util: "elink.fcgi", Err: err}
	}

	var sets []LinkSet
	for _, ls := range result.LinkSets {
		for _, db := range ls.LinkSetDBs {
			sets = append(sets, LinkSet{Name: db.LinkName, IDs: db.Links})
		}
	}

	return sets, nil
}
