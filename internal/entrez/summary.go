package entrez

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// DocSummary is the subset of an assembly document summary this
// application uses. Strain is empty when the assembly's biosource
// carries no strain entry; that is not an error.
type DocSummary struct {
	SpeciesName string
	Strain      string
	Accession   string
}

// Minimal esummary response shapes for unmarshalling. The result
// object is keyed by uid, plus a "uids" index entry.
type summaryResult struct {
	Result map[string]json.RawMessage `json:"result"`
}

type summaryDoc struct {
	SpeciesName       string `json:"speciesname"`
	AssemblyAccession string `json:"assemblyaccession"`
	Biosource         struct {
		InfraspeciesList []struct {
			SubType  string `json:"sub_type"`
			SubValue string `json:"sub_value"`
		} `json:"infraspecieslist"`
	} `json:"biosource"`
}

// Summary fetches the document summary for one id in db.
func (c *Client) Summary(ctx context.Context, db, id string) (DocSummary, error) {
	params := url.Values{}
	params.Set("db", db)
	params.Set("id", id)
	params.Set("retmode", "json")

	body, err := c.get(ctx, "esummary.fcgi", params)
	if err != nil {
		return DocSummary{}, err
	}

	var result summaryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return DocSummary{}, &TransportError{Util: "esummary.fcgi", Err: err}
	}

	raw, ok := result.Result[id]
	if !ok {
		return DocSummary{}, &TransportError{Util: "esummary.fcgi", Err: fmt.Errorf("no document summary for id %s", id)}
	}

	var doc summaryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return DocSummary{}, &TransportError{Util: "esummary.fcgi", Err: err}
	}

	sum := DocSummary{
		SpeciesName: doc.SpeciesName,
		Accession:   doc.AssemblyAccession,
	}
	for _, infra := range doc.Biosource.InfraspeciesList {
		if infra.SubType == "strain" {
			sum.Strain = infra.SubValue
			break
		}
	}

	return sum, nil
}
