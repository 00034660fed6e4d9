package entrez

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL: server.URL,
		Email:   "you@example.org",
		Tool:    "genomepull-test",
	}, 1000, 5*time.Second)
	client.HTTPClient = server.Client()
	return client
}

func TestClient_Search(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/esearch.fcgi" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("term"); got != "Testgenus AND bacteria[Organism]" {
			t.Errorf("term = %q", got)
		}
		if r.URL.Query().Get("email") == "" || r.URL.Query().Get("tool") == "" {
			t.Error("request missing email/tool identity")
		}
		fmt.Fprint(w, `{"esearchresult":{"count":"2","idlist":["101","102"]}}`)
	}))

	count, ids, err := client.Search(context.Background(), "genome", "Testgenus AND bacteria[Organism]")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if diff := cmp.Diff([]string{"101", "102"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_Link(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/elink.fcgi" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"linksets":[{"dbfrom":"assembly","linksetdbs":[
			{"dbto":"nuccore","linkname":"assembly_nuccore","links":["1","2","3","4"]},
			{"dbto":"nuccore","linkname":"assembly_nuccore_insdc","links":["1","2","3"]}
		]}]}`)
	}))

	sets, err := client.Link(context.Background(), "assembly", "nuccore", "789")
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	want := []LinkSet{
		{Name: "assembly_nuccore", IDs: []string{"1", "2", "3", "4"}},
		{Name: "assembly_nuccore_insdc", IDs: []string{"1", "2", "3"}},
	}
	if diff := cmp.Diff(want, sets); diff != "" {
		t.Errorf("linksets mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_Summary(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"uids":["789"],"789":{
			"speciesname":"Pectobacterium carotovorum",
			"assemblyaccession":"GCA_000123456.1",
			"biosource":{"infraspecieslist":[{"sub_type":"strain","sub_value":"SCC1"}]}
		}}}`)
	}))

	sum, err := client.Summary(context.Background(), "assembly", "789")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	want := DocSummary{
		SpeciesName: "Pectobacterium carotovorum",
		Strain:      "SCC1",
		Accession:   "GCA_000123456.1",
	}
	if sum != want {
		t.Errorf("Summary() = %+v, want %+v", sum, want)
	}
}

// A biosource without a strain entry should decode to an empty
// strain, not an error.
func TestClient_Summary_noStrain(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":{"uids":["790"],"790":{
			"speciesname":"Pectobacterium carotovorum",
			"assemblyaccession":"GCA_000123457.2",
			"biosource":{"infraspecieslist":[]}
		}}}`)
	}))

	sum, err := client.Summary(context.Background(), "assembly", "790")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if sum.Strain != "" {
		t.Errorf("Strain = %q, want empty", sum.Strain)
	}
}

func TestClient_Fetch(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "1,2,3" {
			t.Errorf("id = %q, want batched 1,2,3", got)
		}
		if got := r.URL.Query().Get("rettype"); got != "fasta" {
			t.Errorf("rettype = %q", got)
		}
		fmt.Fprint(w, ">1\nATGC\n>2\nTTTT\n>3\nGGGG\n")
	}))

	body, err := client.Fetch(context.Background(), "nuccore", []string{"1", "2", "3"}, "fasta")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(body) != ">1\nATGC\n>2\nTTTT\n>3\nGGGG\n" {
		t.Errorf("Fetch() = %q", body)
	}
}

// 5xx responses are retried; the request should succeed once the
// server recovers within the retry budget.
func TestClient_get_retriesTransient(t *testing.T) {
	var calls int
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"esearchresult":{"count":"0","idlist":[]}}`)
	}))

	count, _, err := client.Search(context.Background(), "genome", "Emptygenus AND bacteria[Organism]")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if calls != 3 {
		t.Errorf("server saw %d calls, want 3", calls)
	}
}

// A persistent hard failure becomes a *TransportError.
func TestClient_get_transportError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such database", http.StatusBadRequest)
	}))

	_, _, err := client.Search(context.Background(), "nonesuch", "term")
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("Search() error = %v, want *TransportError", err)
	}
	if terr.Util != "esearch.fcgi" {
		t.Errorf("Util = %q", terr.Util)
	}
}
