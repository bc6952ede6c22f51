package quickgo

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services"
)

const serviceName = "quickgo"

type Client struct {
	Url        string
	Limit      int
	httpClient lib.HttpClient
}

// NewClient returns a QuickGO client that fetches at most limit annotations per protein.
func NewClient(url string, limit int, httpClient lib.HttpClient) *Client {
	return &Client{
		Url:        url,
		Limit:      limit,
		httpClient: httpClient,
	}
}

type annotationResponse struct {
	NumberOfHits int          `json:"numberOfHits"`
	Results      []Annotation `json:"results"`
}

// Annotations returns the GO annotations QuickGO holds for a UniProtKB accession.
func (c *Client) Annotations(ctx context.Context, accession string) (Annotations, error) {
	if !strings.Contains(accession, ":") {
		accession = "UniProtKB:" + accession
	}
	params := url.Values{
		"geneProductId": {accession},
		"includeFields": {"goName"},
	}
	if c.Limit > 0 {
		params.Set("limit", strconv.Itoa(c.Limit))
	}
	u := lib.UrlWithQuery(lib.JoinUrl(c.Url, "annotation", "search"), params)

	b, err := services.Get(ctx, c.httpClient, serviceName, u, "application/json")
	if err != nil {
		return nil, err
	}

	var response annotationResponse
	if err := json.Unmarshal(b, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}
