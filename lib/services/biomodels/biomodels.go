package biomodels

import (
	"context"
	"encoding/json"
	"net/url"

	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services"
)

const serviceName = "biomodels"

type Client struct {
	Url        string
	httpClient lib.HttpClient
}

func NewClient(url string, httpClient lib.HttpClient) *Client {
	return &Client{
		Url:        url,
		httpClient: httpClient,
	}
}

type Model struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Submitter string `json:"submitter"`
	Url       string `json:"url"`
}

type searchResponse struct {
	Matches int     `json:"matches"`
	Models  []Model `json:"models"`
}

// Search returns the models matching a BioModels search query.
func (c *Client) Search(ctx context.Context, query string) ([]Model, error) {
	u := lib.UrlWithQuery(lib.JoinUrl(c.Url, "search"), url.Values{
		"query":  {query},
		"format": {"json"},
	})
	b, err := services.Get(ctx, c.httpClient, serviceName, u, "application/json")
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err := json.Unmarshal(b, &response); err != nil {
		return nil, err
	}
	return response.Models, nil
}

// ModelsByUniProt returns the ids of models that reference a UniProt accession.
func (c *Client) ModelsByUniProt(ctx context.Context, accession string) ([]string, error) {
	models, err := c.Search(ctx, "uniprot:"+accession)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	return ids, nil
}
