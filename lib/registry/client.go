/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package registry

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
)

// Client fetches part records from the iGEM registry xml endpoint.
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

func (c *Client) partUrl(id string) string {
	return lib.UrlWithQuery(c.Url, url.Values{"part": {id}})
}

// Fetch retrieves and parses the record for id. It fails with an *UnavailableError if the registry cannot be
// reached and with a *RegistryError if the registry reports the part as unknown.
func (c *Client) Fetch(ctx context.Context, id string) (*Part, error) {
	u := c.partUrl(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Url: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UnavailableError{Url: u, StatusCode: resp.StatusCode}
	}

	doc, err := Decode(resp.Body)
	if err != nil {
		return nil, err
	}

	if msg, ok := doc.Error(); ok {
		log.Warn().Str("part", id).Str("error", msg).Msg("registry returned an error")
		return nil, &RegistryError{ID: id, Message: msg}
	}

	log.Info().Str("part", id).Msg("part successfully loaded")
	return NewPart(id, doc), nil
}
