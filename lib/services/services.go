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

package services

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
)

// maxErrorBody caps how much of a failed response body is kept on a StatusError.
const maxErrorBody = 512

// StatusError is returned when an upstream service answers with anything but 200.
type StatusError struct {
	Service    string
	Url        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d for %s", e.Service, e.StatusCode, e.Url)
}

// Get performs a GET against url and returns the whole body of a 200 response.
// accept may be empty.
func Get(ctx context.Context, client lib.HttpClient, service, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	log.Debug().Str("service", service).Str("url", url).Msg("upstream request")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Service:    service,
			Url:        url,
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	return ioutil.ReadAll(resp.Body)
}
