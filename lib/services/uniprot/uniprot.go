package uniprot

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services"
)

const serviceName = "uniprot"

// maxPageSize is the largest page the UniProt search endpoint accepts.
const maxPageSize = 500

var ErrInvalidLimit = errors.New("search limit must be positive")

// Format is an entry representation offered by the UniProt REST api.
type Format string

const (
	Text  Format = "txt"
	XML   Format = "xml"
	RDF   Format = "rdf"
	GFF   Format = "gff"
	Fasta Format = "fasta"
)

var formats = map[Format]struct{}{
	Text:  {},
	XML:   {},
	RDF:   {},
	GFF:   {},
	Fasta: {},
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if _, ok := formats[f]; !ok {
		return "", fmt.Errorf("unsupported uniprot format %q - must be txt, xml, rdf, gff or fasta", s)
	}
	return f, nil
}

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

// Entry returns the UniProtKB entry for accession in the requested format, verbatim.
func (c *Client) Entry(ctx context.Context, accession string, format Format) ([]byte, error) {
	if _, ok := formats[format]; !ok {
		return nil, fmt.Errorf("unsupported uniprot format %q", format)
	}
	u := lib.JoinUrl(c.Url, "uniprotkb", fmt.Sprintf("%s.%s", accession, format))
	return services.Get(ctx, c.httpClient, serviceName, u, "")
}

type crossReferenceResponse struct {
	PrimaryAccession         string `json:"primaryAccession"`
	UniProtKBCrossReferences []struct {
		Database string `json:"database"`
		ID       string `json:"id"`
	} `json:"uniProtKBCrossReferences"`
}

// PDBCrossReferences maps accession to the PDB entries that contain it, in the order UniProt lists them.
func (c *Client) PDBCrossReferences(ctx context.Context, accession string) ([]string, error) {
	u := lib.UrlWithQuery(lib.JoinUrl(c.Url, "uniprotkb", accession), url.Values{
		"fields": {"xref_pdb"},
		"format": {"json"},
	})
	b, err := services.Get(ctx, c.httpClient, serviceName, u, "application/json")
	if err != nil {
		return nil, err
	}

	var response crossReferenceResponse
	if err := json.Unmarshal(b, &response); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(response.UniProtKBCrossReferences))
	for _, xref := range response.UniProtKBCrossReferences {
		if xref.Database == "PDB" {
			ids = append(ids, xref.ID)
		}
	}
	return ids, nil
}

// Search returns at most limit accessions matching query, in ranking order.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLimit, limit)
	}
	size := limit
	if size > maxPageSize {
		log.Debug().Int("limit", limit).Int("size", maxPageSize).Msg("search limit exceeds uniprot page size")
		size = maxPageSize
	}
	u := lib.UrlWithQuery(lib.JoinUrl(c.Url, "uniprotkb", "search"), url.Values{
		"query":  {query},
		"size":   {strconv.Itoa(size)},
		"format": {"list"},
	})
	b, err := services.Get(ctx, c.httpClient, serviceName, u, "text/plain")
	if err != nil {
		return nil, err
	}

	var accessions []string
	scn := bufio.NewScanner(bytes.NewReader(b))
	for scn.Scan() {
		line := strings.TrimSpace(scn.Text())
		if line == "" {
			continue
		}
		accessions = append(accessions, line)
		if len(accessions) == limit {
			break
		}
	}
	return accessions, scn.Err()
}

// GOTermQuery builds the search query for proteins annotated with a GO id such as "GO:0003677".
func GOTermQuery(goID string) string {
	return "go:" + strings.TrimPrefix(strings.ToUpper(goID), "GO:")
}
