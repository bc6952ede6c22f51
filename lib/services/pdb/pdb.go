package pdb

import (
	"context"
	"fmt"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services"
)

const serviceName = "pdb"

// Format is a structure file representation served by RCSB.
type Format string

const (
	Fasta Format = "fasta"
	PDB   Format = "pdb"
	CIF   Format = "cif"
	XML   Format = "xml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Fasta, PDB, CIF, XML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported structure format %q - must be fasta, pdb, cif or xml", s)
	}
}

// Client retrieves structure files. Coordinates and markup come from DownloadUrl, sequences from FastaUrl.
type Client struct {
	DownloadUrl string
	FastaUrl    string
	httpClient  lib.HttpClient
}

func NewClient(downloadUrl, fastaUrl string, httpClient lib.HttpClient) *Client {
	return &Client{
		DownloadUrl: downloadUrl,
		FastaUrl:    fastaUrl,
		httpClient:  httpClient,
	}
}

func (c *Client) fileUrl(id string, format Format) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return "", fmt.Errorf("empty pdb id")
	}
	switch format {
	case Fasta:
		return lib.JoinUrl(c.FastaUrl, id), nil
	case PDB, CIF, XML:
		return lib.JoinUrl(c.DownloadUrl, fmt.Sprintf("%s.%s", id, format)), nil
	default:
		return "", fmt.Errorf("unsupported structure format %q", format)
	}
}

// File returns the content of entry id in format.
func (c *Client) File(ctx context.Context, id string, format Format) ([]byte, error) {
	u, err := c.fileUrl(id, format)
	if err != nil {
		return nil, err
	}
	return services.Get(ctx, c.httpClient, serviceName, u, "")
}
