package pdb

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	mocks "gitlab.mdcatapult.io/informatics/software-engineering/biobrick/gen/mocks/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/testhelpers"
)

const (
	testDownloadUrl = "https://files.rcsb.org/download"
	testFastaUrl    = "https://www.rcsb.org/fasta/entry"
)

type pdbSuite struct {
	suite.Suite
	mockHttpClient *mocks.HttpClient
	client         *Client
}

func TestPdbSuite(t *testing.T) {
	suite.Run(t, new(pdbSuite))
}

func (s *pdbSuite) SetupTest() {
	s.mockHttpClient = &mocks.HttpClient{}
	s.client = NewClient(testDownloadUrl, testFastaUrl, s.mockHttpClient)
}

func (s *pdbSuite) TestFileUrl() {
	tests := []struct {
		name     string
		id       string
		format   Format
		expected string
	}{
		{name: "coordinates", id: "2uv0", format: PDB, expected: "https://files.rcsb.org/download/2UV0.pdb"},
		{name: "mmcif", id: "2UV0", format: CIF, expected: "https://files.rcsb.org/download/2UV0.cif"},
		{name: "pdbml", id: "2UV0", format: XML, expected: "https://files.rcsb.org/download/2UV0.xml"},
		{name: "sequence", id: "2UV0", format: Fasta, expected: "https://www.rcsb.org/fasta/entry/2UV0"},
	}
	for _, tt := range tests {
		s.T().Log(tt.name)
		actual, err := s.client.fileUrl(tt.id, tt.format)
		s.NoError(err, tt.name)
		s.Equal(tt.expected, actual, tt.name)
	}

	_, err := s.client.fileUrl("", PDB)
	s.Error(err)
	_, err = s.client.fileUrl("2UV0", Format("mol2"))
	s.Error(err)
}

func (s *pdbSuite) TestFile() {
	testhelpers.OnUrl(s.mockHttpClient, "https://files.rcsb.org/download/2UV0.pdb", testhelpers.Response(http.StatusOK, "HEADER    TRANSCRIPTION                           09-MAR-07   2UV0\n"))

	b, err := s.client.File(context.Background(), "2UV0", PDB)
	s.NoError(err)
	s.Contains(string(b), "2UV0")
	s.mockHttpClient.AssertExpectations(s.T())
}

func (s *pdbSuite) TestFileNotFound() {
	testhelpers.OnUrl(s.mockHttpClient, "https://www.rcsb.org/fasta/entry/0ZZZ", testhelpers.Response(http.StatusNotFound, ""))

	_, err := s.client.File(context.Background(), "0zzz", Fasta)
	s.Error(err)
}

func (s *pdbSuite) TestFileUnsupportedFormat() {
	_, err := s.client.File(context.Background(), "2UV0", Format("mol2"))
	s.Error(err)
	s.mockHttpClient.AssertNotCalled(s.T(), "Do", mock.Anything)
}

func (s *pdbSuite) TestParseFormat() {
	f, err := ParseFormat("FASTA")
	s.NoError(err)
	s.Equal(Fasta, f)

	_, err = ParseFormat("mol2")
	s.Error(err)
}
