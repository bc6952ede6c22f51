package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	mocks "gitlab.mdcatapult.io/informatics/software-engineering/biobrick/gen/mocks/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/protein"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/registry"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/testhelpers"
)

const (
	resources   = "../../resources/"
	registryUrl = "http://parts.igem.org/cgi/xml/part.cgi"
)

type cliSuite struct {
	suite.Suite
	mockHttpClient *mocks.HttpClient
	out            *bytes.Buffer
	cli            cli
}

func TestCliSuite(t *testing.T) {
	suite.Run(t, new(cliSuite))
}

func (s *cliSuite) SetupTest() {
	s.mockHttpClient = &mocks.HttpClient{}
	s.out = &bytes.Buffer{}

	var config lib.ServiceConfig
	config.Uniprot.Url = "https://rest.uniprot.org"
	config.Pdb.DownloadUrl = "https://files.rcsb.org/download"
	config.Pdb.FastaUrl = "https://www.rcsb.org/fasta/entry"
	config.Quickgo.Url = "https://www.ebi.ac.uk/QuickGO/services"
	config.Biomodels.Url = "https://www.ebi.ac.uk/biomodels"

	s.cli = cli{
		registry: registry.NewClient(registryUrl, s.mockHttpClient),
		services: protein.NewServices(config, s.mockHttpClient),
		out:      s.out,
	}
}

func (s *cliSuite) onPart(id string) {
	testhelpers.OnUrl(s.mockHttpClient, registryUrl+"?part="+id, testhelpers.FileResponse(resources+id+".xml"))
}

func (s *cliSuite) TestUnknownCommand() {
	err := s.cli.run(context.Background(), options{command: "delete", id: "BBa_C0079"})
	s.Error(err)
	s.mockHttpClient.AssertNotCalled(s.T(), "Do", mock.Anything)
}

func (s *cliSuite) TestAttr() {
	s.onPart("BBa_C0079")

	err := s.cli.run(context.Background(), options{command: "attr", id: "BBa_C0079", args: []string{"part_type"}})
	s.NoError(err)
	s.Equal("Coding\n", s.out.String())
}

func (s *cliSuite) TestAttrAbsent() {
	s.onPart("BBa_B0034")

	err := s.cli.run(context.Background(), options{command: "attr", id: "BBa_B0034", args: []string{"part_nickname"}})
	s.NoError(err)
	s.Equal("No part_nickname node present in XML.\n", s.out.String())
}

func (s *cliSuite) TestProtein() {
	s.onPart("BBa_C0079")

	err := s.cli.run(context.Background(), options{command: "protein", id: "BBa_C0079", table: 11})
	s.NoError(err)
	s.Equal("MALVDGFLELERSSGKLEWS*\n", s.out.String())
}

func (s *cliSuite) TestProteinToStop() {
	s.onPart("BBa_C0079")

	err := s.cli.run(context.Background(), options{command: "protein", id: "BBa_C0079", table: 1, toStop: true})
	s.NoError(err)
	s.Equal("MALVDGFLELERSSGKLEWS\n", s.out.String())
}

func (s *cliSuite) TestStructureCount() {
	s.onPart("BBa_C0079")
	testhelpers.OnUrl(s.mockHttpClient, "https://rest.uniprot.org/uniprotkb/P25084?", testhelpers.FileResponse(resources+"uniprot-P25084-xref.json"))

	err := s.cli.run(context.Background(), options{command: "structures", id: "BBa_C0079", count: true})
	s.NoError(err)
	s.Equal("4\n", s.out.String())
}

func (s *cliSuite) TestStructuresWithoutUniProtID() {
	s.onPart("BBa_B0034")

	err := s.cli.run(context.Background(), options{command: "structures", id: "BBa_B0034"})
	s.NoError(err)
	s.Equal("No structures yet ascertained.\n", s.out.String())
}

func (s *cliSuite) TestPartNotFound() {
	s.onPart("not_found")

	err := s.cli.run(context.Background(), options{command: "overview", id: "not_found"})
	s.True(errors.Is(err, registry.ErrPartNotFound))
	s.Empty(s.out.String())
}

func (s *cliSuite) TestUnavailable() {
	testhelpers.OnUrl(s.mockHttpClient, registryUrl, testhelpers.Response(http.StatusBadGateway, ""))

	err := s.cli.run(context.Background(), options{command: "seq", id: "BBa_C0079"})
	s.True(errors.Is(err, registry.ErrUnavailable))
}
