package protein

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/metrics"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/biomodels"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/pdb"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/quickgo"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/uniprot"
)

// NewServices builds the upstream clients from config. Every request made by them is instrumented.
func NewServices(config lib.ServiceConfig, httpClient lib.HttpClient) Services {
	return Services{
		UniProt:   uniprot.NewClient(config.Uniprot.Url, metrics.Instrument("uniprot", httpClient)),
		PDB:       pdb.NewClient(config.Pdb.DownloadUrl, config.Pdb.FastaUrl, metrics.Instrument("pdb", httpClient)),
		QuickGO:   quickgo.NewClient(config.Quickgo.Url, config.Quickgo.Limit, metrics.Instrument("quickgo", httpClient)),
		BioModels: biomodels.NewClient(config.Biomodels.Url, metrics.Instrument("biomodels", httpClient)),
	}
}
