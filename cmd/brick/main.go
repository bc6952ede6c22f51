package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/metrics"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/protein"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/registry"
)

// config structure
type brickConfig struct {
	LogLevel          string `mapstructure:"log_level"`
	lib.ServiceConfig `mapstructure:",squash"`
}

var config brickConfig

var opts options

func init() {
	pflag.IntVar(&opts.table, "table", 1, "NCBI translation table used by the protein command.")
	pflag.BoolVar(&opts.toStop, "to-stop", false, "Stop the protein command at the first stop codon.")
	pflag.StringVar(&opts.format, "format", "", "Output format for the uniprot and structures commands.")
	pflag.BoolVar(&opts.count, "count", false, "Print the number of structures instead of their ids.")
	pflag.IntVar(&opts.detail, "detail", 0, "Print the structure with this 1-based index.")
	pflag.IntVar(&opts.term, "term", 0, "0-based index of the GO term the models command searches by.")
	pflag.IntVar(&opts.limit, "limit", 100, "Maximum number of proteins the models command searches.")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: brick [flags] <%s> <part-id> [path]\n", commandNames())
		pflag.PrintDefaults()
	}
}

func initConfig() {
	defaults := lib.DefaultServiceConfig()
	defaults["log_level"] = "warn"

	err := lib.InitializeConfig("./config/brick.yml", defaults, &config)
	if err != nil {
		panic(err)
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	initConfig()

	if pflag.NArg() < 2 {
		pflag.Usage()
		os.Exit(2)
	}
	opts.command = pflag.Arg(0)
	opts.id = pflag.Arg(1)
	opts.args = pflag.Args()[2:]

	httpClient := lib.NewHttpClient(config.Http.Timeout)
	c := cli{
		registry: registry.NewClient(config.Registry.Url, metrics.Instrument("registry", httpClient)),
		services: protein.NewServices(config.ServiceConfig, httpClient),
		out:      os.Stdout,
	}

	if err := c.run(context.Background(), opts); err != nil {
		log.Fatal().Err(err).Str("command", opts.command).Str("part", opts.id).Send()
	}
}
