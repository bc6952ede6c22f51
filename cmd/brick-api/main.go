package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/metrics"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/protein"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/registry"
)

// config structure
type brickAPIConfig struct {
	LogLevel string `mapstructure:"log_level"`
	Server   struct {
		HttpPort int `mapstructure:"http_port"`
	}
	lib.ServiceConfig `mapstructure:",squash"`
}

var config brickAPIConfig

func initConfig() {
	// Set default config values
	defaults := lib.DefaultServiceConfig()
	defaults["log_level"] = "info"
	defaults["server"] = map[string]interface{}{
		"http_port": 8080,
	}

	err := lib.InitializeConfig("./config/brick-api.yml", defaults, &config)
	if err != nil {
		panic(err)
	}
}

func main() {
	initConfig()
	go lib.HandleInterrupt()

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatal().Err(err).Send()
	}

	httpClient := lib.NewHttpClient(config.Http.Timeout)
	c := controller{
		registry: registry.NewClient(config.Registry.Url, metrics.Instrument("registry", httpClient)),
		services: protein.NewServices(config.ServiceConfig, httpClient),
	}
	s := server{controller: c}

	r := gin.New()
	r.Use(requestId, gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.Recovery(), cors.Default())
	s.RegisterRoutes(r)

	log.Info().Int("port", config.Server.HttpPort).Msg("serving")
	if err := r.Run(fmt.Sprintf(":%d", config.Server.HttpPort)); err != nil {
		log.Fatal().Err(err).Send()
	}
}
