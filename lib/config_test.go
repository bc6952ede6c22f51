package lib

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

type config struct {
	ConfigKey1 string
	ConfigKey2 struct {
		ConfigKey3 string
	}
	KeyNotInConfigMap string
}

var (
	configValue1   = "configValue1"
	configValue3   = "configValue3"
	configFileName string
)

func TestMain(m *testing.M) {
	configMap := map[string]interface{}{
		"configkey1": configValue1,
		"configkey2": map[string]interface{}{
			"configkey3": configValue3,
		},
	}

	filename, err := createConfigFile(configMap, ".", "*.yml")
	if err != nil {
		panic(err)
	}
	configFileName = filename

	code := m.Run()
	os.Remove(filename)
	os.Exit(code)
}

func TestInitializeConfigFromPath(t *testing.T) {
	resetFlags()

	var parsedConfig config
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, configValue1, parsedConfig.ConfigKey1)
	assert.Equal(t, configValue3, parsedConfig.ConfigKey2.ConfigKey3)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	resetFlags()

	overrideValue := "anewvalue"
	os.Setenv("CONFIGKEY1", overrideValue)
	os.Setenv("CONFIGKEY2_CONFIGKEY3", overrideValue)
	os.Setenv("KEYNOTINCONFIGMAP", overrideValue)
	defer func() {
		os.Unsetenv("CONFIGKEY1")
		os.Unsetenv("CONFIGKEY2_CONFIGKEY3")
		os.Unsetenv("KEYNOTINCONFIGMAP")
	}()

	var parsedConfig config
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, overrideValue, parsedConfig.ConfigKey1)
	assert.Equal(t, overrideValue, parsedConfig.ConfigKey2.ConfigKey3)

	// If an env var does not exist in the config map, viper will not parse it
	assert.Equal(t, "", parsedConfig.KeyNotInConfigMap)
}

func TestInitializeConfigServiceDefaults(t *testing.T) {
	resetFlags()

	overrideValue := "http://localhost:9000"
	os.Setenv("UNIPROT_URL", overrideValue)
	defer os.Unsetenv("UNIPROT_URL")

	var parsedConfig ServiceConfig
	err := InitializeConfig(configFileName, DefaultServiceConfig(), &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, "http://parts.igem.org/cgi/xml/part.cgi", parsedConfig.Registry.Url)
	assert.Equal(t, overrideValue, parsedConfig.Uniprot.Url)
	assert.Equal(t, "https://files.rcsb.org/download", parsedConfig.Pdb.DownloadUrl)
	assert.Equal(t, 100, parsedConfig.Quickgo.Limit)
	assert.Equal(t, 30*time.Second, parsedConfig.Http.Timeout)
}

func TestInitializeConfigWithFlag(t *testing.T) {
	resetFlags()

	overrideConfigPath := "*.yml"
	overrideValue := "this is overridden!"
	overrideConfigMap := map[string]interface{}{
		"configkey1": overrideValue,
	}

	filename, err := createConfigFile(overrideConfigMap, ".", overrideConfigPath)
	if err != nil {
		panic(err)
	}
	defer os.Remove(filename)

	pflag.String(configFlag, "", "The config file path.")
	assert.NoError(t, pflag.Set(configFlag, filename))

	var parsedConfig config
	err = InitializeConfig("does-not-exist.yml", map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, overrideValue, parsedConfig.ConfigKey1)
}

func createConfigFile(configMap map[string]interface{}, path, name string) (fileName string, err error) {
	file, err := ioutil.TempFile(path, name)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(&configMap)
	if err != nil {
		panic(err)
	}

	if err := ioutil.WriteFile(file.Name(), data, 0600); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}
