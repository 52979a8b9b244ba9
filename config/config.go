package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type Config struct {
	LogLevel    slog.Level `mapstructure:"log_level"`
	CatalogFile string     `mapstructure:"catalog_file"`
	StorageDir  string     `mapstructure:"storage_dir"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	LogLevel=%q
	CatalogFile=%q
	StorageDir=%q
	`
	s := fmt.Sprintf(
		tamplate,
		c.LogLevel,
		c.CatalogFile,
		c.StorageDir,
	)
	fmt.Println(s)
}
