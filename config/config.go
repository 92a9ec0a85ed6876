package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Api            Api     `mapstructure:"api"`
	DB             DB      `mapstructure:"db"`
	Log            Log     `mapstructure:"log"`
	Market         Market  `mapstructure:"market"`
	ChainSupported []Chain `mapstructure:"chain_supported"`
}

type Api struct {
	Port string `mapstructure:"port"`
}

type DB struct {
	DSN string `mapstructure:"dsn"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// Market controls the scheduled CoinGecko refresh of seeded campaigns.
type Market struct {
	Enable bool   `mapstructure:"enable"`
	Cron   string `mapstructure:"cron"`
}

type Chain struct {
	ID      string `mapstructure:"id"`
	Name    string `mapstructure:"name"`
	Symbol  string `mapstructure:"symbol"`
	ChainID int    `mapstructure:"chain_id"`
}

func UnmarshalConfig(configFilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configFilePath)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "viper.ReadInConfig failed")
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "viper.Unmarshal failed")
	}

	// .env / environment wins over the file for the DSN
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		c.DB.DSN = dsn
	}
	return c, nil
}
