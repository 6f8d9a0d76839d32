package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env-default:"local"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"9200"`
	} `yaml:"listen"`
	Backend struct {
		BaseURL      string `yaml:"base_url" env-default:""`
		TokenURL     string `yaml:"token_url" env-default:""`
		ClientID     string `yaml:"client_id" env-default:""`
		ClientSecret string `yaml:"client_secret" env-default:""`
	} `yaml:"backend"`
	Auth struct {
		BaseURL string `yaml:"base_url" env-default:""`
	} `yaml:"auth"`
	Chat struct {
		ListPollSeconds       int  `yaml:"list_poll_seconds" env-default:"10"`
		ThreadPollSeconds     int  `yaml:"thread_poll_seconds" env-default:"3"`
		VendorCustomerEnabled bool `yaml:"vendor_customer_enabled" env-default:"false"`
	} `yaml:"chat"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
