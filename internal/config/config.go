package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultXMin      = 0.0
	DefaultXMax      = 10.0
	DefaultSteps     = 200
	DefaultAmplitude = 1.0
	DefaultStates    = 5
	DefaultMethod    = "fd"
)

type Config struct {
	Shape     string  `yaml:"shape"`
	Method    string  `yaml:"method"`
	XMin      float64 `yaml:"x_min"`
	XMax      float64 `yaml:"x_max"`
	Steps     int     `yaml:"steps"`
	Amplitude float64 `yaml:"amplitude"`
	States    int     `yaml:"states"`
}

func DefaultConfig() *Config {
	return &Config{
		Shape:     "square",
		Method:    DefaultMethod,
		XMin:      DefaultXMin,
		XMax:      DefaultXMax,
		Steps:     DefaultSteps,
		Amplitude: DefaultAmplitude,
		States:    DefaultStates,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
