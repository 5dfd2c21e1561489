// Package config 定义应用配置
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置文件结构体
type Config struct {
	Version string `yaml:"version"`
	Log     struct {
		Level  string   `yaml:"level"`
		Writer []string `yaml:"writer"`
	} `yaml:"log"`
	Rules struct {
		Path string `yaml:"path"`
	} `yaml:"rules"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	cfg := &Config{Version: "1.0.0"}
	cfg.Log.Level = "info"
	cfg.Log.Writer = []string{"console"}
	// 空表示使用内置默认规则集
	cfg.Rules.Path = ""
	return cfg
}

// Load 从 yaml 文件加载配置，path 为空时返回默认配置
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
