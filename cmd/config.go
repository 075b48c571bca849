package main

import (
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Config struct {
	CorpusPath       string      `yaml:"corpus_path"`
	HTTPAddr         string      `yaml:"http_addr"`
	Workers          int         `yaml:"workers"`
	FilterShortWords bool        `yaml:"filter_short_words"`
	MinWordLength    int         `yaml:"min_word_length"`
	Redis            RedisConfig `yaml:"redis"`
}

func defaultConfig() Config {
	return Config{
		CorpusPath:    "aspell.txt",
		HTTPAddr:      ":8080",
		Workers:       4,
		MinWordLength: 2,
	}
}

// loadConfig layers the yaml file (if present) over the defaults and
// environment variables over both. A missing file is fine; a file that
// exists but does not parse is not.
func loadConfig(path string) Config {
	cfg := defaultConfig()
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			slog.Error("parsing config", "path", path, "error", err)
			os.Exit(1)
		}
	}
	cfg.CorpusPath = getenv("CORPUS_PATH", cfg.CorpusPath)
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.Redis.Addr = getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)
	return cfg
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
