// Package config loads seqkit configuration.
//
// It uses Viper to read a YAML file found on a search path, loads .env
// files with godotenv, and overlays SEQKIT_* environment variables:
// SEQKIT_SEQUENCE_SHOW_LIMIT=20 sets sequence.show_limit.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("seqkit.yml"))
package config
