// Package config loads typed configuration structs from environment
// variables, with optional .env support for local development.
//
// Each struct type is parsed once per process and cached, so packages can
// call Load for their own config independently without coordinating:
//
//	var cfg generation.Config
//	config.MustLoad(&cfg)
package config
