// Package main - entry point for the quantify HTTP server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"quantify/api"
	"quantify/core/locale"
	"quantify/internal/config"
	"quantify/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatal(err)
	}

	// Abbreviation overrides apply process-wide, CLI and API alike
	registry := locale.Default()
	for _, path := range cfg.Abbreviations {
		if err := registry.LoadHCLFile(path); err != nil {
			log.Fatal(err)
		}
	}

	apiServer := api.NewServerWithRegistry(version, registry)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("quantify server v%s\n", version)
	fmt.Printf("  API: http://localhost%s/api\n", *addr)

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
