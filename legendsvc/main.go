package main

import (
	"flag"
	"log"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	service := NewService(cfg)
	if err := service.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
