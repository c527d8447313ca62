package main

import (
	"flag"
	"log"
	"strings"

	"gigbook/config"
	"gigbook/database"
	"gigbook/middleware"
	"gigbook/router"
)

// @title GigBook API
// @version 1.0
// @description Income and invoice tracking for freelancers: work entries, invoice status, dashboard KPIs, client dedup and calendar import.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to an external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to an external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&showVersion, "v", false, "print version and exit (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("GigBook v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loading config failed: %v", err)
	}

	// command line port wins over config
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port set from command line: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  GigBook is up")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API:      http://localhost%s/api/v1/", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
