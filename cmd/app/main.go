package main

import (
	// Go Internal Packages
	"log"
	"net/http"
	"os"

	// Local Packages
	"github.com/chris/merchant-settlement/pkg/acme"
	"github.com/chris/merchant-settlement/pkg/config"
	"github.com/chris/merchant-settlement/pkg/handlers"
	"github.com/chris/merchant-settlement/pkg/settlement"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"go.uber.org/zap"
)

// LoadConfig loads the default configuration and overrides it with the config
// file specified by the path defined in the config flag
func LoadConfig() *koanf.Koanf {
	configPathMsg := "Path to the application config file"
	configPath := kingpin.Flag("config", configPathMsg).Short('c').Default("config.yml").String()

	kingpin.Parse()
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if *configPath != "" {
		_ = k.Load(file.Provider(*configPath), yaml.Parser())
	}
	return k
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	k := LoadConfig()
	cfg := config.Config{}

	// Unmarshalling config into struct
	if err := k.Unmarshal("", &cfg); err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Environment overrides for deployment settings
	if v := os.Getenv("ACME_API_BASE_URL"); v != "" {
		cfg.Acme.BaseURL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.Server.Port = v
	}

	// Validate the config loaded
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "logfmt"
	_ = zcfg.Level.UnmarshalText([]byte(cfg.Logger.Level))
	zcfg.InitialFields = make(map[string]any)
	zcfg.InitialFields["host"], _ = os.Hostname()
	zcfg.InitialFields["service"] = cfg.Application
	zcfg.OutputPaths = []string{"stdout"}
	logger, _ := zcfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	// ACME API client and settlement service
	client := acme.NewClient(cfg.Acme, logger)
	settlementSvc := settlement.NewService(client, logger)

	// Create our handler and router
	handler := handlers.NewApiHandler(settlementSvc, client, logger)
	router := handlers.NewRouter(handler, logger)

	logger.Info("starting server",
		zap.String("port", cfg.Server.Port),
		zap.String("acme_base_url", cfg.Acme.BaseURL))

	// Start the server
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
