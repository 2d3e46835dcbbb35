// Command genconfig writes the effective configuration (defaults, then an
// optional CONFIG_FILE, then the environment) to config.<env>.yaml so it can
// be reviewed or pinned with CONFIG_FILE.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NomadCrew/feedback-service/config"
	"github.com/NomadCrew/feedback-service/logger"
)

func main() {
	outDir := flag.String("out", "config", "directory to write the file to")
	withSecrets := flag.Bool("secrets", false, "include passwords in the output")
	flag.Parse()

	logger.InitLogger()
	defer func() { _ = logger.Close() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := config.MarshalYAML(cfg, *withSecrets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	filename := filepath.Join(*outDir, fmt.Sprintf("config.%s.yaml", cfg.Server.Environment))
	if err := os.WriteFile(filename, data, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s\n", filename)
}
