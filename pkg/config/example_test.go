package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/keremsonmez/clippatch/pkg/config"
)

func ExampleLoad_yaml() {
	ctx := context.Background()
	// Create a temporary YAML config file
	configYAML := `
patterns:
  - qua_*
  - PLYR_mikey
mode: placeholder
placeholder: CLEANED
`

	tmpDir := os.TempDir()
	configPath := filepath.Join(tmpDir, ".clippatch.yaml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	// Load the config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Println(cfg)
	fmt.Printf("Placeholder: %s\n", cfg.Placeholder)

	// Output:
	// 2 pattern(s), mode=placeholder, case_insensitive=false
	// Placeholder: CLEANED
}

func ExampleLoad_hcl() {
	ctx := context.Background()
	// Create a temporary HCL config file
	configHCL := `
patterns         = ["qua_*"]
case_insensitive = true

output {
  in_place = true
}
`

	tmpDir := os.TempDir()
	configPath := filepath.Join(tmpDir, ".clippatch.hcl")
	if err := os.WriteFile(configPath, []byte(configHCL), 0644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	// Load the config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Println(cfg)
	fmt.Printf("In place: %v\n", cfg.Output.InPlace)

	// Output:
	// 1 pattern(s), mode=null, case_insensitive=true
	// In place: true
}

func ExampleConfig_Validate() {
	// An empty config is not runnable
	cfg := &config.Config{}

	err := cfg.Validate()
	fmt.Printf("Validation error: %v\n", err)

	// Patterns usually arrive from flags after loading
	cfg.Patterns = []string{"  qua_*  ", ""}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Patterns: %v\n", cfg.Patterns)
	fmt.Printf("Mode: %s\n", cfg.Mode)
	fmt.Printf("Placeholder: %s\n", cfg.Placeholder)

	// Output:
	// Validation error: at least one pattern is required
	// Patterns: [qua_*]
	// Mode: null
	// Placeholder: REMOVED
}
