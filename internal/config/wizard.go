package config

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .codetune.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to codetune! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Base model selection.
	modelPrompt := promptui.Select{
		Label: "Select base model to fine-tune",
		Items: BaseModels,
	}
	_, model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	cfg.Model = model

	// 2. Dataset CSV path.
	csvPrompt := promptui.Prompt{
		Label:   "CSV dataset path",
		Default: cfg.CSVPath,
	}
	csvPath, err := csvPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("csv path: %w", err)
	}
	cfg.CSVPath = csvPath

	// 3. JSONL output path.
	jsonlPrompt := promptui.Prompt{
		Label:   "JSONL output path",
		Default: cfg.JSONLPath,
	}
	jsonlPath, err := jsonlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("jsonl path: %w", err)
	}
	cfg.JSONLPath = jsonlPath

	if err := cfg.Save(".codetune.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration written to .codetune.yml")
	fmt.Printf("Set %s in your environment (or a .env file) before uploading.\n", APIKeyEnvVar)

	return cfg, nil
}
