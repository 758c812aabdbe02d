package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"bedges/pkg/config"
	"bedges/pkg/pipeline"
)

func main() {
	// Parse command line arguments
	inputPath := flag.String("input", "", "Image file to extract edges from (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	configPath := flag.String("config", "bedges.yaml", "YAML configuration file (defaults are used if it does not exist)")
	flag.String("output", "", "Directory for the feature planes (overrides config)")
	flag.Int("k", 6, "Number of the 6 contrast comparisons that must hold (0-6)")
	flag.String("inflate", "box", "Inflation mode: box, along or none")
	flag.Int("radius", 1, "Inflation radius")
	flag.Bool("lastaxis", false, "Put the direction axis last")
	flag.Int("cores", 0, "Number of channels processed concurrently (default: from config)")
	flag.Bool("save-intermediary", false, "Save input channels and uninflated features")
	flag.String("intermediary-dir", "", "Directory to save intermediary results (overrides config)")
	flag.Bool("verbose", true, "Print the progress of each step (overrides config)")
	writeConfig := flag.String("write-config", "", "Write the default configuration to this path and exit")
	flag.Parse()

	if *writeConfig != "" {
		if err := config.CreateDefaultConfigFile(*writeConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *writeConfig)
		return
	}

	// Validate inputs
	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags given explicitly win over the config file
	if err := cfg.ApplyFlags(flag.CommandLine); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	opts, err := cfg.FeatureOptions()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	params := &pipeline.Params{
		InputPath:               *inputPath,
		OutputDir:               cfg.Output.Dir,
		NumCores:                cfg.Processing.NumCores,
		Options:                 opts,
		SaveIntermediaryResults: cfg.Output.SaveIntermediaryResults,
		IntermediaryDir:         cfg.Output.IntermediaryDir,
		Verbose:                 cfg.Output.Verbose,
	}

	processor := pipeline.NewProcessor(params)

	startTime := time.Now()
	if err := processor.Process(); err != nil {
		log.Fatalf("Edge extraction failed: %v", err)
	}
	processingTime := time.Since(startTime)

	vol := processor.GetVolume()
	fmt.Printf("\nExtracted features with shape %v in %.3f seconds\n", vol.Shape(), processingTime.Seconds())
	if params.OutputDir != "" {
		fmt.Printf("Feature planes saved to: %s\n\n", params.OutputDir)
	}

	if err := processor.GetMetrics().Write(os.Stdout); err != nil {
		log.Fatalf("Failed to write metrics: %v", err)
	}

	if params.SaveIntermediaryResults {
		fmt.Println("\nIntermediary results saved to:")
		fmt.Printf("%s\n", params.IntermediaryDir)
		fmt.Println("- 01_input_channels: Decoded input channels")
		fmt.Println("- 02_raw_edges: Features before inflation")
	}
}
