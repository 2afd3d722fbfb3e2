package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/sentgen/pkg/sentgen/config"
	"github.com/cognicore/sentgen/pkg/sentgen/pipeline"
	"github.com/cognicore/sentgen/pkg/sentgen/producer"
)

func main() {
	configPath := flag.String("config", "pipeline.yaml", "pipeline configuration file")
	stageName := flag.String("stage", "", "run only the named stage")
	force := flag.Bool("force", false, "run stages even when their outputs are fresh")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if len(cfg.Stages) == 0 {
		log.Fatal("no stages configured")
	}

	stages, err := buildStages(cfg, *stageName)
	if err != nil {
		log.Fatal(err)
	}

	runner := &pipeline.Runner{Force: *force}
	if err := runner.Run(context.Background(), stages); err != nil {
		log.Fatal(err)
	}
	log.Printf("done: %d stage(s)", len(stages))
}

func buildStages(cfg *config.Pipeline, only string) ([]pipeline.Stage, error) {
	var stages []pipeline.Stage
	for _, sc := range cfg.Stages {
		if only != "" && sc.Name != only {
			continue
		}
		st, err := pipeline.NewStage(sc, producer.Deps{})
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("no stage named %q", only)
	}
	return stages, nil
}
