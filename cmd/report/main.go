package main

import (
	"flag"
	"fmt"
	"os"

	tm "nickandperla.net/turing_machine"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

var toolConfigPath *string = flag.String("config", "./config.toml", "The config file for turing_machine tools to use. Defaults to './config.toml'")
var programName *string = flag.String("program", "reverse", "The library machine to report on")

func main() {
	flag.Parse()

	conffile, err := os.Open(*toolConfigPath)

	if err != nil {
		log.Fatalf("Unable to load turing_machine config: %v", err)
	}

	confDecoder := toml.NewDecoder(conffile)
	var toolConfig tm.ToolConfig
	if _, err = confDecoder.Decode(&toolConfig); err != nil {
		log.Fatalf("Failed to unmarshal tool config: %v", err)
	}
	conffile.Close()

	persist, err := tm.NewPersistence(toolConfig.Persistence)
	if err != nil {
		log.Fatalf("Failed to create or initialize Persistence: %v", err)
	}
	defer persist.Shutdown()

	stats, err := persist.QueryRunStats(*programName)
	if err != nil {
		log.Fatalf("Failed to query run stats: %v", err)
	}

	fmt.Printf("Archived runs for [%s]\n", *programName)
	fmt.Printf("  total:        %d\n", stats.TotalRuns)
	fmt.Printf("  accepted:     %d\n", stats.AcceptedRuns)
	fmt.Printf("  stuck:        %d\n", stats.StuckRuns)
	fmt.Printf("  over budget:  %d\n", stats.LimitRuns)
	fmt.Printf("  check fails:  %d\n", stats.CheckFails)
	fmt.Printf("  avg steps:    %.1f\n", stats.AvgSteps)
	fmt.Printf("  max steps:    %d\n", stats.MaxSteps)
	fmt.Printf("  min distance: %d\n", stats.MinDistance)
}
