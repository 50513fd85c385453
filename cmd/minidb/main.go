package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"minidb/internal/engine"
	"minidb/internal/storage"
	"minidb/internal/storage/filestore"
	"minidb/internal/storage/memstore"
	"minidb/internal/ui"
)

func main() {
	var (
		dataDir = flag.String("data", "./data", "data directory path")
		inMem   = flag.Bool("mem", false, "use a throwaway in-memory store instead of the data directory")
	)
	flag.Parse()

	var store storage.Store
	if *inMem {
		store = memstore.New()
	} else {
		fs, err := filestore.New(*dataDir)
		if err != nil {
			log.Fatalf("open data directory: %v", err)
		}
		store = fs
	}

	eng, err := engine.Open(store)
	if err != nil {
		log.Fatalf("open engine: %v", err)
	}

	p := tea.NewProgram(ui.NewModel(eng), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run ui: %v", err)
	}
}
