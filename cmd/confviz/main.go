package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"confviz/internal/config"
	"confviz/internal/crawler"
	"confviz/internal/pipeline"
	"confviz/internal/render"
	"confviz/internal/storage"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "confviz",
		Short: "Render configuration relationship graphs from YAML, INI, properties and Jinja files",
	}
	configPath string
	dbPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "confviz.yaml", "Path to the confviz config file")

	scanCmd.Flags().StringVarP(&dbPath, "db", "d", "", "Snapshot database path (overrides config)")
	scanCmd.Flags().String("json", "", "Also export the graph as JSON to this path")
	statsCmd.Flags().StringVarP(&dbPath, "db", "d", "", "Snapshot database path (overrides config)")

	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(staticCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statsCmd)
}

// setup loads configuration and wires the scan pipeline.
func setup() (*config.Config, *pipeline.Pipeline, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cr, err := crawler.NewCrawler(logger, cfg.Scan.Ignore)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pipeline.New(cr, logger), nil
}

func snapshotPath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DB
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive <dir> <out.html>",
	Short: "Scan a directory and render an interactive HTML graph",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, p, err := setup()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}

		g, err := p.BuildGraph(args[0])
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		r := render.NewInteractiveRenderer(args[1], cfg)
		if err := r.Render(g); err != nil {
			log.Fatalf("Render failed: %v", err)
		}
		fmt.Printf("Interactive graph written to %s\n", args[1])
	},
}

var staticCmd = &cobra.Command{
	Use:   "static <dir> <out.svg> <out.png>",
	Short: "Scan a directory and render static SVG and PNG graphs",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, p, err := setup()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}

		g, err := p.BuildGraph(args[0])
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		r := render.NewStaticRenderer(args[1], args[2], cfg.Render.Layout)
		if err := r.Render(g); err != nil {
			log.Fatalf("Render failed: %v", err)
		}
		fmt.Printf("Static graphs written to %s and %s\n", args[1], args[2])
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan a directory and save a graph snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, p, err := setup()
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}

		g, err := p.BuildGraph(args[0])
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		store, err := storage.NewSQLiteStore(snapshotPath(cfg))
		if err != nil {
			log.Fatalf("Failed to open snapshot database: %v", err)
		}
		defer store.Close()

		if err := store.SaveGraph(context.Background(), g); err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}

		if jsonPath, _ := cmd.Flags().GetString("json"); jsonPath != "" {
			if err := p.SaveGraph(g, jsonPath); err != nil {
				log.Fatalf("Failed to export JSON: %v", err)
			}
		}

		stats := g.Stats()
		fmt.Printf("Snapshot saved to %s (%d nodes, %d edges)\n", snapshotPath(cfg), stats.Nodes, stats.Edges)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print node and edge counts from the saved snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}

		store, err := storage.NewSQLiteStore(snapshotPath(cfg))
		if err != nil {
			log.Fatalf("Failed to open snapshot database: %v", err)
		}
		defer store.Close()

		g, err := store.LoadGraph(context.Background())
		if err != nil {
			log.Fatalf("Failed to load snapshot: %v", err)
		}

		stats := g.Stats()
		fmt.Printf("Nodes: %d\n", stats.Nodes)
		fmt.Printf("Edges: %d\n", stats.Edges)
		for nodeType, count := range stats.NodesByType {
			fmt.Printf("  %s: %d\n", nodeType, count)
		}
	},
}
