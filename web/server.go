//go:build !wasm

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tinywasm/barchart"
	"github.com/tinywasm/barchart/raster"
	"github.com/tinywasm/barchart/web/api"
)

var (
	port      string
	publicDir string
	dataFile  string

	renderWidth  int
	renderHeight int
	renderOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the responsive bar chart",
		Long: `server serves the wasm bar chart page, the JSON data it draws
and server side SVG/PNG snapshots of the same chart.`,
		Args: cobra.NoArgs,
		RunE: serve,
	}
	// Priority: flag > env var > default
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "JSON file with [{\"name\",\"count\"}] records (default: mock data)")
	rootCmd.Flags().StringVar(&port, "port", "", "Port to listen on")
	rootCmd.Flags().StringVar(&publicDir, "public-dir", "", "Directory containing static files")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write the chart to an .svg or .png file",
		Args:  cobra.NoArgs,
		RunE:  render,
	}
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "svg width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "svg height in pixels")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "chart.svg", "output file (.svg or .png)")
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (api.Config, error) {
	cfg, err := api.LoadConfig()
	if err != nil {
		return cfg, err
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Port = port
	}
	if f := cmd.Flags().Lookup("public-dir"); f != nil && f.Changed {
		cfg.PublicDir = publicDir
	}
	if cmd.Flags().Changed("data") {
		cfg.DataFile = dataFile
	}
	return cfg, nil
}

func dataSource(cfg api.Config) barchart.DataSource {
	if cfg.DataFile == "" {
		return barchart.StaticSource(barchart.MockData())
	}
	return barchart.FileSource(cfg.DataFile)
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Make it absolute if it's relative
	absPublicDir, err := filepath.Abs(cfg.PublicDir)
	if err != nil {
		return fmt.Errorf("resolving public directory path: %w", err)
	}
	if _, err := os.Stat(absPublicDir); os.IsNotExist(err) {
		return fmt.Errorf("static files directory does not exist: %s", absPublicDir)
	}
	cfg.PublicDir = absPublicDir
	log.Printf("Serving static files from: %s", absPublicDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return api.NewServer(cfg, dataSource(cfg)).ListenAndServe(ctx)
}

func render(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if renderWidth <= 0 {
		renderWidth = cfg.DefaultWidth
	}
	if renderHeight <= 0 {
		renderHeight = cfg.DefaultHeight
	}

	markup, err := barchart.Snapshot(renderWidth, renderHeight, dataSource(cfg))
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(renderOut), ".png") {
		err = raster.PNG(f, markup)
	} else {
		_, err = f.WriteString(markup)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Printf("chart written to %s (%dx%d)", renderOut, renderWidth, renderHeight)
	return nil
}
