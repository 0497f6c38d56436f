package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"slider/app"
	"slider/catalog"
	"slider/config"
	"slider/inspect"
	"slider/log"
	"slider/ui/layout"
)

var (
	version       = "0.1.0"
	dirFlag       string
	manifestFlag  string
	cellWidthFlag int
	noMouseFlag   bool
	saveFlag      bool
	rootCmd       = &cobra.Command{
		Use:   "slider",
		Short: "Slider - a full-screen image carousel for the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg := loadConfig()
			cat, err := cfg.Catalog()
			if err != nil {
				return err
			}
			return app.Run(ctx, cat, cfg)
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the images the slider would show",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cat, err := loadConfig().Catalog()
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), cat)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and terminal size",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := loadConfig()

			configPath, err := config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			if saveFlag {
				if err := config.SaveConfig(cfg); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Printf("Saved config to %s\n", configPath)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")
			fmt.Printf("Config: %s\n%s\n", configPath, configJson)

			cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				fmt.Printf("Terminal: unknown (%v)\n", err)
			} else {
				px := layout.PixelWidth(cols, cfg.CellWidth)
				fmt.Printf("Terminal: %dx%d (%dpx, %s)\n", cols, rows, px, layout.DetermineViewport(px))
			}
			if inspect.IsEnabled() {
				path := inspect.GetInspectFile()
				fmt.Printf("Inspect: %s\n", path)
				if _, err := os.Stat(path); err == nil {
					if err := printInspect(cmd.OutOrStdout(), path); err != nil {
						fmt.Printf("Inspect: %v\n", err)
					}
				}
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of slider",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("slider version %s\n", version)
		},
	}
)

// loadConfig reads the config file and applies command line overrides.
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	if dirFlag != "" {
		cfg.ImageDir = dirFlag
		cfg.Manifest = ""
	}
	if manifestFlag != "" {
		cfg.Manifest = manifestFlag
	}
	if cellWidthFlag > 0 {
		cfg.CellWidth = cellWidthFlag
	}
	if noMouseFlag {
		cfg.Mouse = false
	}
	return cfg
}

func printCatalog(out io.Writer, cat *catalog.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, e := range cat.Entries() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, e.Name, e.Reference, e.Detail)
	}
	return w.Flush()
}

// printInspect dumps the last UI snapshot written by a running slider.
func printInspect(out io.Writer, path string) error {
	snap, err := inspect.ReadSnapshot(path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, snap.ToText())
	return err
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, listCmd, debugCmd} {
		c.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory of images to show")
		c.Flags().StringVarP(&manifestFlag, "manifest", "m", "", "YAML manifest listing the images to show")
		c.Flags().IntVar(&cellWidthFlag, "cell-width", 0, "Width of one terminal column in pixels (default from config)")
	}
	rootCmd.Flags().BoolVar(&noMouseFlag, "no-mouse", false, "Disable hover and click selection")
	debugCmd.Flags().BoolVar(&saveFlag, "save", false, "Write the config, with flag overrides applied, to the config file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
