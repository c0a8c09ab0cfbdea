package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"wxdeck/app"
	"wxdeck/config"
	"wxdeck/log"
	"wxdeck/ui/layout"
	"wxdeck/weather"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version     = "0.3.1"
	cityFlag    string
	widthFlag   int
	expandFlag  []string
	withoutFlag []string
	rootCmd     = &cobra.Command{
		Use:   "wxdeck",
		Short: "wxdeck - A terminal weather dashboard with prediction-market temperature brackets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			return app.Run(ctx, cityFlag)
		},
	}

	layoutCmd = &cobra.Command{
		Use:   "layout",
		Short: "Compute and print the grid layout without starting the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			width := widthFlag
			if width <= 0 {
				cols, _, err := term.GetSize(int(os.Stdout.Fd()))
				if err != nil {
					cols = 80
				}
				width = cfg.ViewportPx(cols)
			}

			engine := layout.NewEngine()
			expanded := make(map[string]bool, len(expandFlag))
			for _, id := range expandFlag {
				expanded[id] = true
			}
			res := engine.Compute(expanded, width, withoutFlag)

			fmt.Printf("breakpoint: %s\n", res.Breakpoint)
			fmt.Printf("grid: %d x %d\n", res.TotalCols, res.TotalRows)
			if len(res.HiddenWidgets) > 0 {
				fmt.Printf("hidden: %s\n", strings.Join(res.HiddenWidgets, ", "))
			}
			fmt.Println(res.Grid.TemplateString())
			return nil
		},
	}

	citiesCmd = &cobra.Command{
		Use:   "cities",
		Short: "List the supported cities",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range weather.Cities {
				fmt.Printf("%-4s %-14s %s\n", c.ID, c.Name, c.Station)
			}
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset saved state (last city, seen hints)",
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			statePath := filepath.Join(configDir, config.StateFileName)
			if err := os.Remove(statePath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove state: %w", err)
			}
			fmt.Println("State has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.Path())

			ids := make([]string, 0)
			for _, c := range layout.DefaultCatalog() {
				ids = append(ids, c.ID)
			}
			sort.Strings(ids)
			fmt.Printf("Widgets: %s\n", strings.Join(ids, ", "))

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of wxdeck",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wxdeck version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&cityFlag, "city", "c", "",
		"City to show on startup (see 'wxdeck cities')")

	layoutCmd.Flags().IntVarP(&widthFlag, "width", "w", 0,
		"Viewport width in pixels. Defaults to the terminal width times px_per_cell.")
	layoutCmd.Flags().StringSliceVarP(&expandFlag, "expand", "e", nil,
		"Widget IDs to treat as expanded (repeatable)")
	layoutCmd.Flags().StringSliceVar(&withoutFlag, "without", nil,
		"Widget IDs to treat as absent (repeatable)")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
