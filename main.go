package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/pattern-playground/internal/config"
	"github.com/iburimskiy/pattern-playground/internal/game"
	"github.com/iburimskiy/pattern-playground/internal/logging"
)

const version = "0.1.0"

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Pattern Playground",
		Long:  "Interactive honeycomb, phyllotaxis, ring and triangle patterns.",
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(cmd, configFile); err != nil {
				log.Error().Err(err).Msg("fatal error")
				_ = zenity.Error(err.Error(), zenity.Title("Pattern Playground"))
				os.Exit(1)
			}
		},
	}
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to config file (yaml, toml or json)")
	config.DefineFlags(rootCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Pattern Playground version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Pattern Playground v%s\n", version)
		},
	}

	var checkConfigFile string
	checkConfigCmd := &cobra.Command{
		Use:   "checkconfig",
		Short: "Check configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			_, meta, err := config.Load(nil, checkConfigFile)
			if err == nil && meta.FileNotFound {
				err = fmt.Errorf("config file %s not found", checkConfigFile)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println("config is valid")
		},
	}
	checkConfigCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "config.yaml", "path to config file to check")

	var outputConfigFile string
	genConfigCmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Generate configuration file with defaults",
		Run: func(cmd *cobra.Command, args []string) {
			if err := config.Generate(outputConfigFile); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	genConfigCmd.Flags().StringVarP(&outputConfigFile, "config", "c", "config.yaml", "path to output config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkConfigCmd)
	rootCmd.AddCommand(genConfigCmd)
	_ = rootCmd.Execute()
}

func run(cmd *cobra.Command, configFile string) error {
	cfg, meta, err := config.Load(cmd, configFile)
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info().Str("version", version).Int("pid", os.Getpid()).Msg("starting Pattern Playground")
	if meta.FileNotFound {
		log.Warn().Str("file", meta.File).Msg("config file not found, using defaults")
	} else if meta.File != "" {
		log.Info().Str("file", meta.File).Msg("using config file")
	}

	player := game.NewChime(cfg)
	defer player.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("error running game: %w", err)
	}
	log.Info().Msg("bye")
	return nil
}
