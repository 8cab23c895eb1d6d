//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifebox/internal/app"
	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %+v", err)
	}
	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("startup: %+v", err)
	}
	log.Printf("life %dx%d scale=%d delay=%v seed=%d density=%.2f pattern=%q",
		cfg.Width, cfg.Height, cfg.Scale, cfg.Delay, cfg.Seed, cfg.Density, cfg.Pattern)

	ctl := app.NewController(sim, core.NewCadence(cfg.Delay), cfg.Scale, cfg.Seed, cfg.Density)
	game := app.New(ctl)

	ebiten.SetWindowTitle("lifebox — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
