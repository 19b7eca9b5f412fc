package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shopfront/assets"
	"github.com/milk9111/shopfront/config"
	"github.com/milk9111/shopfront/sound"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mute := flag.Bool("mute", false, "never play the ambient track")
	restore := flag.Bool("restore", false, "return to the pose held before a section was opened instead of the home view")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	envFile := flag.String("env", ".env", "optional env file with deployment settings")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	assets.CloudName = cfg.CloudName

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w*3/4, h*3/4)
	ebiten.SetWindowTitle("shopfront")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tickRate)

	game, err := NewGame(GameOptions{
		Debug:   *debug,
		Mute:    *mute,
		Restore: *restore,
		Watch:   *watch,
		Sound:   sound.RemoteLoader(cfg.AmbientID, cfg.Volume),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
