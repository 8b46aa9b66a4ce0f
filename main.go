package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/raffis-code/keepsake/keepsake"
)

func init() {
	rand.Seed(time.Now().Unix())
}

func run() {
	config := keepsake.ReadConfig()

	width := config.ScreenWidth
	height := config.ScreenHeight
	if width > 1920 {
		width = 1920
	}
	if height > 1080 {
		height = 1080
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Keepsake",
		Bounds: pixel.R(0, 0, width, height),
		VSync:  true,
	}
	if config.Fullscreen {
		cfg.Monitor = pixelgl.PrimaryMonitor()
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	keepsake.InitAudio()

	draw := keepsake.NewDrawContext(cfg)
	app := keepsake.NewApp(config)
	ui := keepsake.NewUi(win)

	for !win.Closed() {
		ui.MousePos = win.MousePosition()

		keepsake.UpdateApp(win, app, ui)
		keepsake.DrawApp(win, app, draw)

		win.Update()
	}
}

// To read about how to use these profiles,
// https://blog.golang.org/pprof
var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	pixelgl.Run(run)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
