package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"mini-terrain/internal/config"
	"mini-terrain/internal/game"
	standardInput "mini-terrain/internal/input"
	"mini-terrain/internal/meshio"
	"mini-terrain/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	exportPath := flag.String("export", "", "write the generated meshes to this file and exit")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *configPath == "" {
		log.Printf("No -config given, using default settings")
	}
	config.Apply(settings)

	seed := world.NewSeed()
	if settings.World.Seed != nil {
		seed = *settings.World.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Generating %dx%d chunks of %d (seed %d)",
		settings.World.SizeChunks, settings.World.SizeChunks, settings.World.ChunkSize, seed)
	start := time.Now()
	w, err := world.Build(ctx, world.Params{
		SizeChunks: settings.World.SizeChunks,
		ChunkSize:  settings.World.ChunkSize,
		Seed:       seed,
		Workers:    settings.World.Workers,
	})
	if err != nil {
		log.Fatalf("world: %v", err)
	}
	log.Printf("Generated %d chunks, %d vertices in %v", len(w.Chunks), w.VertexCount(), time.Since(start))

	if *exportPath != "" {
		if err := meshio.WriteWorld(*exportPath, w); err != nil {
			log.Fatalf("export: %v", err)
		}
		log.Printf("Wrote %s", *exportPath)
		return
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(settings.Window)
	if err != nil {
		log.Fatalf("window: %v", err)
	}

	im := standardInput.NewInputManager()
	if err := im.ApplyBindings(settings.Input.Bindings); err != nil {
		log.Fatalf("input: %v", err)
	}
	im.Attach(window)

	cam, err := game.NewCamera(settings.Camera, w)
	if err != nil {
		log.Fatalf("camera: %v", err)
	}

	session, err := game.NewSession(window, w, cam, im)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	game.NewApp(window, im, session, settings.Window.Title).Run()
}
