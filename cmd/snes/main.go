// Package main implements the snes emulator executable: an Ebitengine
// front end around the core's minimal host API.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/snes-emu/snes/internal/cartridge"
	"github.com/snes-emu/snes/internal/input"
	"github.com/snes-emu/snes/internal/system"
	"github.com/snes-emu/snes/internal/version"
)

const (
	windowWidth  = 512
	windowHeight = 480
)

func main() {
	var (
		romFile = flag.String("rom", "", "path to SNES ROM image")
		hirom   = flag.Bool("hirom", false, "force HiROM mapping instead of LoROM")
		sramOut = flag.String("sram", "", "path to load/save battery-backed save RAM")
		showVer = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVer {
		version.PrintBuildInfo()
		return
	}

	if *romFile == "" {
		log.Fatal("snes: -rom is required")
	}

	mapping := cartridge.LoROM
	if *hirom {
		mapping = cartridge.HiROM
	}

	var sram []uint8
	if *sramOut != "" {
		if data, err := os.ReadFile(*sramOut); err == nil {
			sram = data
		}
	}

	rom, err := os.ReadFile(*romFile)
	if err != nil {
		log.Fatalf("snes: reading ROM: %v", err)
	}

	emu, err := system.New(rom, mapping, sram)
	if err != nil {
		log.Fatalf("snes: %v", err)
	}

	game := &Game{emu: emu, sramPath: *sramOut}
	ebiten.SetWindowTitle(fmt.Sprintf("snes - %s", version.GetVersion()))
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("snes: %v", err)
	}

	if game.sramPath != "" {
		if err := os.WriteFile(game.sramPath, emu.SRAM(), 0o644); err != nil {
			log.Printf("snes: saving SRAM: %v", err)
		}
	}
}

// Game adapts system.Emulator to ebiten.Game: each Update runs the core
// until a frame completes, and Draw blits the resulting RGBA8 buffer.
type Game struct {
	emu        *system.Emulator
	sramPath   string
	frameImage *ebiten.Image
	frameW     int
	frameH     int
}

var keyMap = map[ebiten.Key]input.Button{
	ebiten.KeyZ:          input.ButtonB,
	ebiten.KeyX:          input.ButtonA,
	ebiten.KeyA:          input.ButtonY,
	ebiten.KeyS:          input.ButtonX,
	ebiten.KeyQ:          input.ButtonL,
	ebiten.KeyW:          input.ButtonR,
	ebiten.KeyShift:      input.ButtonSelect,
	ebiten.KeyEnter:      input.ButtonStart,
	ebiten.KeyArrowUp:    input.ButtonUp,
	ebiten.KeyArrowDown:  input.ButtonDown,
	ebiten.KeyArrowLeft:  input.ButtonLeft,
	ebiten.KeyArrowRight: input.ButtonRight,
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return fmt.Errorf("snes: quit requested")
	}

	if controller, ok := g.emu.Joypad.Port1.(*input.Controller); ok {
		var mask uint16
		for key, button := range keyMap {
			if ebiten.IsKeyPressed(key) {
				mask |= uint16(button)
			}
		}
		controller.SetButtons(mask)
	}

	g.emu.Run()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{A: 255})

	pix := g.emu.OutputImage()
	height := len(pix) / (512 * 4)
	if g.frameImage == nil || g.frameH != height {
		g.frameImage = ebiten.NewImage(512, height)
		g.frameW, g.frameH = 512, height
	}
	g.frameImage.ReplacePixels(pix)

	op := &ebiten.DrawImageOptions{}
	scaleX := float64(windowWidth) / float64(g.frameW)
	scaleY := float64(windowHeight) / float64(g.frameH)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(g.frameImage, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
