package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/dimchansky/utfbom"
	lorem "github.com/drhodes/golorem"
	"github.com/pelletier/go-toml/v2"
	"github.com/rasteric/zedit-canvas"
	"github.com/rasteric/zedit-canvas/raster"
	"github.com/rasteric/zedit-canvas/view"
)

type windowConfig struct {
	Window struct {
		Width  int   `toml:"width"`
		Height int   `toml:"height"`
		Grid   *bool `toml:"grid"`
	} `toml:"window"`
}

var (
	configFile = flag.String("config", "", "TOML configuration file")
	seedFile   = flag.String("seed", "", "text file typed into the pad at startup")
	loremCount = flag.Int("lorem", 0, "number of lorem ipsum sentences typed into the pad at startup")
	verbose    = flag.Bool("v", false, "log ignored edit commands")
)

var colorNames = []string{"navy", "black", "red", "green", "blue", "cornflowerblue", "goldenrod"}

var colorValues = map[string]color.Color{
	"cornflowerblue": color.NRGBA{0x64, 0x95, 0xed, 0xff},
	"goldenrod":      color.NRGBA{0xda, 0xa5, 0x20, 0xff},
}

func main() {
	flag.Parse()
	config, window, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("example: %v", err)
	}
	if *verbose {
		config.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	a := app.New()
	w := a.NewWindow("Example")
	pad, err := view.NewPad(window.Window.Width, window.Window.Height, w.Canvas(), config)
	if err != nil {
		log.Fatalf("example: %v", err)
	}
	if window.Window.Grid != nil {
		pad.Grid.Enabled = *window.Window.Grid
		pad.DrawBackground()
	}
	defer pad.Close()

	seed, err := seedText(*seedFile, *loremCount)
	if err != nil {
		log.Fatalf("example: %v", err)
	}
	if seed != "" {
		pad.TypeText(48, 60, seed)
	}

	w.SetContent(container.NewBorder(controls(pad, w), nil, nil, nil, pad))
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { pad.Clear() })
	w.Canvas().Focus(pad)
	w.ShowAndRun()
}

// loadConfig reads the editing config and the window section from the same TOML file.
func loadConfig(path string) (*zedit.Config, *windowConfig, error) {
	window := &windowConfig{}
	window.Window.Width, window.Window.Height = 600, 400
	if path == "" {
		return zedit.NewConfig(), window, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	config, err := zedit.LoadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := toml.Unmarshal(data, window); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, window, nil
}

// seedText returns the content of path, or n lorem ipsum sentences when no path is given.
func seedText(path string, n int) (string, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		data, err := io.ReadAll(utfbom.SkipOnly(f))
		if err != nil {
			return "", fmt.Errorf("reading seed file: %w", err)
		}
		return string(data), nil
	}
	sentences := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sentences = append(sentences, lorem.Sentence(3, 8))
	}
	return strings.Join(sentences, "\n"), nil
}

func namedColor(name string) color.Color {
	if c, ok := colorValues[name]; ok {
		return c
	}
	c, err := zedit.ParseColor(name)
	if err != nil {
		return color.Black
	}
	return c
}

// controls builds the toolbar with font, size and color selection.
func controls(pad *view.Pad, w fyne.Window) fyne.CanvasObject {
	font := widget.NewSelect(raster.FaceNames(), nil)
	font.SetSelected(pad.Config.Font)
	sizes := []string{"16", "24", "32", "48", "64"}
	size := widget.NewSelect(sizes, nil)
	size.SetSelected(strconv.FormatFloat(pad.Config.FontSize, 'f', -1, 64))
	setFont := func(string) {
		points, err := strconv.ParseFloat(size.Selected, 64)
		if err != nil || font.Selected == "" {
			return
		}
		if err := pad.SetFont(font.Selected, points); err != nil {
			dialog.ShowError(err, w)
		}
	}
	font.OnChanged = setFont
	size.OnChanged = setFont

	stroke := widget.NewSelect(colorNames, nil)
	fill := widget.NewSelect(colorNames, nil)
	stroke.SetSelected("navy")
	fill.SetSelected("cornflowerblue")
	setColors := func(string) {
		pad.SetTextColors(namedColor(stroke.Selected), namedColor(fill.Selected))
	}
	stroke.OnChanged = setColors
	fill.OnChanged = setColors

	erase := widget.NewButton("Erase all", pad.Clear)
	return container.NewHBox(
		widget.NewLabel("Font:"), font, size,
		widget.NewLabel("Stroke:"), stroke,
		widget.NewLabel("Fill:"), fill,
		erase)
}
