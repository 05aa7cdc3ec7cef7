// Command ggtkdemo renders a window of ggtk widgets to PNG, once in light
// and once in dark mode.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/ggtk"
	"github.com/gogpu/ggtk/appearance"
	"github.com/gogpu/ggtk/config"
	"github.com/gogpu/ggtk/draw"
	"github.com/gogpu/ggtk/host"
	"github.com/gogpu/ggtk/integration/ggraster"
	"github.com/gogpu/ggtk/loop"
	"github.com/gogpu/ggtk/scaling"
	"github.com/gogpu/ggtk/theme"
	"github.com/gogpu/ggtk/widget"
)

func main() {
	var (
		settings = flag.String("settings", "", "settings file (.toml, .yaml)")
		method   = flag.String("method", "", "drawing method: polygon, font or circle")
		scale    = flag.Float64("scale", 1, "monitor DPI scaling to simulate")
		output   = flag.String("output", "ggtkdemo", "output file prefix")
		verbose  = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		ggtk.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []ggtk.Option{
		ggtk.WithScheduler(loop.NewManual()),
		ggtk.WithDetector(appearance.DetectorFunc(func() (theme.Mode, error) { return theme.Light, nil })),
		ggtk.WithProber(scaling.ProberFunc(func(host.Window) (float64, error) { return *scale, nil })),
		ggtk.WithoutDPIAwareness(),
	}
	if *settings != "" {
		s, err := config.Load(*settings)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		opts = append(opts, ggtk.WithSettings(s))
	}
	if *method != "" {
		m, err := draw.ParseMethod(*method)
		if err != nil {
			log.Fatalf("Invalid method: %v", err)
		}
		opts = append(opts, ggtk.WithMethod(m))
	}

	tk, err := ggtk.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create toolkit: %v", err)
	}
	defer tk.Close()

	win := buildDemo(tk)

	for _, mode := range []string{"light", "dark"} {
		if err := tk.Appearance().SetMode(mode); err != nil {
			log.Fatalf("Failed to set %s mode: %v", mode, err)
		}
		path := *output + "-" + mode + ".png"
		if err := ggraster.SaveWindowPNG(win, path); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		w, h := win.DeviceSize()
		log.Printf("%s saved to %s (%dx%d, %s)\n", tk.Appearance().ModeName(), path, w, h, tk.Method())
	}
}

// buildDemo lays out one of each widget.
func buildDemo(tk *ggtk.Toolkit) *widget.Window {
	win := tk.NewWindow(widget.WithSize(420, 300), widget.WithText("ggtk demo"))

	frame := widget.NewFrame(win, widget.WithSize(400, 280))
	frame.Place(10, 10)

	widget.NewButton(frame, widget.WithText("Button")).Place(20, 20)
	hb := widget.NewButton(frame, widget.WithText("Hovered"))
	hb.Place(180, 20)
	hb.SetHover(true)

	cb := widget.NewCheckBox(frame)
	cb.Place(20, 70)
	cb.Select()
	widget.NewCheckBox(frame).Place(60, 70)

	sw := widget.NewSwitch(frame)
	sw.Place(120, 73)
	sw.SetOn(true)
	widget.NewSwitch(frame).Place(170, 73)

	pb := widget.NewProgressBar(frame, widget.WithSize(360, 8))
	pb.Place(20, 120)
	pb.Set(0.65)

	sl := widget.NewSlider(frame, widget.WithSize(360, 16), widget.WithRange(0, 100), widget.WithSteps(20))
	sl.Place(20, 145)
	sl.Set(30)

	om := widget.NewOptionMenu(frame, widget.WithValues("First", "Second", "Third"))
	om.Place(20, 185)
	om.Set("Second")

	sb := widget.NewScrollbar(frame, widget.WithSize(16, 240))
	sb.Place(370, 20)
	sb.Set(0.2, 0.5)

	return win
}
