package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"holiday-scene/internal/commands"
	"holiday-scene/internal/config"
	"holiday-scene/internal/debug"
	"holiday-scene/internal/fpscam"
	"holiday-scene/internal/graphics"
	"holiday-scene/internal/layout"
	"holiday-scene/internal/logger"
	"holiday-scene/internal/scene"
	"holiday-scene/internal/session"
	"holiday-scene/internal/terminal"
)

func main() {
	log := logger.New()

	prefs, _ := config.Load()
	lay, err := layout.Load(layout.Path)
	if err != nil {
		log.Log("layout: " + err.Error() + " (using defaults)")
	}

	pose := fpscam.Pose{Position: [3]float32{0, 1.7, 20}}
	ctrl := fpscam.New(&pose)
	ctrl.SetSensitivity(prefs.MouseSensitivity)
	ctrl.SetMoveSpeed(prefs.MoveSpeed)

	scn := scene.New(lay)
	scn.SetGridVisible(prefs.GridVisible)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	reg := commands.NewRegistry()
	registerCommands(reg, log, scn, ctrl, dbg, &prefs)
	term := terminal.New(log, reg)

	sess := session.New(ctrl)
	sess.Init()
	defer sess.Teardown()

	update := func(dt float32) {
		term.Update()
		sess.Update(term.IsOpen())
		ctrl.Update(dt)
		scn.ApplyPose(pose)
	}
	draw := func() {
		scn.Draw()
		term.Draw()
		dbg.Draw()
	}
	graphics.Run(update, draw)
}

// registerCommands wires the terminal's "cmd ..." subcommands: overlays, grid,
// camera feel, and live re-scattering of the candy.
func registerCommands(reg *commands.Registry, log *logger.Logger, scn *scene.Scene, ctrl *fpscam.Controller, dbg *debug.Debug, prefs *config.Prefs) {
	gridFS := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridVisible := gridFS.Bool("visible", true, "show the debug grid")
	reg.Register("grid", gridFS, func() error {
		scn.SetGridVisible(*gridVisible)
		prefs.GridVisible = *gridVisible
		return config.Save(*prefs)
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsShow := fpsFS.Bool("show", true, "show the FPS counter")
	reg.Register("fps", fpsFS, func() error {
		dbg.SetShowFPS(*fpsShow)
		prefs.ShowFPS = *fpsShow
		return config.Save(*prefs)
	})

	memFS := flag.NewFlagSet("mem", flag.ContinueOnError)
	memShow := memFS.Bool("show", true, "show the heap counter")
	reg.Register("mem", memFS, func() error {
		dbg.SetShowMemAlloc(*memShow)
		prefs.ShowMemAlloc = *memShow
		return config.Save(*prefs)
	})

	scatterFS := flag.NewFlagSet("scatter", flag.ContinueOnError)
	scatterCount := scatterFS.Int("count", 0, "instances per candy category (0 = keep current)")
	scatterSeed := scatterFS.Int64("seed", 0, "scatter seed (0 = random)")
	scatterSave := scatterFS.Bool("save", false, "persist the layout (with this seed) to the layout file")
	reg.Register("scatter", scatterFS, func() error {
		if *scatterCount > 0 {
			scn.SetCounts(*scatterCount)
		}
		scn.Rescatter(*scatterSeed)
		log.Log(fmt.Sprintf("scattered %d props", scn.Total()))
		if *scatterSave {
			lay := scn.Layout()
			lay.Seed = *scatterSeed
			return layout.Save(layout.Path, lay)
		}
		return nil
	})

	speedFS := flag.NewFlagSet("speed", flag.ContinueOnError)
	speedVal := speedFS.Float64("value", fpscam.DefaultMoveSpeed, "walk speed, units/second")
	reg.Register("speed", speedFS, func() error {
		ctrl.SetMoveSpeed(float32(*speedVal))
		prefs.MoveSpeed = float32(*speedVal)
		return config.Save(*prefs)
	})

	sensFS := flag.NewFlagSet("sens", flag.ContinueOnError)
	sensVal := sensFS.Float64("value", fpscam.DefaultSensitivity, "mouse sensitivity, radians/pixel")
	reg.Register("sens", sensFS, func() error {
		ctrl.SetSensitivity(float32(*sensVal))
		prefs.MouseSensitivity = float32(*sensVal)
		return config.Save(*prefs)
	})

	helpFS := flag.NewFlagSet("help", flag.ContinueOnError)
	reg.Register("help", helpFS, func() error {
		names := reg.Names()
		sort.Strings(names)
		log.Log("commands: cmd " + strings.Join(names, ", cmd "))
		return nil
	})
}
