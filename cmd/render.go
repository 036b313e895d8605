package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/glray/renderer"
	"github.com/achilleasa/glray/tracer/opengl"
	"github.com/achilleasa/glray/window"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

const windowTitle = "Raytracing Demo (fragment shader)"

// Flags shared by the render command and the default application action.
var RenderFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: renderer.DefaultOptions().FrameW,
		Usage: "window width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: renderer.DefaultOptions().FrameH,
		Usage: "window height",
	},
	cli.IntFlag{
		Name:  "bounces",
		Value: renderer.DefaultOptions().BounceCount,
		Usage: "initial ray bounce count",
	},
	cli.Float64Flag{
		Name:  "fov",
		Value: float64(renderer.DefaultOptions().FOV),
		Usage: "vertical field of view in degrees",
	},
	cli.StringFlag{
		Name:  "shader-dir",
		Usage: "load shader sources from this folder instead of the embedded copies",
	},
}

// Build renderer options from the command line. Flags may be supplied
// either before or after the render command name.
func renderOptions(ctx *cli.Context) renderer.Options {
	opts := renderer.DefaultOptions()
	opts.FrameW = intFlag(ctx, "width", opts.FrameW)
	opts.FrameH = intFlag(ctx, "height", opts.FrameH)
	opts.BounceCount = intFlag(ctx, "bounces", opts.BounceCount)
	if ctx.IsSet("fov") {
		opts.FOV = float32(ctx.Float64("fov"))
	} else if ctx.GlobalIsSet("fov") {
		opts.FOV = float32(ctx.GlobalFloat64("fov"))
	}
	return opts
}

func intFlag(ctx *cli.Context, name string, def int) int {
	switch {
	case ctx.IsSet(name):
		return ctx.Int(name)
	case ctx.GlobalIsSet(name):
		return ctx.GlobalInt(name)
	}
	return def
}

func deviceConfig(ctx *cli.Context) opengl.Config {
	cfg := opengl.DefaultConfig()
	dir := ctx.String("shader-dir")
	if dir == "" {
		dir = ctx.GlobalString("shader-dir")
	}
	if dir != "" {
		cfg = cfg.WithShaderDir(dir)
	}
	return cfg
}

// Open a window and progressively render the scene until the window is
// closed.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderOptions(ctx)
	if err := opts.Validate(); err != nil {
		logger.Error(err)
		return err
	}
	devCfg := deviceConfig(ctx)

	win, err := window.Open(window.Config{
		Width:        opts.FrameW,
		Height:       opts.FrameH,
		Title:        windowTitle,
		ContextMajor: devCfg.ContextMajor,
		ContextMinor: devCfg.ContextMinor,
	})
	if err != nil {
		logger.Error(err)
		return err
	}
	defer win.Close()

	// The framebuffer may be larger than the window on high-dpi displays.
	opts.FrameW, opts.FrameH = win.FramebufferSize()

	dev, err := opengl.NewDevice(devCfg)
	if err != nil {
		logger.Error(err)
		return err
	}
	defer dev.Close()

	r, err := renderer.NewInteractive(win, dev, opts)
	if err != nil {
		logger.Error(err)
		return err
	}
	defer r.Close()

	win.Bind(r.Input())
	logger.Notice("drag with the mouse to orbit the camera")
	logger.Notice("press keypad '+' or 'page up' to increase the number of bounces")
	logger.Notice("press keypad '-' or 'page down' to decrease the number of bounces")
	logger.Notice("press 'esc' to quit")

	err = r.Render()
	displayFrameStats(r.Stats())
	if err != nil {
		logger.Error(err)
	}
	return err
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("session statistics\n%s", formatFrameStats(stats))
}

func formatFrameStats(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Frames", fmt.Sprintf("%d", stats.Frames)})
	table.Append([]string{"Accumulated samples", fmt.Sprintf("%d", stats.SampleCount)})
	table.Append([]string{"Bounce count", fmt.Sprintf("%d", stats.BounceCount)})
	table.Append([]string{"Resets (orientation)", fmt.Sprintf("%d", stats.Resets[renderer.OrientationChanged])})
	table.Append([]string{"Resets (bounce count)", fmt.Sprintf("%d", stats.Resets[renderer.BounceCountChanged])})
	table.Append([]string{"Resets (viewport)", fmt.Sprintf("%d", stats.Resets[renderer.ViewportResized])})
	table.Append([]string{"Target allocations", fmt.Sprintf("%d", stats.TargetAllocations)})
	table.Append([]string{"Mean frame time", stats.MeanFrameTime().String()})
	table.Append([]string{"FPS", fmt.Sprintf("%.1f", stats.FPS())})
	table.SetFooter([]string{"TOTAL", stats.RenderTime.String()})

	table.Render()
	return buf.String()
}
