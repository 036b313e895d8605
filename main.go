package main

import (
	"os"
	"runtime"

	"github.com/achilleasa/glray/cmd"
	"github.com/urfave/cli"
)

func init() {
	// GLFW and the GL context must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "glray"
	app.Usage = "progressively ray trace a scene on the GPU"
	app.Version = "0.0.1"
	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}, cmd.RenderFlags...)
	app.Action = cmd.RenderInteractive
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render an interactive view of the scene",
			Description: `
Open a window and progressively refine the rendered image while the camera
is still. Drag with the mouse to orbit the camera around the scene; use the
keypad '+'/'-' or 'page up'/'page down' keys to change the number of ray
bounces.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderInteractive,
		},
		{
			Name:   "info",
			Usage:  "display information about the OpenGL implementation",
			Action: cmd.ShowInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
