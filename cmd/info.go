package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/glray/tracer/opengl"
	"github.com/achilleasa/glray/window"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display information about the OpenGL implementation and whether it
// supports the interactive renderer.
func ShowInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg := opengl.DefaultConfig()
	win, err := window.Open(window.Config{
		Width:        64,
		Height:       64,
		Title:        windowTitle,
		ContextMajor: cfg.ContextMajor,
		ContextMinor: cfg.ContextMinor,
		Hidden:       true,
	})
	if err != nil {
		logger.Error(err)
		return err
	}
	defer win.Close()

	caps, err := opengl.QueryCapabilities()
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Noticef("OpenGL implementation\n%s", formatCapabilities(caps, cfg))
	return nil
}

func formatCapabilities(caps *opengl.Capabilities, cfg opengl.Config) string {
	status := "supported"
	if err := caps.Check(cfg); err != nil {
		status = err.Error()
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Vendor", caps.Vendor})
	table.Append([]string{"Renderer", caps.Renderer})
	table.Append([]string{"Version", caps.Version})
	table.Append([]string{"GLSL version", caps.GLSLVersion})
	table.Append([]string{"Context", fmt.Sprintf("%d.%d core", caps.Major, caps.Minor)})
	table.Append([]string{"RGBA32F render targets", fmt.Sprintf("%t", caps.FloatTargets)})
	table.Append([]string{"Uniform buffer bindings", fmt.Sprintf("%d", caps.UniformBufferBindings)})
	table.SetFooter([]string{"Status", status})

	table.Render()
	return buf.String()
}
