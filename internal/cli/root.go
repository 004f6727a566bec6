package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	JsonOutput     *bool

	// init command
	InitUsed *bool
	InitDir  *string

	// serve command
	ServeUsed    *bool
	ServePort    *int
	ServeNoOpen  *bool
	ServeNoWatch *bool

	// convert command
	ConvertUsed  *bool
	ConvertColor *string

	// save command
	SaveUsed  *bool
	SaveColor *string

	// list command
	ListUsed *bool

	// remove command
	RemoveUsed  *bool
	RemoveIndex *int

	// plot command
	PlotUsed       *bool
	PlotFile       *string
	PlotOutput     *string
	PlotFormat     *string
	PlotStyle      *string
	PlotXHeader    *string
	PlotYHeader    *string
	PlotPositional *bool
	PlotSkip       *int
	PlotXCol       *int
	PlotYCol       *int

	// settings command
	SettingsUsed *bool
	SettingsEdit *bool
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("jitterkit")
	cmd.SetDescription("Color picker and centroid plot tools")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.JsonOutput, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Print machine-readable JSON").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerInit(cmd, ctx)
	registerServe(cmd, ctx)
	registerConvert(cmd, ctx)
	registerSave(cmd, ctx)
	registerList(cmd, ctx)
	registerRemove(cmd, ctx)
	registerPlot(cmd, ctx)
	registerSettings(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx)
}

func executeCommand(ctx *CommandContext) {
	interactive := !*ctx.NonInteractive
	jsonOutput := *ctx.JsonOutput

	switch {
	case *ctx.InitUsed:
		if jsonOutput {
			warnJsonNotSupported("init")
		}
		runInit(*ctx.InitDir)

	case *ctx.ServeUsed:
		if jsonOutput {
			warnJsonNotSupported("serve")
		}
		runServe(*ctx.ServePort, *ctx.ServeNoOpen, *ctx.ServeNoWatch)

	case *ctx.ConvertUsed:
		runConvert(*ctx.ConvertColor, jsonOutput)

	case *ctx.SaveUsed:
		runSave(*ctx.SaveColor, interactive, jsonOutput)

	case *ctx.ListUsed:
		runList(jsonOutput)

	case *ctx.RemoveUsed:
		runRemove(*ctx.RemoveIndex, interactive, jsonOutput)

	case *ctx.PlotUsed:
		runPlot(plotArgs{
			file:       *ctx.PlotFile,
			output:     *ctx.PlotOutput,
			format:     *ctx.PlotFormat,
			style:      *ctx.PlotStyle,
			xHeader:    *ctx.PlotXHeader,
			yHeader:    *ctx.PlotYHeader,
			positional: *ctx.PlotPositional,
			skip:       *ctx.PlotSkip,
			xCol:       *ctx.PlotXCol,
			yCol:       *ctx.PlotYCol,
		}, jsonOutput)

	case *ctx.SettingsUsed:
		runSettings(*ctx.SettingsEdit, jsonOutput)
	}
}
