package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/jitterbugs/jitterkit/internal/model"
)

func registerSave(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("save")
	cmd.SetDescription("Add a color to the saved list")

	ctx.SaveColor, _ = ra.NewString("color").
		SetOptional(true).
		SetUsage("Color as #rrggbb or \"rgb(R G B)\" (prompts if omitted)").
		Register(cmd)

	ctx.SaveUsed, _ = parent.RegisterCmd(cmd)
}

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List saved colors")

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func registerRemove(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("remove")
	cmd.SetDescription("Remove a saved color by index")

	ctx.RemoveIndex, _ = ra.NewInt("index").
		SetOptional(true).
		SetDefault(-1).
		SetUsage("Zero-based index from 'list' (prompts if omitted)").
		Register(cmd)

	ctx.RemoveUsed, _ = parent.RegisterCmd(cmd)
}

func runSave(input string, interactive, jsonOutput bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	if input == "" {
		input, err = app.Prompter.Input("Color to save", "#rrggbb or rgb(R G B)", func(s string) error {
			_, err := model.ParseColor(s)
			return err
		})
		if err != nil {
			Fatal(err)
		}
	}

	c, err := model.ParseColor(input)
	if err != nil {
		Fatal(err)
	}

	list, err := app.Services.ColorService.Save(c)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewSavedListOutput(list)); err != nil {
			Fatal(err)
		}
		return
	}

	PrintSuccess("Saved %s %s at index %d", ColorSwatch(c.Hex()), c.String(), list.Len()-1)
}

func runList(jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	list := app.Services.ColorService.Saved()

	if jsonOutput {
		if err := printJson(NewSavedListOutput(list)); err != nil {
			Fatal(err)
		}
		return
	}

	if list.Len() == 0 {
		PrintInfo("No saved colors")
		return
	}

	fmt.Println(RenderBold(fmt.Sprintf("Saved colors (%d)", list.Len())))
	for _, e := range list.Entries() {
		fmt.Printf("  %s %s %s %s\n",
			RenderMuted(fmt.Sprintf("%3d", e.Index)),
			ColorSwatch(e.Hex),
			e.Label,
			RenderMuted(e.Hex),
		)
	}
}

func runRemove(index int, interactive, jsonOutput bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	colors := app.Services.ColorService

	if index < 0 {
		entries := colors.Entries()
		if len(entries) == 0 {
			PrintInfo("No saved colors")
			return
		}
		index, err = selectSavedColor(app, entries)
		if err != nil {
			Fatal(err)
		}
	}

	removed, list, err := colors.Remove(index)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewSavedListOutput(list)); err != nil {
			Fatal(err)
		}
		return
	}

	PrintSuccess("Removed %s %s (%d left)", ColorSwatch(removed.Hex()), removed.String(), list.Len())
}

// selectSavedColor prompts for one saved color and returns its index.
func selectSavedColor(app *App, entries []model.SavedEntry) (int, error) {
	options := make([]string, len(entries))
	for i, e := range entries {
		options[i] = fmt.Sprintf("%d  %s", e.Index, e.Label)
	}
	return app.Prompter.Select("Remove which color?", options)
}
