package cli

import (
	"fmt"

	"github.com/amterp/ra"
	"github.com/jitterbugs/jitterkit/internal/model"
)

func registerConvert(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("convert")
	cmd.SetDescription("Show a color as swatch, channel readout and formatted string")

	ctx.ConvertColor, _ = ra.NewString("color").
		SetUsage("Color as #rrggbb or \"rgb(R G B)\"").
		Register(cmd)

	ctx.ConvertUsed, _ = parent.RegisterCmd(cmd)
}

func runConvert(input string, jsonOutput bool) {
	c, err := model.ParseColor(input)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewColorOutput(c)); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Println(renderColorCard(c))
}

// renderColorCard draws a swatch with the readout and both text forms.
func renderColorCard(c model.Color) string {
	d := model.NewColorDisplay(c)
	content := fmt.Sprintf("%s\n%s\n%s\n%s",
		ColorSwatchWide(c),
		LabelValue("RGB", d.Readout, 9),
		LabelValue("Hex", d.Hex, 9),
		LabelValue("Formatted", c.String(), 9),
	)
	return Box(content)
}
