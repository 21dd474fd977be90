package promptsx

import (
	"fmt"
	"strings"

	"github.com/orochaa/go-clack/core"
	"github.com/orochaa/go-clack/prompts/symbols"
	"github.com/orochaa/go-clack/prompts/theme"
	"github.com/orochaa/go-clack/third_party/picocolors"
)

type ConfirmEditParams struct {
	Message  string
	EditKey  core.KeyName
	EditHint string
}

// DefaultConfirmEditOptions returns the yes/no pair, yes first so that
// Enter accepts.
func DefaultConfirmEditOptions() []*ConfirmEditOption {
	return []*ConfirmEditOption{
		{Label: "Yes", Key: "y", Value: true},
		{Label: "No", Key: "n", Value: false},
	}
}

func ConfirmEdit(params ConfirmEditParams) (EditableValue[bool], error) {
	p := NewConfirmEditPrompt(ConfirmEditPromptParams{
		Options: DefaultConfirmEditOptions(),
		EditKey: params.EditKey,
		Render:  renderConfirmEdit(params),
	})

	return p.Run()
}

func renderConfirmEdit(params ConfirmEditParams) func(p *ConfirmEditPrompt) string {
	return func(p *ConfirmEditPrompt) string {
		var value string

		switch p.State {
		case core.SubmitState, core.CancelState:
			if option := p.current(); option != nil {
				value = option.Label
				if p.Value.Edit {
					value += " (edit)"
				}
			}
		default:
			options := make([]string, len(p.Options))

			for i, option := range p.Options {
				key := picocolors.Cyan("[" + option.Key + "]")

				if i == p.CursorIndex {
					radio := picocolors.Green(symbols.RADIO_ACTIVE)
					if params.EditHint != "" && option.Value {
						hint := picocolors.Gray("(" + params.EditHint + ")")
						options[i] = fmt.Sprintf("%s %s %s %s", radio, key, option.Label, hint)
					} else {
						options[i] = fmt.Sprintf("%s %s %s", radio, key, option.Label)
					}
				} else {
					radio := picocolors.Dim(symbols.RADIO_INACTIVE)
					options[i] = fmt.Sprintf("%s %s %s", radio, picocolors.Dim(key), picocolors.Dim(option.Label))
				}
			}

			value = strings.Join(options, picocolors.Dim(" / "))
		}

		label := ""
		if option := p.current(); option != nil {
			label = option.Label
		}

		return theme.ApplyTheme(theme.ThemeParams[EditableValue[bool]]{
			Context:         p.Prompt,
			Message:         params.Message,
			Value:           label,
			ValueWithCursor: value,
		})
	}
}
