package promptsx

import (
	"os"

	"github.com/orochaa/go-clack/core"
	"github.com/orochaa/go-clack/core/utils"
	"github.com/orochaa/go-clack/core/validator"
)

type EditableValue[TValue any] struct {
	Value TValue
	Edit  bool
}

type ConfirmEditOption struct {
	Label string
	Key   string
	Value bool
}

// ConfirmEditPrompt is a yes/no prompt where the edit key accepts the
// highlighted option and asks for the result to be edited.
type ConfirmEditPrompt struct {
	core.Prompt[EditableValue[bool]]
	Options []*ConfirmEditOption
	EditKey core.KeyName
}

type ConfirmEditPromptParams struct {
	Input   *os.File
	Output  *os.File
	Options []*ConfirmEditOption
	EditKey core.KeyName
	Render  func(p *ConfirmEditPrompt) string
}

func NewConfirmEditPrompt(params ConfirmEditPromptParams) *ConfirmEditPrompt {
	v := validator.NewValidator("ConfirmEditPrompt")
	v.ValidateRender(params.Render)
	v.ValidateOptions(len(params.Options))

	startIndex := 0

	if params.EditKey == "" {
		params.EditKey = "e"
	}

	var p ConfirmEditPrompt
	p = ConfirmEditPrompt{
		Prompt: *core.NewPrompt(core.PromptParams[EditableValue[bool]]{
			Input:  params.Input,
			Output: params.Output,
			InitialValue: EditableValue[bool]{
				Value: params.Options[startIndex].Value,
			},
			CursorIndex: startIndex,
			Render:      core.WrapRender[EditableValue[bool]](&p, params.Render),
		}),
		Options: params.Options,
		EditKey: params.EditKey,
	}

	p.On(core.KeyEvent, func(args ...any) {
		p.handleKeyPress(args[0].(*core.Key))
	})

	return &p
}

func (p *ConfirmEditPrompt) handleKeyPress(key *core.Key) {
	for i, option := range p.Options {
		if key.Name == core.KeyName(option.Key) {
			p.State = core.SubmitState
			p.Value = EditableValue[bool]{
				Value: option.Value,
			}
			p.CursorIndex = i
			return
		}
	}

	switch key.Name {
	case p.EditKey:
		// a declined option has nothing to edit
		if option := p.current(); option != nil && option.Value {
			p.State = core.SubmitState
			p.Value = EditableValue[bool]{
				Value: true,
				Edit:  true,
			}
			return
		}
	case core.UpKey, core.LeftKey:
		p.CursorIndex = utils.MinMaxIndex(p.CursorIndex-1, len(p.Options))
	case core.DownKey, core.RightKey:
		p.CursorIndex = utils.MinMaxIndex(p.CursorIndex+1, len(p.Options))
	case core.HomeKey:
		p.CursorIndex = 0
	case core.EndKey:
		p.CursorIndex = len(p.Options) - 1
	}

	if option := p.current(); option != nil {
		p.Value = EditableValue[bool]{
			Value: option.Value,
		}
	}
}

func (p *ConfirmEditPrompt) current() *ConfirmEditOption {
	if p.CursorIndex >= 0 && p.CursorIndex < len(p.Options) {
		return p.Options[p.CursorIndex]
	}
	return nil
}
