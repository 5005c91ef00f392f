package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/dontescape/nav"
)

// ExitSelector decides which exit a prisoner heads for. roll is a uniform
// sample in [0, 1) supplied by the caller so selection stays seedable.
type ExitSelector interface {
	SelectExit(exits []nav.Cell, from nav.Cell, roll float64) (int, error)
}

// ScriptSelector runs a tengo script per decision. The script reads the
// globals exits ([[x, y], ...]), prisoner ([x, y]) and roll, and must assign
// the chosen index to choice.
type ScriptSelector struct {
	compiled *tengo.Compiled
}

func NewScriptSelector(src []byte) (*ScriptSelector, error) {
	script := tengo.NewScript(src)
	_ = script.Add("exits", []interface{}{})
	_ = script.Add("prisoner", []interface{}{0, 0})
	_ = script.Add("roll", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("escape script: compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("escape script: dry run: %w", err)
	}
	if !compiled.IsDefined("choice") {
		return nil, fmt.Errorf("escape script: choice is never assigned")
	}
	return &ScriptSelector{compiled: compiled}, nil
}

func (s *ScriptSelector) SelectExit(exits []nav.Cell, from nav.Cell, roll float64) (int, error) {
	if len(exits) == 0 {
		return 0, fmt.Errorf("escape script: no exits")
	}

	list := make([]interface{}, 0, len(exits))
	for _, c := range exits {
		list = append(list, []interface{}{c.X, c.Y})
	}

	if err := s.compiled.Set("exits", list); err != nil {
		return 0, fmt.Errorf("escape script: set exits: %w", err)
	}
	if err := s.compiled.Set("prisoner", []interface{}{from.X, from.Y}); err != nil {
		return 0, fmt.Errorf("escape script: set prisoner: %w", err)
	}
	if err := s.compiled.Set("roll", roll); err != nil {
		return 0, fmt.Errorf("escape script: set roll: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("escape script: run: %w", err)
	}

	choice := s.compiled.Get("choice").Int()
	if choice < 0 || choice >= len(exits) {
		return 0, fmt.Errorf("escape script: choice %d out of range [0,%d)", choice, len(exits))
	}
	return choice, nil
}

// RandomSelector picks uniformly using roll.
type RandomSelector struct{}

func (RandomSelector) SelectExit(exits []nav.Cell, _ nav.Cell, roll float64) (int, error) {
	if len(exits) == 0 {
		return 0, fmt.Errorf("no exits")
	}
	idx := int(roll * float64(len(exits)))
	if idx >= len(exits) {
		idx = len(exits) - 1
	}
	return idx, nil
}
