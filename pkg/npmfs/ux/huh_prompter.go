package ux

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements Prompter using charmbracelet/huh
type HuhPrompter struct{}

func NewHuhPrompter() Prompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Confirm(message string) (bool, error) {
	var result bool

	err := huh.NewConfirm().
		Title(message).
		Value(&result).
		Run()

	return result, err
}

// MultiSelect preselects every option so accepting the form keeps them all.
func (p *HuhPrompter) MultiSelect(message string, options []string) ([]string, error) {
	result := append([]string(nil), options...)

	err := huh.NewMultiSelect[string]().
		Title(message).
		Options(huh.NewOptions(options...)...).
		Value(&result).
		Run()

	return result, err
}
