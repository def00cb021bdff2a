/*
Copyright (C) 2024 The tub-modules Authors

This file is part of the tub-modules project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package prompt

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

// NewPrompt returns a prompt reading from in.
func NewPrompt(label string, validate promptui.ValidateFunc, in io.Reader) *promptui.Prompt {
	p := promptui.Prompt{
		Label:    label,
		Stdin:    io.NopCloser(in),
		Validate: validate,
	}
	return &p
}

// Confirm asks to type expected back, any other answer is an error.
func Confirm(label, expected string, in io.Reader) error {
	_, err := NewPrompt(label, func(input string) error {
		if input != expected {
			return fmt.Errorf("type %q to confirm", expected)
		}
		return nil
	}, in).Run()
	return err
}
