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

package printer

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/cmd/util"
)

// Format is a type for capturing supported output formats
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

var ErrInvalidFormatType = fmt.Errorf("invalid format type")

func Formats() []string {
	return []string{Table.String(), JSON.String(), YAML.String()}
}

func FormatsWithDesc() map[string]string {
	return map[string]string{
		Table.String(): "Output result in human-readable format",
		JSON.String():  "Output result in JSON format",
		YAML.String():  "Output result in YAML format",
	}
}

func (f Format) String() string {
	return string(f)
}

func (f Format) IsHumanReadable() bool {
	return f == Table
}

func ParseFormat(s string) (out Format, err error) {
	switch s {
	case Table.String():
		out, err = Table, nil
	case JSON.String():
		out, err = JSON, nil
	case YAML.String():
		out, err = YAML, nil
	default:
		out, err = "", ErrInvalidFormatType
	}
	return
}

// AddOutputFlag adds the --output flag with defaultValue, allowing only the given formats.
func AddOutputFlag(cmd *cobra.Command, varRef *Format, defaultValue Format, allowed ...Format) {
	if len(allowed) == 0 {
		allowed = []Format{Table, JSON, YAML}
	}
	names := make([]string, len(allowed))
	for i, f := range allowed {
		names[i] = f.String()
	}
	cmd.Flags().VarP(newOutputValue(defaultValue, varRef, allowed), "output", "o",
		fmt.Sprintf("prints the output in the specified format. Allowed values: %s", strings.Join(names, ", ")))
	util.CheckErr(cmd.RegisterFlagCompletionFunc("output",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var completions []string
			descriptions := FormatsWithDesc()
			for _, format := range names {
				if strings.HasPrefix(format, toComplete) {
					completions = append(completions, fmt.Sprintf("%s\t%s", format, descriptions[format]))
				}
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		}))
}

type outputValue struct {
	p       *Format
	allowed []Format
}

func newOutputValue(defaultValue Format, p *Format, allowed []Format) *outputValue {
	*p = defaultValue
	return &outputValue{p: p, allowed: allowed}
}

func (o *outputValue) String() string {
	return string(*o.p)
}

func (o *outputValue) Type() string {
	return "format"
}

func (o *outputValue) Set(s string) error {
	outfmt, err := ParseFormat(s)
	if err != nil {
		return err
	}
	for _, f := range o.allowed {
		if f == outfmt {
			*o.p = outfmt
			return nil
		}
	}
	return ErrInvalidFormatType
}
