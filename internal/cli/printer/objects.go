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
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/cli-runtime/pkg/printers"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zortax/tub-modules/deployment/pkg/controller/model"
	"github.com/zortax/tub-modules/deployment/pkg/stack"
)

// PrintObjects writes objects as a YAML or JSON stream in the given order. The values of
// secrets are masked unless showSecrets is set.
func PrintObjects(w io.Writer, format Format, objects []client.Object, showSecrets bool) error {
	var p printers.ResourcePrinter
	switch format {
	case YAML:
		p = &printers.YAMLPrinter{}
	case JSON:
		p = &printers.JSONPrinter{}
	default:
		return fmt.Errorf("objects can not be printed as %s", format)
	}
	p = printers.NewTypeSetter(model.Scheme()).ToPrinter(p)
	for _, obj := range objects {
		if secret, ok := obj.(*corev1.Secret); ok && !showSecrets {
			obj = maskSecret(secret)
		}
		if err := p.PrintObj(obj, w); err != nil {
			return err
		}
	}
	return nil
}

func maskSecret(secret *corev1.Secret) *corev1.Secret {
	masked := secret.DeepCopy()
	for k := range masked.StringData {
		masked.StringData[k] = stack.MaskedValue
	}
	for k := range masked.Data {
		masked.Data[k] = []byte(stack.MaskedValue)
	}
	return masked
}

// PrintOutputs writes the named outputs of a stack.
func PrintOutputs(w io.Writer, format Format, entries []stack.OutputEntry) error {
	switch format {
	case Table:
		tbl := NewTablePrinter(w)
		tbl.SetHeader("OUTPUT", "VALUE")
		for _, e := range entries {
			tbl.AddRow(e.Name, e.Value)
		}
		tbl.Print()
		return nil
	case JSON, YAML:
		values := make(map[string]string, len(entries))
		for _, e := range entries {
			values[e.Name] = e.Value
		}
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return err
		}
		if format == YAML {
			if data, err = yaml.JSONToYAML(data); err != nil {
				return err
			}
		} else {
			data = append(data, '\n')
		}
		_, err = w.Write(data)
		return err
	default:
		return ErrInvalidFormatType
	}
}
