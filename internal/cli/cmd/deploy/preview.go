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

package deploy

import (
	"context"

	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/zortax/tub-modules/deployment/internal/cli/printer"
	"github.com/zortax/tub-modules/deployment/internal/cli/util"
	"github.com/zortax/tub-modules/deployment/pkg/stack"
)

var previewExample = templates.Examples(`
	# print the resources of the prod stack as YAML, in the order they are applied
	tubctl preview --image-tag v1.2.3

	# print them as JSON with the generated secret values
	tubctl preview --image-tag v1.2.3 -o json --show-secrets`)

type previewOptions struct {
	*Options

	format      printer.Format
	showSecrets bool
}

func NewPreviewCmd(o *Options) *cobra.Command {
	p := &previewOptions{Options: o}
	cmd := &cobra.Command{
		Use:     "preview",
		Short:   "Print the resources of the stack without contacting the cluster.",
		Example: previewExample,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(p.run(cmd.Context()))
		},
	}
	printer.AddOutputFlag(cmd, &p.format, printer.YAML, printer.YAML, printer.JSON)
	cmd.Flags().BoolVar(&p.showSecrets, "show-secrets", false, "Print the values of secrets")
	return cmd
}

func (p *previewOptions) run(ctx context.Context) error {
	cfg, err := p.LoadConfig()
	if err != nil {
		return err
	}
	g, err := stack.Build(ctx, cfg, stack.WithLogger(p.Logger))
	if err != nil {
		return err
	}
	objects, err := g.Objects()
	if err != nil {
		return err
	}
	return printer.PrintObjects(p.Out, p.format, objects, p.showSecrets)
}
