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
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/zortax/tub-modules/deployment/internal/cli/printer"
	"github.com/zortax/tub-modules/deployment/internal/cli/util"
	"github.com/zortax/tub-modules/deployment/internal/cli/util/prompt"
	"github.com/zortax/tub-modules/deployment/pkg/stack"
)

var destroyExample = templates.Examples(`
	# delete every resource of the prod stack, asking for confirmation
	tubctl destroy

	# delete the staging stack without asking
	tubctl destroy --stack staging --yes

	# delete the workloads but keep the database volume
	tubctl destroy --keep-data`)

type destroyOptions struct {
	*Options

	autoApprove bool
	keepData    bool
}

func NewDestroyCmd(o *Options) *cobra.Command {
	d := &destroyOptions{Options: o}
	cmd := &cobra.Command{
		Use:     "destroy",
		Short:   "Delete the resources of the stack from the cluster.",
		Example: destroyExample,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(d.run(cmd.Context()))
		},
	}
	cmd.Flags().BoolVarP(&d.autoApprove, "yes", "y", false, "Skip the confirmation")
	cmd.Flags().BoolVar(&d.keepData, "keep-data", false, "Keep the database volume and the namespace holding it")
	return cmd
}

func (d *destroyOptions) run(ctx context.Context) error {
	cfg, err := stack.LoadConfig(d.Viper)
	if err != nil {
		return err
	}
	// objects are deleted by name, the image does not matter
	if cfg.ImageTag == "" {
		cfg.ImageTag = "destroy"
	}
	if !d.autoApprove {
		label := fmt.Sprintf("Type the stack name %q to delete all of its resources", d.Stack)
		if err = prompt.Confirm(label, d.Stack, d.In); err != nil {
			return fmt.Errorf("destroy of stack %s not confirmed: %w", d.Stack, err)
		}
	}
	cli, err := d.NewClient()
	if err != nil {
		return err
	}
	g, err := stack.Build(ctx, cfg, stack.WithLogger(d.Logger))
	if err != nil {
		return err
	}
	logger := d.Logger.WithValues("stack", d.Stack, "runID", g.RunID)

	done := printer.Spinner(d.ErrOut, "Deleting %d resources of stack %s", len(g.DAG.Vertices()), d.Stack)
	var opts []stack.DestroyOption
	if d.keepData {
		opts = append(opts, stack.KeepData())
	}
	err = stack.Destroy(ctx, stack.NewKubeEngine(cli, logger), g, logHook(logger), opts...)
	done(err == nil)
	if err != nil {
		return err
	}

	store, err := d.openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Delete(ctx, d.Stack)
}
