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

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zortax/tub-modules/deployment/internal/cli/printer"
	"github.com/zortax/tub-modules/deployment/internal/cli/util"
	"github.com/zortax/tub-modules/deployment/pkg/constant"
	"github.com/zortax/tub-modules/deployment/pkg/controller/model"
	"github.com/zortax/tub-modules/deployment/pkg/stack"
	"github.com/zortax/tub-modules/deployment/version"
)

var upExample = templates.Examples(`
	# create or update the prod stack, reading Pulumi.prod.yaml from the working directory
	tubctl up --image-tag v1.2.3

	# deploy the staging stack with two application replicas
	tubctl up --stack staging --image-tag v1.2.3 --app-replicas 2

	# take the image tag from the environment and print the outputs as JSON
	TUB_IMAGETAG=v1.2.3 tubctl up -o json`)

type upOptions struct {
	*Options

	format           printer.Format
	showSecrets      bool
	skipVersionCheck bool
}

func NewUpCmd(o *Options) *cobra.Command {
	u := &upOptions{Options: o}
	cmd := &cobra.Command{
		Use:     "up",
		Short:   "Create or update the resources of the stack in the cluster.",
		Example: upExample,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(u.run(cmd.Context()))
		},
	}
	printer.AddOutputFlag(cmd, &u.format, printer.Table)
	cmd.Flags().BoolVar(&u.showSecrets, "show-secrets", false, "Print the values of secret outputs")
	cmd.Flags().BoolVar(&u.skipVersionCheck, "skip-version-check", false, "Do not check the version of the cluster")
	return cmd
}

func (u *upOptions) run(ctx context.Context) error {
	cfg, err := u.LoadConfig()
	if err != nil {
		return err
	}
	if u.ServerVersion != nil && !u.skipVersionCheck {
		gitVersion, err := u.ServerVersion()
		if err != nil {
			return err
		}
		if err = version.CheckKubernetesVersion(gitVersion); err != nil {
			return err
		}
	}
	cli, err := u.NewClient()
	if err != nil {
		return err
	}
	g, err := stack.Build(ctx, cfg, stack.WithExistingSecrets(cli), stack.WithLogger(u.Logger))
	if err != nil {
		return err
	}
	logger := u.Logger.WithValues("stack", u.Stack, "runID", g.RunID)

	done := printer.Spinner(u.ErrOut, "Applying %d resources of stack %s", len(g.DAG.Vertices()), u.Stack)
	outputs, err := stack.Submit(ctx, stack.NewKubeEngine(cli, logger), g, logHook(logger))
	done(err == nil)
	if err != nil {
		return err
	}

	store, err := u.openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	passphrase := u.passphrase()
	if passphrase == "" {
		logger.Info("secret outputs are not recorded, set " + constant.PassphraseEnvName + " to keep them")
	}
	if err = store.Save(ctx, u.Stack, g.RunID, outputs.Entries(), passphrase); err != nil {
		return err
	}

	entries := outputs.Entries()
	if !u.showSecrets {
		entries = stack.Masked(entries)
	}
	return printer.PrintOutputs(u.Out, u.format, entries)
}

func logHook(logger logr.Logger) stack.Hook {
	return func(obj client.Object, action model.Action, err error) {
		name := obj.GetName()
		if key, keyErr := model.GetGVKName(obj); keyErr == nil {
			name = key.String()
		}
		if err != nil {
			logger.Error(err, "failed", "object", name, "action", action)
			return
		}
		logger.V(1).Info("done", "object", name, "action", action)
	}
}
