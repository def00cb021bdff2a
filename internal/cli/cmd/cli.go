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

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	cliflag "k8s.io/component-base/cli/flag"

	"github.com/zortax/tub-modules/deployment/internal/cli/cmd/deploy"
	"github.com/zortax/tub-modules/deployment/internal/cli/cmd/version"
	"github.com/zortax/tub-modules/deployment/internal/cli/util"
)

const (
	cliName = "tubctl"
)

func NewDefaultCliCmd() *cobra.Command {
	return NewCliCmd(genericclioptions.IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})
}

func NewCliCmd(ioStreams genericclioptions.IOStreams) *cobra.Command {
	o := deploy.NewOptions(ioStreams)

	cmd := &cobra.Command{
		Use:   cliName,
		Short: "Deploy the tub-modules stack to Kubernetes.",
		Long: `
tubctl builds the resources of the tub-modules stack (namespace, database,
application, service and ingress) from the stack configuration and applies
them to a Kubernetes cluster in dependency order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.Logger = util.NewLogger(ioStreams.ErrOut, o.Verbose)
			util.SetupLogger(o.Logger)
			return o.InitConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// From this point and forward we get warnings on flags that contain "_" separators
	// when adding them with hyphen instead of the original name.
	cmd.SetGlobalNormalizationFunc(cliflag.WarnWordSepNormalizeFunc)

	flags := cmd.PersistentFlags()

	// add kubernetes flags like kubectl, the namespace of the stack is fixed
	kubeConfigFlags := genericclioptions.NewConfigFlags(true)
	kubeConfigFlags.Namespace = nil
	kubeConfigFlags.AddFlags(flags)
	util.CheckErr(o.AddFlags(flags))

	o.NewClient = deploy.NewClientFunc(kubeConfigFlags)
	o.ServerVersion = deploy.NewServerVersionFunc(kubeConfigFlags)

	cmd.AddCommand(
		deploy.NewUpCmd(o),
		deploy.NewPreviewCmd(o),
		deploy.NewDestroyCmd(o),
		deploy.NewOutputCmd(o),
		version.NewVersionCmd(ioStreams.Out, &o.Verbose, o.ServerVersion),
	)
	return cmd
}
