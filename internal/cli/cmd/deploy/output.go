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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/zortax/tub-modules/deployment/internal/cli/printer"
	"github.com/zortax/tub-modules/deployment/internal/cli/util"
	"github.com/zortax/tub-modules/deployment/pkg/constant"
	"github.com/zortax/tub-modules/deployment/pkg/stack/state"
)

var outputExample = templates.Examples(`
	# print the outputs of the last successful up of the prod stack
	tubctl output

	# print the database url, the passphrase decrypts the recorded secrets
	TUB_CONFIG_PASSPHRASE=... tubctl output --show-secrets -o yaml`)

type outputOptions struct {
	*Options

	format      printer.Format
	showSecrets bool
}

func NewOutputCmd(o *Options) *cobra.Command {
	out := &outputOptions{Options: o}
	cmd := &cobra.Command{
		Use:     "output",
		Short:   "Print the outputs recorded by the last successful up of the stack.",
		Example: outputExample,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(out.run(cmd.Context()))
		},
	}
	printer.AddOutputFlag(cmd, &out.format, printer.Table)
	cmd.Flags().BoolVar(&out.showSecrets, "show-secrets", false,
		fmt.Sprintf("Print the values of secret outputs, requires %s", constant.PassphraseEnvName))
	return cmd
}

func (o *outputOptions) run(ctx context.Context) error {
	store, err := o.openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	record, err := store.Load(ctx, o.Stack)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return fmt.Errorf("no outputs recorded for stack %s, run \"tubctl up\" first", o.Stack)
		}
		return err
	}
	entries, err := record.Entries(o.showSecrets, o.passphrase())
	if err != nil {
		return errors.Wrapf(err, "read outputs of stack %s", o.Stack)
	}
	return printer.PrintOutputs(o.Out, o.format, entries)
}
