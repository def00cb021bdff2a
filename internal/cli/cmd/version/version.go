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

package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/zortax/tub-modules/deployment/version"
)

type versionOptions struct {
	out     io.Writer
	verbose bool
	// serverVersion returns the version of the cluster, it may be nil.
	serverVersion func() (string, error)
}

// NewVersionCmd the version command, verbose is the global --verbose flag
func NewVersionCmd(out io.Writer, verbose *bool, serverVersion func() (string, error)) *cobra.Command {
	o := &versionOptions{out: out, serverVersion: serverVersion}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information, include kubernetes and tubctl version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			o.verbose = verbose != nil && *verbose
			o.Run()
		},
	}
	return cmd
}

func (o *versionOptions) Run() {
	if o.serverVersion != nil {
		if v, err := o.serverVersion(); err == nil && len(v) > 0 {
			fmt.Fprintf(o.out, "Kubernetes: %s\n", v)
		}
	}
	fmt.Fprintf(o.out, "tubctl: %s\n", version.GetVersion())
	if o.verbose {
		fmt.Fprintf(o.out, "  BuildDate: %s\n", version.BuildDate)
		fmt.Fprintf(o.out, "  GitCommit: %s\n", version.GitCommit)
		fmt.Fprintf(o.out, "  GitTag: %s\n", version.GitVersion)
		fmt.Fprintf(o.out, "  GoVersion: %s\n", runtime.Version())
		fmt.Fprintf(o.out, "  Compiler: %s\n", runtime.Compiler)
		fmt.Fprintf(o.out, "  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}
}
