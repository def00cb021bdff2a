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

package util

import (
	"fmt"

	cmdutil "k8s.io/kubectl/pkg/cmd/util"
	utilexec "k8s.io/utils/exec"

	"github.com/zortax/tub-modules/deployment/pkg/constant"
	intctrlutil "github.com/zortax/tub-modules/deployment/pkg/controllerutil"
)

// ConfigErrorExitCode is used when the stack configuration is missing or invalid,
// every other error exits with cmdutil.DefaultErrorExitCode.
const ConfigErrorExitCode = 2

const missingConfigHint = "Set it with a flag, a " + constant.EnvPrefix + "_ environment variable or the stack config file."

// CheckErr prints a user friendly error to STDERR and exits with a non-zero exit code.
// Configuration errors exit with ConfigErrorExitCode. Use cmdutil.BehaviorOnFatal to intercept.
func CheckErr(err error) {
	cmdutil.CheckErr(withExitCode(err))
}

func withExitCode(err error) error {
	ctrlErr := intctrlutil.UnwrapControllerError(err)
	if ctrlErr == nil {
		return err
	}
	switch ctrlErr.Type {
	case intctrlutil.ErrorTypeMissingConfiguration:
		return utilexec.CodeExitError{Err: fmt.Errorf("error: %w\n%s", err, missingConfigHint), Code: ConfigErrorExitCode}
	case intctrlutil.ErrorTypeInvalidConfiguration:
		return utilexec.CodeExitError{Err: fmt.Errorf("error: %w", err), Code: ConfigErrorExitCode}
	}
	return err
}
