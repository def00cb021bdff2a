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

	"github.com/hashicorp/go-version"
)

// Version is the string that contains version
var Version = "edge"

// BuildDate is the string of binary build date
var BuildDate string

// GitCommit is the string of git commit ID
var GitCommit string

// GitVersion is the string of git version tag
var GitVersion string

// MinimumKubernetesVersion is the oldest server that serves networking.k8s.io/v1 ingresses.
var MinimumKubernetesVersion = version.Must(version.NewVersion("1.19.0"))

// GetVersion returns the version for cli, it gets it from "git describe --tags" or returns "dev" when doing simple go build
func GetVersion() string {
	if len(Version) == 0 {
		return "v1-dev"
	}
	return Version
}

// CheckKubernetesVersion fails if the server version gitVersion, e.g. v1.26.1+k3s1, is too old.
func CheckKubernetesVersion(gitVersion string) error {
	v, err := version.NewVersion(gitVersion)
	if err != nil {
		return fmt.Errorf("parse kubernetes version %q: %w", gitVersion, err)
	}
	if v.Core().LessThan(MinimumKubernetesVersion) {
		return fmt.Errorf("kubernetes %s is not supported, %s or later is required", gitVersion, MinimumKubernetesVersion)
	}
	return nil
}
