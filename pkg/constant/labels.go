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

package constant

const (
	AppLabelKey = "app"

	// PostgresAppLabelValue selects the database pods.
	PostgresAppLabelValue = "postgres"
	// AppLabelValue selects the application pods.
	AppLabelValue = "tub-modules"

	AppManagedByLabelKey = "app.kubernetes.io/managed-by"
	AppPartOfLabelKey    = "app.kubernetes.io/part-of"
)

const (
	CertManagerClusterIssuerAnnotationKey = "cert-manager.io/cluster-issuer"

	// RunIDAnnotationKey records the build that last wrote an object.
	RunIDAnnotationKey = "tub-modules.zortax.de/run-id"
)

// GetStackWellKnownLabels returns the labels stamped on every object of the stack.
func GetStackWellKnownLabels() map[string]string {
	return map[string]string{
		AppManagedByLabelKey: FieldOwner,
		AppPartOfLabelKey:    ProjectName,
	}
}
