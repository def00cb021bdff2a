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
	// ProjectName is the name of the stack project, also used as the config key namespace.
	ProjectName = "tub-modules"

	// FieldOwner is the field manager recorded on every object written to the cluster.
	FieldOwner = "tubctl"

	NamespaceName      = "tub-modules"
	AppConfigMapName   = "app-config"
	AppSecretName      = "app-secret"
	PostgresPVCName    = "postgres-pvc"
	PostgresName       = "postgres"
	PostgresSvcName    = "postgres-service"
	AppName            = "app"
	AppSvcName         = "app-service"
	AppIngressName     = "app-ingress"
	PostgresVolumeName = "postgres-storage"
)

const (
	PostgresImage       = "postgres:16-alpine"
	PostgresPort        = 5432
	PostgresPortName    = "postgres"
	PostgresUser        = "postgres"
	PostgresDatabase    = "tub_modules"
	PostgresMountPath   = "/var/lib/postgresql/data"
	PostgresDataDir     = "/var/lib/postgresql/data/pgdata"
	PostgresStorageSize = "10Gi"

	AppContainerName = "app"
	AppPort          = 3000
	AppPortName      = "http"
	AppSvcPort       = 80

	IngressClassName = "nginx"
)

// secret keys of app-secret
const (
	DatabasePasswordKey = "DATABASE_PASSWORD"
	DatabaseURLKey      = "DATABASE_URL"
	ScraperAuthKeyKey   = "SCRAPER_AUTH_KEY"
)

// generated secret names and policies
const (
	PostgresPasswordName   = "postgres-password"
	PostgresPasswordLength = 32
	PostgresPasswordDigits = 8

	ScraperAuthKeyName   = "scraper-auth-key"
	ScraperAuthKeyLength = 64
	ScraperAuthKeyDigits = 16
)
