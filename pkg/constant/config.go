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

// config keys
const (
	ImageTagKey          = "imageTag"
	ImageRegistryKey     = "imageRegistry"
	IngressHostKey       = "ingressHost"
	TLSSecretNameKey     = "tlsSecretName"
	CertManagerIssuerKey = "certManagerIssuer"
	AppReplicasKey       = "appReplicas"

	// StackConfigSection is the top level section of a stack config file holding the config keys.
	StackConfigSection = "config"

	// EnvPrefix is the prefix of environment variables overriding config keys, e.g. TUB_IMAGETAG.
	EnvPrefix = "TUB"

	// PassphraseEnvName holds the passphrase that encrypts secret outputs in the local state store.
	PassphraseEnvName = "TUB_CONFIG_PASSPHRASE"
)

// config defaults
const (
	DefaultImageRegistry     = "ghcr.io/zortax/tub-modules"
	DefaultIngressHost       = "tub.zortax.de"
	DefaultTLSSecretName     = "tub-modules-tls"
	DefaultCertManagerIssuer = "letsencrypt"
	DefaultAppReplicas       = 1
	DefaultStackName         = "prod"
)
