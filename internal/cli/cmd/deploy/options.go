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
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zortax/tub-modules/deployment/pkg/constant"
	"github.com/zortax/tub-modules/deployment/pkg/controller/model"
	"github.com/zortax/tub-modules/deployment/pkg/stack"
	"github.com/zortax/tub-modules/deployment/pkg/stack/state"
)

const passphraseKey = "passphrase"

// Options are shared by all stack commands.
type Options struct {
	genericclioptions.IOStreams

	Stack      string
	ConfigFile string
	StateFile  string
	Verbose    bool

	Viper  *viper.Viper
	Logger logr.Logger

	// NewClient returns a client of the target cluster.
	NewClient func() (client.Client, error)
	// ServerVersion returns the git version of the target cluster, nil skips the version check.
	ServerVersion func() (string, error)

	stateOptions []state.Option
}

func NewOptions(streams genericclioptions.IOStreams) *Options {
	return &Options{
		IOStreams: streams,
		Stack:     constant.DefaultStackName,
		Viper:     viper.New(),
		Logger:    logr.Discard(),
	}
}

// AddFlags adds the global flags and binds the config key flags to the options' viper.
func (o *Options) AddFlags(flags *pflag.FlagSet) error {
	flags.StringVar(&o.Stack, "stack", o.Stack, "The name of the stack, selects the config file Pulumi.<stack>.yaml and the recorded state")
	flags.StringVar(&o.ConfigFile, "config-file", "", "Path of the stack config file, defaults to Pulumi.<stack>.yaml in the working directory or ~/.tubctl")
	flags.StringVar(&o.StateFile, "state-file", "", "Path of the local state file, defaults to ~/.tubctl/state.db")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false, "Print debug logs")

	flags.String("image-tag", "", "Tag of the application image (required)")
	flags.String("image-registry", "", fmt.Sprintf("Registry of the application image (default %q)", constant.DefaultImageRegistry))
	flags.String("ingress-host", "", fmt.Sprintf("Public host name of the application (default %q)", constant.DefaultIngressHost))
	flags.String("tls-secret-name", "", fmt.Sprintf("Secret holding the TLS certificate of the ingress (default %q)", constant.DefaultTLSSecretName))
	flags.String("cert-manager-issuer", "", fmt.Sprintf("Cluster issuer requesting the certificate (default %q)", constant.DefaultCertManagerIssuer))
	flags.Int32("app-replicas", 0, fmt.Sprintf("Number of application replicas (default %d)", constant.DefaultAppReplicas))

	for key, flag := range map[string]string{
		constant.ImageTagKey:          "image-tag",
		constant.ImageRegistryKey:     "image-registry",
		constant.IngressHostKey:       "ingress-host",
		constant.TLSSecretNameKey:     "tls-secret-name",
		constant.CertManagerIssuerKey: "cert-manager-issuer",
		constant.AppReplicasKey:       "app-replicas",
	} {
		if err := o.Viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// InitConfig reads environment variables and the stack config file.
func (o *Options) InitConfig() error {
	v := o.Viper
	v.SetEnvPrefix(constant.EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv(passphraseKey, constant.PassphraseEnvName); err != nil {
		return err
	}
	if o.ConfigFile != "" {
		v.SetConfigFile(o.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", o.ConfigFile, err)
		}
		return nil
	}
	v.SetConfigName(fmt.Sprintf("Pulumi.%s", o.Stack))
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.tubctl/")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	o.Logger.V(1).Info("using config file", "file", v.ConfigFileUsed())
	return nil
}

// LoadConfig returns the resolved configuration of the stack.
func (o *Options) LoadConfig() (stack.Config, error) {
	cfg, err := stack.LoadConfig(o.Viper)
	if err != nil {
		return cfg, err
	}
	return cfg.Resolve()
}

func (o *Options) passphrase() string {
	return o.Viper.GetString(passphraseKey)
}

func (o *Options) openStore() (*state.Store, error) {
	file := o.StateFile
	if file == "" {
		var err error
		if file, err = state.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return state.Open(file, o.stateOptions...)
}

// NewClientFunc returns a constructor of controller-runtime clients for the cluster selected by flags.
func NewClientFunc(flags *genericclioptions.ConfigFlags) func() (client.Client, error) {
	return func() (client.Client, error) {
		restConfig, err := flags.ToRESTConfig()
		if err != nil {
			return nil, err
		}
		return client.New(restConfig, client.Options{Scheme: model.Scheme()})
	}
}

// NewServerVersionFunc returns a function asking the cluster selected by flags for its version.
func NewServerVersionFunc(flags *genericclioptions.ConfigFlags) func() (string, error) {
	return func() (string, error) {
		dc, err := flags.ToDiscoveryClient()
		if err != nil {
			return "", err
		}
		info, err := dc.ServerVersion()
		if err != nil {
			return "", err
		}
		return info.GitVersion, nil
	}
}
