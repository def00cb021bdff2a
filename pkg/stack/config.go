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

package stack

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/go-playground/validator.v9"

	"github.com/zortax/tub-modules/deployment/pkg/constant"
	intctrlutil "github.com/zortax/tub-modules/deployment/pkg/controllerutil"
)

// Config is the configuration of one stack. Zero values of optional fields mean "use the default".
type Config struct {
	ImageTag          string `json:"imageTag" validate:"required"`
	ImageRegistry     string `json:"imageRegistry" validate:"required"`
	IngressHost       string `json:"ingressHost" validate:"required,hostname_rfc1123"`
	TLSSecretName     string `json:"tlsSecretName" validate:"required"`
	CertManagerIssuer string `json:"certManagerIssuer" validate:"required"`
	AppReplicas       int32  `json:"appReplicas" validate:"gte=1"`
}

var check = validator.New()

func init() {
	check.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
}

// LoadConfig reads the raw config values from v. A key is looked up as is (flag, environment,
// top level key of the stack file) and then as "<project>:<key>" under the "config" section
// of the stack file. Defaults are not applied here.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		ImageTag:          lookup(v, constant.ImageTagKey),
		ImageRegistry:     lookup(v, constant.ImageRegistryKey),
		IngressHost:       lookup(v, constant.IngressHostKey),
		TLSSecretName:     lookup(v, constant.TLSSecretNameKey),
		CertManagerIssuer: lookup(v, constant.CertManagerIssuerKey),
	}
	if replicas := lookup(v, constant.AppReplicasKey); replicas != "" {
		n, err := strconv.ParseInt(replicas, 10, 32)
		if err != nil {
			return cfg, intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidConfiguration,
				"invalid value %q for config key %q: not an integer", replicas, constant.AppReplicasKey)
		}
		cfg.AppReplicas = int32(n)
	}
	return cfg, nil
}

func lookup(v *viper.Viper, key string) string {
	if v.IsSet(key) {
		return strings.TrimSpace(v.GetString(key))
	}
	namespaced := fmt.Sprintf("%s.%s:%s", constant.StackConfigSection, constant.ProjectName, key)
	if v.IsSet(namespaced) {
		return strings.TrimSpace(v.GetString(namespaced))
	}
	return ""
}

// Resolve returns a copy of c with defaults applied, failing if the result is incomplete or invalid.
func (c Config) Resolve() (Config, error) {
	if c.AppReplicas < 0 {
		return c, intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidConfiguration,
			"invalid value %d for config key %q: must not be negative", c.AppReplicas, constant.AppReplicasKey)
	}
	resolved := c
	setDefault(&resolved.ImageRegistry, constant.DefaultImageRegistry)
	setDefault(&resolved.IngressHost, constant.DefaultIngressHost)
	setDefault(&resolved.TLSSecretName, constant.DefaultTLSSecretName)
	setDefault(&resolved.CertManagerIssuer, constant.DefaultCertManagerIssuer)
	if resolved.AppReplicas == 0 {
		resolved.AppReplicas = constant.DefaultAppReplicas
	}
	if err := resolved.validate(); err != nil {
		return c, err
	}
	return resolved, nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func (c Config) validate() error {
	err := check.Struct(c)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return intctrlutil.WrapError(err, intctrlutil.ErrorTypeInvalidConfiguration, "validate config")
	}
	fe := errs[0]
	if fe.Tag() == "required" {
		return intctrlutil.NewMissingConfiguration(fe.Field())
	}
	return intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidConfiguration,
		"invalid value %q for config key %q: failed %q validation", fmt.Sprint(fe.Value()), fe.Field(), fe.Tag())
}

// Image returns the application image reference.
func (c Config) Image() string {
	return fmt.Sprintf("%s:%s", c.ImageRegistry, c.ImageTag)
}

// IngressURL returns the public URL of the application.
func (c Config) IngressURL() string {
	return "https://" + c.IngressHost
}
