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
	"context"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-password/password"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zortax/tub-modules/deployment/pkg/constant"
	intctrlutil "github.com/zortax/tub-modules/deployment/pkg/controllerutil"
)

// PasswordGenerator generates random strings, *password.Generator satisfies it.
type PasswordGenerator interface {
	Generate(length, numDigits, numSymbols int, noUpper, allowRepeat bool) (string, error)
}

// SecretPolicy describes the shape of a generated secret.
type SecretPolicy struct {
	Length    int
	NumDigits int
	// NumSymbols is always zero for the stack secrets, they end up unescaped in a connection URL.
	NumSymbols int
}

var (
	postgresPasswordPolicy = SecretPolicy{Length: constant.PostgresPasswordLength, NumDigits: constant.PostgresPasswordDigits}
	scraperAuthKeyPolicy   = SecretPolicy{Length: constant.ScraperAuthKeyLength, NumDigits: constant.ScraperAuthKeyDigits}
)

// GeneratedSecret is a random value produced once per build.
type GeneratedSecret struct {
	Name   string
	Policy SecretPolicy
	Value  string
	// Reused is set when Value was read back from the live app secret instead of generated.
	Reused bool
}

// String hides the value so a secret never ends up in a log line by accident.
func (s GeneratedSecret) String() string {
	return s.Name + ": [secret]"
}

// Conforms reports whether value could have been produced under the policy.
func (p SecretPolicy) Conforms(value string) bool {
	return len(value) == p.Length && IsAlphanumeric(value)
}

var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// IsAlphanumeric reports whether value consists of ASCII letters and digits only.
func IsAlphanumeric(value string) bool {
	return alphanumeric.MatchString(value)
}

func generateSecret(gen PasswordGenerator, name string, policy SecretPolicy) (GeneratedSecret, error) {
	value, err := gen.Generate(policy.Length, policy.NumDigits, policy.NumSymbols, false, true)
	if err != nil {
		return GeneratedSecret{}, errors.Wrapf(err, "generate %s", name)
	}
	return GeneratedSecret{Name: name, Policy: policy, Value: value}, nil
}

// existingSecretValues reads the values of the live app secret, nil if there is none.
func existingSecretValues(ctx context.Context, reader client.Reader) (map[string]string, error) {
	if reader == nil {
		return nil, nil
	}
	secret := &corev1.Secret{}
	key := client.ObjectKey{Namespace: constant.NamespaceName, Name: constant.AppSecretName}
	if err := reader.Get(ctx, key, secret); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, intctrlutil.WrapError(err, intctrlutil.ErrorTypeReconciliationFailure, "read secret %s", key)
	}
	values := make(map[string]string, len(secret.Data)+len(secret.StringData))
	for k, v := range secret.Data {
		values[k] = string(v)
	}
	for k, v := range secret.StringData {
		values[k] = v
	}
	return values, nil
}

// resolveSecret reuses existing[key] when present, otherwise generates a fresh value.
// A live value that does not conform to policy is refused rather than rotated, the database
// was initialised with it.
func resolveSecret(gen PasswordGenerator, existing map[string]string, key, name string,
	policy SecretPolicy) (GeneratedSecret, error) {
	if value := existing[key]; value != "" {
		if !policy.Conforms(value) {
			return GeneratedSecret{}, intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidConfiguration,
				"%s of secret %s/%s must be %d alphanumeric characters", key,
				constant.NamespaceName, constant.AppSecretName, policy.Length)
		}
		return GeneratedSecret{Name: name, Policy: policy, Value: value, Reused: true}, nil
	}
	return generateSecret(gen, name, policy)
}

func newDefaultPasswordGenerator() (PasswordGenerator, error) {
	return password.NewGenerator(nil)
}
