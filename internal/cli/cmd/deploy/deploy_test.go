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
	"bytes"
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/zortax/tub-modules/deployment/internal/cli/printer"
	"github.com/zortax/tub-modules/deployment/pkg/constant"
	"github.com/zortax/tub-modules/deployment/pkg/controller/model"
	intctrlutil "github.com/zortax/tub-modules/deployment/pkg/controllerutil"
	"github.com/zortax/tub-modules/deployment/pkg/stack"
	"github.com/zortax/tub-modules/deployment/pkg/stack/state"
)

var _ = Describe("stack commands", func() {
	var (
		ctx     context.Context
		streams genericclioptions.IOStreams
		in      *bytes.Buffer
		out     *bytes.Buffer
		dir     string
		cli     client.Client
		o       *Options
	)

	BeforeEach(func() {
		ctx = context.Background()
		streams, in, out, _ = genericclioptions.NewTestIOStreams()
		var err error
		dir, err = os.MkdirTemp("", "tubctl-")
		Expect(err).ShouldNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		cli = fake.NewClientBuilder().WithScheme(model.Scheme()).Build()
		o = NewOptions(streams)
		o.StateFile = filepath.Join(dir, "state.db")
		o.stateOptions = []state.Option{state.WithScryptWorkFactor(10)}
		o.NewClient = func() (client.Client, error) { return cli, nil }
		o.ServerVersion = func() (string, error) { return "v1.26.1", nil }
		o.Viper.Set(constant.ImageTagKey, "v1.2.3")
	})

	newUp := func() *upOptions {
		return &upOptions{Options: o, format: printer.Table}
	}

	liveSecret := func() *corev1.Secret {
		secret := &corev1.Secret{}
		Expect(cli.Get(ctx, client.ObjectKey{Namespace: constant.NamespaceName, Name: constant.AppSecretName}, secret)).Should(Succeed())
		return secret
	}

	livePassword := func() string {
		secret := liveSecret()
		if v, ok := secret.Data[constant.DatabasePasswordKey]; ok {
			return string(v)
		}
		return secret.StringData[constant.DatabasePasswordKey]
	}

	Context("up", func() {
		It("applies the stack and records the outputs", func() {
			Expect(newUp().run(ctx)).Should(Succeed())
			Expect(out.String()).Should(ContainSubstring("https://tub.zortax.de"))
			Expect(out.String()).Should(ContainSubstring(stack.MaskedValue))
			Expect(out.String()).ShouldNot(ContainSubstring(livePassword()))

			store, err := o.openStore()
			Expect(err).ShouldNot(HaveOccurred())
			defer store.Close()
			record, err := store.Load(ctx, constant.DefaultStackName)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(record.Sealed).Should(BeNil())
		})

		It("keeps the generated secrets across runs", func() {
			Expect(newUp().run(ctx)).Should(Succeed())
			password := livePassword()
			Expect(password).Should(HaveLen(32))

			Expect(newUp().run(ctx)).Should(Succeed())
			Expect(livePassword()).Should(Equal(password))
		})

		It("submits nothing without an image tag", func() {
			o.Viper = NewOptions(streams).Viper
			err := newUp().run(ctx)
			Expect(intctrlutil.IsMissingConfiguration(err)).Should(BeTrue())

			namespaces := &corev1.NamespaceList{}
			Expect(cli.List(ctx, namespaces)).Should(Succeed())
			Expect(namespaces.Items).Should(BeEmpty())
		})

		It("refuses an old cluster", func() {
			o.ServerVersion = func() (string, error) { return "v1.18.3", nil }
			Expect(newUp().run(ctx)).ShouldNot(Succeed())

			u := newUp()
			u.skipVersionCheck = true
			Expect(u.run(ctx)).Should(Succeed())
		})
	})

	Context("output", func() {
		It("fails before the first up", func() {
			err := (&outputOptions{Options: o, format: printer.Table}).run(ctx)
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("no outputs recorded"))
		})

		It("reveals secrets with the passphrase", func() {
			o.Viper.Set(passphraseKey, "passphrase")
			Expect(newUp().run(ctx)).Should(Succeed())
			password := livePassword()

			out.Reset()
			Expect((&outputOptions{Options: o, format: printer.YAML, showSecrets: true}).run(ctx)).Should(Succeed())
			Expect(out.String()).Should(ContainSubstring("postgresPasswordOutput: " + password))
			Expect(out.String()).Should(ContainSubstring("databaseUrl: " + stack.DatabaseURL(password)))

			out.Reset()
			Expect((&outputOptions{Options: o, format: printer.YAML}).run(ctx)).Should(Succeed())
			Expect(out.String()).ShouldNot(ContainSubstring(password))
		})
	})

	Context("preview", func() {
		It("prints the resources without a cluster", func() {
			o.NewClient = nil
			Expect((&previewOptions{Options: o, format: printer.YAML}).run(ctx)).Should(Succeed())
			Expect(out.String()).Should(ContainSubstring("kind: Namespace"))
			Expect(out.String()).Should(ContainSubstring("image: ghcr.io/zortax/tub-modules:v1.2.3"))
			Expect(out.String()).Should(ContainSubstring("kind: Ingress"))
		})
	})

	Context("destroy", func() {
		It("deletes the stack after confirmation", func() {
			Expect(newUp().run(ctx)).Should(Succeed())

			in.WriteString(constant.DefaultStackName + "\n")
			Expect((&destroyOptions{Options: o}).run(ctx)).Should(Succeed())
			namespaces := &corev1.NamespaceList{}
			Expect(cli.List(ctx, namespaces)).Should(Succeed())
			Expect(namespaces.Items).Should(BeEmpty())

			err := (&outputOptions{Options: o, format: printer.Table}).run(ctx)
			Expect(err).Should(HaveOccurred())
		})

		It("keeps the stack without confirmation", func() {
			Expect(newUp().run(ctx)).Should(Succeed())
			in.WriteString("staging\n")
			Expect((&destroyOptions{Options: o}).run(ctx)).ShouldNot(Succeed())
			Expect(liveSecret()).ShouldNot(BeNil())
		})

		It("keeps the database volume with --keep-data", func() {
			Expect(newUp().run(ctx)).Should(Succeed())
			Expect((&destroyOptions{Options: o, autoApprove: true, keepData: true}).run(ctx)).Should(Succeed())
			pvc := &corev1.PersistentVolumeClaim{}
			Expect(cli.Get(ctx, client.ObjectKey{Namespace: constant.NamespaceName, Name: constant.PostgresPVCName}, pvc)).Should(Succeed())
			err := cli.Get(ctx, client.ObjectKey{Namespace: constant.NamespaceName, Name: constant.AppSecretName}, &corev1.Secret{})
			Expect(apierrors.IsNotFound(err)).Should(BeTrue())
		})

		It("does not need an image tag", func() {
			o.Viper = NewOptions(streams).Viper
			Expect((&destroyOptions{Options: o, autoApprove: true}).run(ctx)).Should(Succeed())
		})
	})

	Context("config file", func() {
		It("reads the stack file selected by --stack", func() {
			file := filepath.Join(dir, "Pulumi.staging.yaml")
			Expect(os.WriteFile(file, []byte(`
config:
  "tub-modules:imageTag": v9.9.9
  "tub-modules:ingressHost": staging.example.com
`), 0600)).Should(Succeed())

			o.Viper = NewOptions(streams).Viper
			o.Stack = "staging"
			o.ConfigFile = file
			Expect(o.InitConfig()).Should(Succeed())
			cfg, err := o.LoadConfig()
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cfg.Image()).Should(Equal("ghcr.io/zortax/tub-modules:v9.9.9"))
			Expect(cfg.IngressURL()).Should(Equal("https://staging.example.com"))
		})

		It("tolerates a missing stack file", func() {
			o.Stack = "does-not-exist"
			Expect(o.InitConfig()).Should(Succeed())
		})

		It("fails on a missing explicit file", func() {
			o.ConfigFile = filepath.Join(dir, "missing.yaml")
			Expect(o.InitConfig()).ShouldNot(Succeed())
		})
	})
})
