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
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/zortax/tub-modules/deployment/pkg/constant"
	"github.com/zortax/tub-modules/deployment/pkg/controller/model"
	intctrlutil "github.com/zortax/tub-modules/deployment/pkg/controllerutil"
)

type fakeEngine struct {
	applied []string
	deleted []string
	failOn  string
	err     error
}

func (f *fakeEngine) Apply(_ context.Context, obj client.Object) error {
	if obj.GetName() == f.failOn {
		return f.err
	}
	f.applied = append(f.applied, obj.GetName())
	return nil
}

func (f *fakeEngine) Delete(_ context.Context, obj client.Object) error {
	if obj.GetName() == f.failOn {
		return f.err
	}
	f.deleted = append(f.deleted, obj.GetName())
	return nil
}

var _ = Describe("submit", func() {
	var (
		ctx context.Context
		cli client.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		cli = fake.NewClientBuilder().WithScheme(model.Scheme()).Build()
	})

	buildGraph := func(cfg Config) *ResourceGraph {
		g, err := Build(ctx, cfg)
		Expect(err).ShouldNot(HaveOccurred())
		return g
	}

	Context("with a kube engine", func() {
		It("creates every object and returns the outputs", func() {
			g := buildGraph(Config{ImageTag: "v1.2.3"})
			outputs, err := Submit(ctx, NewKubeEngine(cli, GinkgoLogr), g, nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(outputs).Should(Equal(g.Outputs()))

			key := func(name string) client.ObjectKey {
				return client.ObjectKey{Namespace: constant.NamespaceName, Name: name}
			}
			Expect(cli.Get(ctx, client.ObjectKey{Name: constant.NamespaceName}, &corev1.Namespace{})).Should(Succeed())
			Expect(cli.Get(ctx, key(constant.AppConfigMapName), &corev1.ConfigMap{})).Should(Succeed())
			Expect(cli.Get(ctx, key(constant.AppSecretName), &corev1.Secret{})).Should(Succeed())
			Expect(cli.Get(ctx, key(constant.PostgresPVCName), &corev1.PersistentVolumeClaim{})).Should(Succeed())
			Expect(cli.Get(ctx, key(constant.PostgresName), &appsv1.Deployment{})).Should(Succeed())
			Expect(cli.Get(ctx, key(constant.PostgresSvcName), &corev1.Service{})).Should(Succeed())
			Expect(cli.Get(ctx, key(constant.AppSvcName), &corev1.Service{})).Should(Succeed())
			Expect(cli.Get(ctx, key(constant.AppIngressName), &networkingv1.Ingress{})).Should(Succeed())
			app := &appsv1.Deployment{}
			Expect(cli.Get(ctx, key(constant.AppName), app)).Should(Succeed())
			Expect(app.Spec.Template.Spec.Containers[0].Image).Should(Equal("ghcr.io/zortax/tub-modules:v1.2.3"))
		})

		It("updates existing objects in place", func() {
			Expect(cli.Create(ctx, &corev1.Service{
				ObjectMeta: metav1.ObjectMeta{
					Namespace: constant.NamespaceName,
					Name:      constant.PostgresSvcName,
					Labels:    map[string]string{"keep": "me"},
				},
				Spec: corev1.ServiceSpec{ClusterIP: "10.0.0.10", ClusterIPs: []string{"10.0.0.10"}},
			})).Should(Succeed())

			_, err := Submit(ctx, NewKubeEngine(cli, GinkgoLogr), buildGraph(Config{ImageTag: "v1"}), nil)
			Expect(err).ShouldNot(HaveOccurred())
			_, err = Submit(ctx, NewKubeEngine(cli, GinkgoLogr), buildGraph(Config{ImageTag: "v2", AppReplicas: 2}), nil)
			Expect(err).ShouldNot(HaveOccurred())

			app := &appsv1.Deployment{}
			Expect(cli.Get(ctx, client.ObjectKey{Namespace: constant.NamespaceName, Name: constant.AppName}, app)).Should(Succeed())
			Expect(app.Spec.Template.Spec.Containers[0].Image).Should(Equal("ghcr.io/zortax/tub-modules:v2"))
			Expect(*app.Spec.Replicas).Should(Equal(int32(2)))

			svc := &corev1.Service{}
			Expect(cli.Get(ctx, client.ObjectKey{Namespace: constant.NamespaceName, Name: constant.PostgresSvcName}, svc)).Should(Succeed())
			Expect(svc.Spec.ClusterIP).Should(Equal("10.0.0.10"))
			Expect(svc.Spec.Selector).Should(HaveKeyWithValue("app", "postgres"))
			Expect(svc.Labels).Should(HaveKeyWithValue("keep", "me"))
			Expect(svc.Labels).Should(HaveKeyWithValue(constant.AppPartOfLabelKey, constant.ProjectName))
		})

		It("destroys every object and tolerates missing ones", func() {
			g := buildGraph(Config{ImageTag: "v1"})
			_, err := Submit(ctx, NewKubeEngine(cli, GinkgoLogr), g, nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(Destroy(ctx, NewKubeEngine(cli, GinkgoLogr), g, nil)).Should(Succeed())

			deployments := &appsv1.DeploymentList{}
			Expect(cli.List(ctx, deployments, client.InNamespace(constant.NamespaceName))).Should(Succeed())
			Expect(deployments.Items).Should(BeEmpty())

			By("destroying again")
			Expect(Destroy(ctx, NewKubeEngine(cli, GinkgoLogr), buildGraph(Config{ImageTag: "v1"}), nil)).Should(Succeed())
		})
	})

	Context("with a failing engine", func() {
		It("stops at the first failure and keeps the engine error", func() {
			forbidden := apierrors.NewForbidden(schema.GroupResource{Group: "apps", Resource: "deployments"},
				constant.PostgresName, errors.New("denied"))
			engine := &fakeEngine{failOn: constant.PostgresName, err: forbidden}
			_, err := Submit(ctx, engine, buildGraph(Config{ImageTag: "v1"}), nil)
			Expect(err).Should(HaveOccurred())
			Expect(intctrlutil.IsReconciliationFailure(err)).Should(BeTrue())
			Expect(apierrors.IsForbidden(err)).Should(BeTrue())
			Expect(errors.Is(err, forbidden)).Should(BeTrue())
			Expect(err.Error()).Should(Equal(forbidden.Error()))
			Expect(engine.applied).ShouldNot(ContainElements(constant.PostgresSvcName, constant.AppName,
				constant.AppSvcName, constant.AppIngressName))
			Expect(engine.applied).Should(ContainElements(constant.NamespaceName, constant.AppSecretName, constant.PostgresPVCName))
		})

		It("submits nothing without an image tag", func() {
			engine := &fakeEngine{}
			g, err := Build(ctx, Config{})
			Expect(intctrlutil.IsMissingConfiguration(err)).Should(BeTrue())
			Expect(g).Should(BeNil())
			_, err = Submit(ctx, engine, g, nil)
			Expect(intctrlutil.IsInvalidGraph(err)).Should(BeTrue())
			Expect(engine.applied).Should(BeEmpty())
		})

		It("reports every object to the hook", func() {
			engine := &fakeEngine{}
			var actions []model.Action
			hook := func(obj client.Object, action model.Action, err error) {
				Expect(err).ShouldNot(HaveOccurred())
				actions = append(actions, action)
			}
			g := buildGraph(Config{ImageTag: "v1"})
			_, err := Submit(ctx, engine, g, hook)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(actions).Should(HaveLen(9))
			Expect(engine.applied[0]).Should(Equal(constant.NamespaceName))
			Expect(engine.applied[8]).Should(Equal(constant.AppIngressName))

			Expect(Destroy(ctx, engine, g, hook)).Should(Succeed())
			Expect(actions).Should(HaveLen(18))
			Expect(actions[17]).Should(Equal(model.DELETE))
			Expect(engine.deleted[0]).Should(Equal(constant.AppIngressName))
			Expect(engine.deleted[8]).Should(Equal(constant.NamespaceName))
		})

		It("keeps the database claim and its namespace", func() {
			engine := &fakeEngine{}
			Expect(Destroy(ctx, engine, buildGraph(Config{ImageTag: "v1"}), nil, KeepData())).Should(Succeed())
			Expect(engine.deleted).Should(HaveLen(7))
			Expect(engine.deleted).ShouldNot(ContainElements(constant.PostgresPVCName))
			Expect(engine.deleted).ShouldNot(ContainElements(constant.NamespaceName))
			Expect(engine.deleted).Should(ContainElements(constant.PostgresName, constant.AppSecretName))
		})

		It("stops when the context is done", func() {
			engine := &fakeEngine{}
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := Submit(cancelled, engine, buildGraph(Config{ImageTag: "v1"}), nil)
			Expect(intctrlutil.IsReconciliationFailure(err)).Should(BeTrue())
			Expect(errors.Is(err, context.Canceled)).Should(BeTrue())
			Expect(engine.applied).Should(BeEmpty())
		})
	})
})
