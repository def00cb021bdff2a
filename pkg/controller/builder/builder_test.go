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

package builder

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/api/resource"
)

var _ = Describe("object builders", func() {
	const (
		name = "foo"
		ns   = "default"
	)

	It("builds a deployment", func() {
		container := NewContainerBuilder("app").SetImage("bar").GetObject()
		template := NewPodTemplateBuilder().
			AddLabels("app", name).
			AddContainer(*container).
			AddVolumes(corev1.Volume{Name: "data"}).
			GetObject()
		deploy := NewDeploymentBuilder(ns, name).
			AddLabels("app", name).
			AddMatchLabel("app", name).
			AddMatchLabels("tier", "web").
			SetReplicas(3).
			SetTemplate(*template).
			GetObject()

		Expect(deploy.Name).Should(Equal(name))
		Expect(deploy.Namespace).Should(Equal(ns))
		Expect(deploy.Labels).Should(HaveKeyWithValue("app", name))
		Expect(deploy.Spec.Selector.MatchLabels).Should(Equal(map[string]string{"app": name, "tier": "web"}))
		Expect(*deploy.Spec.Replicas).Should(BeEquivalentTo(3))
		Expect(deploy.Spec.Template.Labels).Should(HaveKeyWithValue("app", name))
		Expect(deploy.Spec.Template.Spec.Containers).Should(HaveLen(1))
		Expect(deploy.Spec.Template.Spec.Volumes).Should(HaveLen(1))
	})

	It("builds a service", func() {
		port := corev1.ServicePort{Port: 80, Protocol: corev1.ProtocolTCP}
		svc := NewServiceBuilder(ns, name).
			AddSelector("app", name).
			AddPorts(port).
			SetType(corev1.ServiceTypeClusterIP).
			GetObject()
		Expect(svc.Spec.Selector).Should(Equal(map[string]string{"app": name}))
		Expect(svc.Spec.Ports).Should(Equal([]corev1.ServicePort{port}))
		Expect(svc.Spec.Type).Should(Equal(corev1.ServiceTypeClusterIP))
	})

	It("builds config maps, secrets and pvcs", func() {
		cm := NewConfigMapBuilder(ns, name).PutData("a", "1").PutData("b", "2").GetObject()
		Expect(cm.Data).Should(Equal(map[string]string{"a": "1", "b": "2"}))

		secret := NewSecretBuilder(ns, name).
			SetType(corev1.SecretTypeOpaque).
			PutStringData("k", "v").
			GetObject()
		Expect(secret.Type).Should(Equal(corev1.SecretTypeOpaque))
		Expect(secret.StringData).Should(HaveKeyWithValue("k", "v"))

		pvc := NewPVCBuilder(ns, name).
			SetAccessModes(corev1.ReadWriteOnce).
			SetStorageRequest(resource.MustParse("10Gi")).
			GetObject()
		Expect(pvc.Spec.AccessModes).Should(ConsistOf(corev1.ReadWriteOnce))
		storage := pvc.Spec.Resources.Requests[corev1.ResourceStorage]
		Expect(storage.String()).Should(Equal("10Gi"))
	})

	It("builds a namespace without namespace", func() {
		namespace := NewNamespaceBuilder(name).AddLabels("a", "b", "dangling").GetObject()
		Expect(namespace.Name).Should(Equal(name))
		Expect(namespace.Namespace).Should(BeEmpty())
		Expect(namespace.Labels).Should(Equal(map[string]string{"a": "b"}))
	})

	It("builds an ingress", func() {
		ing := NewIngressBuilder(ns, name).
			AddAnnotations("cert-manager.io/cluster-issuer", "letsencrypt").
			SetIngressClassName("nginx").
			AddTLS("tls", "example.com").
			AddServiceRule("example.com", "/", networkingv1.PathTypePrefix, "svc", 80).
			GetObject()
		Expect(ing.Annotations).Should(HaveKeyWithValue("cert-manager.io/cluster-issuer", "letsencrypt"))
		Expect(*ing.Spec.IngressClassName).Should(Equal("nginx"))
		Expect(ing.Spec.TLS).Should(Equal([]networkingv1.IngressTLS{{Hosts: []string{"example.com"}, SecretName: "tls"}}))
		Expect(ing.Spec.Rules).Should(HaveLen(1))
		path := ing.Spec.Rules[0].HTTP.Paths[0]
		Expect(*path.PathType).Should(Equal(networkingv1.PathTypePrefix))
		Expect(path.Backend.Service.Name).Should(Equal("svc"))
		Expect(path.Backend.Service.Port.Number).Should(BeEquivalentTo(80))
	})
})
