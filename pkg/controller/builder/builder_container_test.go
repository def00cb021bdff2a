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
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/intstr"
)

var _ = Describe("container builder", func() {
	It("should work well", func() {
		const name = "foo"
		image := "foo:latest"
		ports := []corev1.ContainerPort{
			{
				Name:          name,
				ContainerPort: 12345,
				Protocol:      corev1.ProtocolTCP,
			},
		}
		mounts := []corev1.VolumeMount{
			{
				Name:      name,
				MountPath: "/data/foo",
			},
		}
		resources := corev1.ResourceRequirements{
			Limits: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse("500m"),
				corev1.ResourceMemory: resource.MustParse("512Mi"),
			},
		}
		probe := corev1.Probe{
			ProbeHandler: corev1.ProbeHandler{
				HTTPGet: &corev1.HTTPGetAction{
					Path: "/",
					Port: intstr.FromInt(12345),
				},
			},
			PeriodSeconds: 5,
		}
		container := NewContainerBuilder(name).
			SetImage(image).
			AddPorts(ports...).
			AddEnv(corev1.EnvVar{Name: "A", Value: "b"}).
			AddEnvFromSecretKey("PASSWORD", "secret", "KEY").
			AddEnvFromConfigMap("cm").
			AddEnvFromSecret("secret").
			AddVolumeMounts(mounts...).
			SetResources(resources).
			SetReadinessProbe(probe).
			SetLivenessProbe(probe).
			GetObject()

		Expect(container.Name).Should(Equal(name))
		Expect(container.Image).Should(Equal(image))
		Expect(container.Ports).Should(Equal(ports))
		Expect(container.VolumeMounts).Should(Equal(mounts))
		Expect(container.Resources).Should(Equal(resources))
		Expect(*container.ReadinessProbe).Should(Equal(probe))
		Expect(*container.LivenessProbe).Should(Equal(probe))

		Expect(container.Env).Should(HaveLen(2))
		Expect(container.Env[0].Value).Should(Equal("b"))
		Expect(container.Env[1].ValueFrom.SecretKeyRef.Name).Should(Equal("secret"))
		Expect(container.Env[1].ValueFrom.SecretKeyRef.Key).Should(Equal("KEY"))

		Expect(container.EnvFrom).Should(HaveLen(2))
		Expect(container.EnvFrom[0].ConfigMapRef.Name).Should(Equal("cm"))
		Expect(container.EnvFrom[1].SecretRef.Name).Should(Equal("secret"))
	})
})
