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
	corev1 "k8s.io/api/core/v1"
)

// PodTemplateBuilder builds the pod template embedded in a workload.
type PodTemplateBuilder struct {
	template *corev1.PodTemplateSpec
}

func NewPodTemplateBuilder() *PodTemplateBuilder {
	return &PodTemplateBuilder{
		template: &corev1.PodTemplateSpec{},
	}
}

func (builder *PodTemplateBuilder) AddLabels(keysAndValues ...string) *PodTemplateBuilder {
	return builder.AddLabelsInMap(WithMap(keysAndValues...))
}

func (builder *PodTemplateBuilder) AddLabelsInMap(labels map[string]string) *PodTemplateBuilder {
	l := builder.template.Labels
	if l == nil {
		l = make(map[string]string, len(labels))
	}
	for k, v := range labels {
		l[k] = v
	}
	builder.template.Labels = l
	return builder
}

func (builder *PodTemplateBuilder) AddContainer(container corev1.Container) *PodTemplateBuilder {
	builder.template.Spec.Containers = append(builder.template.Spec.Containers, container)
	return builder
}

func (builder *PodTemplateBuilder) AddVolumes(volumes ...corev1.Volume) *PodTemplateBuilder {
	builder.template.Spec.Volumes = append(builder.template.Spec.Volumes, volumes...)
	return builder
}

func (builder *PodTemplateBuilder) SetServiceAccountName(serviceAccountName string) *PodTemplateBuilder {
	builder.template.Spec.ServiceAccountName = serviceAccountName
	return builder
}

func (builder *PodTemplateBuilder) GetObject() *corev1.PodTemplateSpec {
	return builder.template
}
