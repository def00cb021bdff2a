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

type ServiceBuilder struct {
	BaseBuilder[corev1.Service, *corev1.Service, ServiceBuilder]
}

func NewServiceBuilder(namespace, name string) *ServiceBuilder {
	builder := &ServiceBuilder{}
	builder.init(namespace, name, &corev1.Service{}, builder)
	return builder
}

func (builder *ServiceBuilder) AddSelector(key, value string) *ServiceBuilder {
	return builder.AddSelectorsInMap(map[string]string{key: value})
}

func (builder *ServiceBuilder) AddSelectors(keyValues ...string) *ServiceBuilder {
	return builder.AddSelectorsInMap(WithMap(keyValues...))
}

func (builder *ServiceBuilder) AddSelectorsInMap(selectors map[string]string) *ServiceBuilder {
	selector := builder.get().Spec.Selector
	if selector == nil {
		selector = make(map[string]string, len(selectors))
	}
	for k, v := range selectors {
		selector[k] = v
	}
	builder.get().Spec.Selector = selector
	return builder
}

func (builder *ServiceBuilder) AddPorts(ports ...corev1.ServicePort) *ServiceBuilder {
	builder.get().Spec.Ports = append(builder.get().Spec.Ports, ports...)
	return builder
}

func (builder *ServiceBuilder) SetType(serviceType corev1.ServiceType) *ServiceBuilder {
	builder.get().Spec.Type = serviceType
	return builder
}
