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
	networkingv1 "k8s.io/api/networking/v1"
)

type IngressBuilder struct {
	BaseBuilder[networkingv1.Ingress, *networkingv1.Ingress, IngressBuilder]
}

func NewIngressBuilder(namespace, name string) *IngressBuilder {
	builder := &IngressBuilder{}
	builder.init(namespace, name, &networkingv1.Ingress{}, builder)
	return builder
}

func (builder *IngressBuilder) SetIngressClassName(className string) *IngressBuilder {
	builder.get().Spec.IngressClassName = &className
	return builder
}

func (builder *IngressBuilder) AddTLS(secretName string, hosts ...string) *IngressBuilder {
	builder.get().Spec.TLS = append(builder.get().Spec.TLS, networkingv1.IngressTLS{
		Hosts:      hosts,
		SecretName: secretName,
	})
	return builder
}

// AddServiceRule routes path of host to the given port of a service.
func (builder *IngressBuilder) AddServiceRule(host, path string, pathType networkingv1.PathType,
	serviceName string, servicePort int32) *IngressBuilder {
	rule := networkingv1.IngressRule{
		Host: host,
		IngressRuleValue: networkingv1.IngressRuleValue{
			HTTP: &networkingv1.HTTPIngressRuleValue{
				Paths: []networkingv1.HTTPIngressPath{
					{
						Path:     path,
						PathType: &pathType,
						Backend: networkingv1.IngressBackend{
							Service: &networkingv1.IngressServiceBackend{
								Name: serviceName,
								Port: networkingv1.ServiceBackendPort{
									Number: servicePort,
								},
							},
						},
					},
				},
			},
		},
	}
	builder.get().Spec.Rules = append(builder.get().Spec.Rules, rule)
	return builder
}
