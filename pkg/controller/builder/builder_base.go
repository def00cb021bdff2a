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
	"github.com/zortax/tub-modules/deployment/pkg/generics"
)

// Manipulate common attributes here to save boilerplate code

type BaseBuilder[T generics.Object, PT generics.PObject[T], B any] struct {
	object          PT
	concreteBuilder *B
}

func (builder *BaseBuilder[T, PT, B]) init(namespace, name string, obj PT, b *B) {
	obj.SetNamespace(namespace)
	obj.SetName(name)
	builder.object = obj
	builder.concreteBuilder = b
}

func (builder *BaseBuilder[T, PT, B]) get() PT {
	return builder.object
}

func (builder *BaseBuilder[T, PT, B]) SetName(name string) *B {
	builder.object.SetName(name)
	return builder.concreteBuilder
}

func (builder *BaseBuilder[T, PT, B]) AddLabels(keysAndValues ...string) *B {
	builder.AddLabelsInMap(WithMap(keysAndValues...))
	return builder.concreteBuilder
}

func (builder *BaseBuilder[T, PT, B]) AddLabelsInMap(labels map[string]string) *B {
	if len(labels) == 0 {
		return builder.concreteBuilder
	}
	l := builder.object.GetLabels()
	if l == nil {
		l = make(map[string]string, 0)
	}
	for k, v := range labels {
		l[k] = v
	}
	builder.object.SetLabels(l)
	return builder.concreteBuilder
}

func (builder *BaseBuilder[T, PT, B]) AddAnnotations(keysAndValues ...string) *B {
	builder.AddAnnotationsInMap(WithMap(keysAndValues...))
	return builder.concreteBuilder
}

func (builder *BaseBuilder[T, PT, B]) AddAnnotationsInMap(annotations map[string]string) *B {
	if len(annotations) == 0 {
		return builder.concreteBuilder
	}
	a := builder.object.GetAnnotations()
	if a == nil {
		a = make(map[string]string, 0)
	}
	for k, v := range annotations {
		a[k] = v
	}
	builder.object.SetAnnotations(a)
	return builder.concreteBuilder
}

func (builder *BaseBuilder[T, PT, B]) GetObject() PT {
	return builder.object
}

func WithMap(keysAndValues ...string) map[string]string {
	// ignore mismatching for kvs
	m := make(map[string]string, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		m[keysAndValues[i]] = keysAndValues[i+1]
	}
	return m
}
