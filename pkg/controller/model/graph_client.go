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

package model

import (
	"fmt"
	"reflect"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zortax/tub-modules/deployment/pkg/controller/graph"
	intctrlutil "github.com/zortax/tub-modules/deployment/pkg/controllerutil"
)

type GraphWriter interface {
	// Apply saves the object obj in the underlying DAG, to be created or updated in the execute phase.
	Apply(dag *graph.DAG, obj client.Object)

	// Delete marks the given obj to be deleted in the execute phase.
	Delete(dag *graph.DAG, obj client.Object)

	// Noop means not to commit any change made to this obj in the execute phase.
	Noop(dag *graph.DAG, obj client.Object)

	// DependOn setups dependencies between 'object' and 'dependencies',
	// which will guarantee the Write Order to the K8s cluster of these objects.
	// all of them must already be in the DAG.
	DependOn(dag *graph.DAG, object client.Object, dependencies ...client.Object) error

	// FindAll finds all objects that have same type with obj in the underlying DAG.
	// obey the GraphOption if provided.
	FindAll(dag *graph.DAG, obj interface{}, opts ...GraphOption) []client.Object
}

type GraphClient interface {
	client.Reader
	GraphWriter
}

type realGraphClient struct {
	client.Reader
}

func (r *realGraphClient) Apply(dag *graph.DAG, obj client.Object) {
	r.doWrite(dag, obj, ActionApplyPtr())
}

func (r *realGraphClient) Delete(dag *graph.DAG, obj client.Object) {
	r.doWrite(dag, obj, ActionDeletePtr())
}

func (r *realGraphClient) Noop(dag *graph.DAG, obj client.Object) {
	r.doWrite(dag, obj, ActionNoopPtr())
}

func (r *realGraphClient) DependOn(dag *graph.DAG, object client.Object, dependencies ...client.Object) error {
	objectVertex := r.findMatchedVertex(dag, object)
	if objectVertex == nil {
		return intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidGraph, "object not found in graph: %s", describe(object))
	}
	for _, d := range dependencies {
		if d == nil {
			continue
		}
		v := r.findMatchedVertex(dag, d)
		if v == nil {
			return intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidGraph,
				"%s depends on undefined object %s", describe(object), describe(d))
		}
		dag.Connect(objectVertex, v)
	}
	return nil
}

func (r *realGraphClient) FindAll(dag *graph.DAG, obj interface{}, opts ...GraphOption) []client.Object {
	graphOpts := &GraphOptions{}
	for _, opt := range opts {
		opt.ApplyTo(graphOpts)
	}
	hasSameType := !graphOpts.haveDifferentTypeWith
	assignableTo := func(src, dst reflect.Type) bool {
		if dst == nil {
			return src == nil
		}
		return src.AssignableTo(dst)
	}
	objType := reflect.TypeOf(obj)
	objects := make([]client.Object, 0)
	for _, vertex := range dag.Vertices() {
		v, _ := vertex.(*ObjectVertex)
		vertexType := reflect.TypeOf(v.Obj)
		if assignableTo(vertexType, objType) == hasSameType {
			objects = append(objects, v.Obj)
		}
	}
	return objects
}

func (r *realGraphClient) doWrite(dag *graph.DAG, obj client.Object, action *Action) {
	vertex := r.findMatchedVertex(dag, obj)
	switch {
	case vertex != nil:
		vertex.Action = action
	default:
		dag.AddVertex(&ObjectVertex{
			Obj:    obj,
			Action: action,
		})
	}
}

func (r *realGraphClient) findMatchedVertex(dag *graph.DAG, object client.Object) *ObjectVertex {
	keyLookFor, err := GetGVKName(object)
	if err != nil {
		panic(fmt.Sprintf("parse gvk name failed, obj: %T, name: %s, err: %v", object, object.GetName(), err))
	}
	for _, v := range dag.Vertices() {
		ov, ok := v.(*ObjectVertex)
		if !ok {
			continue
		}
		key, err := GetGVKName(ov.Obj)
		if err != nil {
			panic(fmt.Sprintf("parse gvk name failed, obj: %T, name: %s, err: %v", ov.Obj, ov.Obj.GetName(), err))
		}
		if *keyLookFor == *key {
			return ov
		}
	}
	return nil
}

func describe(obj client.Object) string {
	if key, err := GetGVKName(obj); err == nil {
		return key.String()
	}
	return fmt.Sprintf("%T %s", obj, obj.GetName())
}

var _ GraphClient = &realGraphClient{}

// NewGraphClient returns a GraphClient, cli is used for reads and may be nil when nothing is read.
func NewGraphClient(cli client.Reader) GraphClient {
	return &realGraphClient{
		Reader: cli,
	}
}
