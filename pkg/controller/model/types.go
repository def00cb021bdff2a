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

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"

	"github.com/zortax/tub-modules/deployment/pkg/controller/graph"
)

type Action string

const (
	APPLY  = Action("APPLY")
	DELETE = Action("DELETE")
	NOOP   = Action("NOOP")
)

func ActionApplyPtr() *Action {
	return ActionPtr(APPLY)
}

func ActionDeletePtr() *Action {
	return ActionPtr(DELETE)
}

func ActionNoopPtr() *Action {
	return ActionPtr(NOOP)
}

func ActionPtr(action Action) *Action {
	return &action
}

// ObjectVertex describes one desired object of the stack: the object itself
// carries kind, name, namespace and spec, the out edges of the vertex are its dependencies.
type ObjectVertex struct {
	Obj    client.Object
	Action *Action
}

func (v ObjectVertex) String() string {
	key, err := GetGVKName(v.Obj)
	name := fmt.Sprintf("%T %s", v.Obj, v.Obj.GetName())
	if err == nil {
		name = key.String()
	}
	if v.Action == nil {
		return fmt.Sprintf("{%s, action: nil}", name)
	}
	return fmt.Sprintf("{%s, action: %v}", name, *v.Action)
}

// GVKName identifies an object by its kind, namespace and name.
type GVKName struct {
	gvk       schema.GroupVersionKind
	namespace string
	name      string
}

func (g GVKName) GroupVersionKind() schema.GroupVersionKind {
	return g.gvk
}

func (g GVKName) String() string {
	if g.namespace == "" {
		return fmt.Sprintf("%s %s", g.gvk.Kind, g.name)
	}
	return fmt.Sprintf("%s %s/%s", g.gvk.Kind, g.namespace, g.name)
}

var scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
}

// Scheme returns the scheme all objects of the graph are registered in.
func Scheme() *runtime.Scheme {
	return scheme
}

func GetGVKName(object client.Object) (*GVKName, error) {
	gvk, err := apiutil.GVKForObject(object, scheme)
	if err != nil {
		return nil, err
	}
	return &GVKName{
		gvk:       gvk,
		namespace: object.GetNamespace(),
		name:      object.GetName(),
	}, nil
}

// DefaultLess orders object vertices by kind, namespace and name, so walks over the same DAG are deterministic.
func DefaultLess(v1, v2 graph.Vertex) bool {
	o1, ok1 := v1.(*ObjectVertex)
	o2, ok2 := v2.(*ObjectVertex)
	if !ok1 || !ok2 {
		return false
	}
	k1, err1 := GetGVKName(o1.Obj)
	k2, err2 := GetGVKName(o2.Obj)
	if err1 != nil || err2 != nil {
		return false
	}
	if k1.String() != k2.String() {
		return k1.String() < k2.String()
	}
	a1, a2 := actionString(o1.Action), actionString(o2.Action)
	return a1 < a2
}

func actionString(action *Action) string {
	if action == nil {
		return ""
	}
	return string(*action)
}
