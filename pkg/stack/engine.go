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
	"fmt"

	"github.com/go-logr/logr"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zortax/tub-modules/deployment/pkg/constant"
	"github.com/zortax/tub-modules/deployment/pkg/controller/graph"
	"github.com/zortax/tub-modules/deployment/pkg/controller/model"
	intctrlutil "github.com/zortax/tub-modules/deployment/pkg/controllerutil"
)

// Engine realizes objects in a cluster. It does not wait for them to become ready.
type Engine interface {
	// Apply creates obj, or updates it when it exists already.
	Apply(ctx context.Context, obj client.Object) error
	// Delete removes obj, an object that does not exist is not an error.
	Delete(ctx context.Context, obj client.Object) error
}

type kubeEngine struct {
	cli    client.Client
	logger logr.Logger
}

var _ Engine = &kubeEngine{}

// NewKubeEngine returns an Engine writing through a controller-runtime client.
func NewKubeEngine(cli client.Client, logger logr.Logger) Engine {
	return &kubeEngine{cli: cli, logger: logger}
}

func (e *kubeEngine) Apply(ctx context.Context, obj client.Object) error {
	current, ok := obj.DeepCopyObject().(client.Object)
	if !ok {
		return fmt.Errorf("unsupported object %T", obj)
	}
	if err := e.cli.Get(ctx, client.ObjectKeyFromObject(obj), current); err != nil {
		if !apierrors.IsNotFound(err) {
			return err
		}
		e.logger.V(1).Info("create", "object", describeObject(obj))
		return e.cli.Create(ctx, obj, client.FieldOwner(constant.FieldOwner))
	}
	updated, err := buildUpdateObj(current, obj)
	if err != nil {
		return err
	}
	e.logger.V(1).Info("update", "object", describeObject(obj))
	return e.cli.Update(ctx, updated, client.FieldOwner(constant.FieldOwner))
}

func (e *kubeEngine) Delete(ctx context.Context, obj client.Object) error {
	e.logger.V(1).Info("delete", "object", describeObject(obj))
	err := e.cli.Delete(ctx, obj, client.PropagationPolicy(metav1.DeletePropagationBackground))
	if err != nil && !apierrors.IsNotFound(err) {
		return err
	}
	return nil
}

// buildUpdateObj merges the desired state into the live object, keeping the fields the
// cluster owns such as cluster ips and the bound volume of a claim.
func buildUpdateObj(current, desired client.Object) (client.Object, error) {
	mergeMeta := func() {
		current.SetLabels(mergeMap(current.GetLabels(), desired.GetLabels()))
		current.SetAnnotations(mergeMap(current.GetAnnotations(), desired.GetAnnotations()))
	}
	switch c := current.(type) {
	case *corev1.Namespace:
		mergeMeta()
	case *corev1.ConfigMap:
		mergeMeta()
		c.Data = desired.(*corev1.ConfigMap).Data
	case *corev1.Secret:
		mergeMeta()
		d := desired.(*corev1.Secret)
		c.Type = d.Type
		c.Data = nil
		c.StringData = d.StringData
	case *corev1.PersistentVolumeClaim:
		mergeMeta()
		// only the storage request of a bound claim may change
		d := desired.(*corev1.PersistentVolumeClaim)
		if c.Spec.Resources.Requests == nil {
			c.Spec.Resources.Requests = corev1.ResourceList{}
		}
		c.Spec.Resources.Requests[corev1.ResourceStorage] = d.Spec.Resources.Requests[corev1.ResourceStorage]
	case *corev1.Service:
		mergeMeta()
		d := desired.(*corev1.Service)
		clusterIP, clusterIPs := c.Spec.ClusterIP, c.Spec.ClusterIPs
		c.Spec = *d.Spec.DeepCopy()
		c.Spec.ClusterIP, c.Spec.ClusterIPs = clusterIP, clusterIPs
	case *appsv1.Deployment:
		mergeMeta()
		c.Spec = *desired.(*appsv1.Deployment).Spec.DeepCopy()
	case *networkingv1.Ingress:
		mergeMeta()
		c.Spec = *desired.(*networkingv1.Ingress).Spec.DeepCopy()
	default:
		return nil, fmt.Errorf("unsupported object %T", current)
	}
	return current, nil
}

func mergeMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func describeObject(obj client.Object) string {
	if key, err := model.GetGVKName(obj); err == nil {
		return key.String()
	}
	return fmt.Sprintf("%T %s", obj, obj.GetName())
}

// Hook observes every object handed to the engine, err is nil on success.
type Hook func(obj client.Object, action model.Action, err error)

type executor struct {
	ctx    context.Context
	engine Engine
	hook   Hook
}

func (e *executor) walk(v graph.Vertex) error {
	vertex, ok := v.(*model.ObjectVertex)
	if !ok {
		return intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidGraph, "wrong vertex type %v", v)
	}
	if vertex.Action == nil {
		return intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidGraph, "vertex action can't be nil: %v", vertex)
	}
	if err := e.ctx.Err(); err != nil {
		return intctrlutil.NewReconciliationFailure(err)
	}
	var err error
	switch *vertex.Action {
	case model.APPLY:
		err = e.engine.Apply(e.ctx, vertex.Obj)
	case model.DELETE:
		err = e.engine.Delete(e.ctx, vertex.Obj)
	case model.NOOP:
		return nil
	}
	if e.hook != nil {
		e.hook(vertex.Obj, *vertex.Action, err)
	}
	if err != nil {
		return intctrlutil.NewReconciliationFailure(err)
	}
	return nil
}

// Submit hands every object of g to engine, dependencies first, and returns the outputs of the stack.
// The first engine failure stops the walk and is returned as a ReconciliationFailure.
func Submit(ctx context.Context, engine Engine, g *ResourceGraph, hook Hook) (Outputs, error) {
	if g == nil || g.DAG == nil {
		return Outputs{}, intctrlutil.NewError(intctrlutil.ErrorTypeInvalidGraph, "empty resource graph")
	}
	e := &executor{ctx: ctx, engine: engine, hook: hook}
	if err := g.DAG.WalkReverseTopoOrder(e.walk, model.DefaultLess); err != nil {
		return Outputs{}, err
	}
	return g.Outputs(), nil
}

type destroyOptions struct {
	keepData bool
}

type DestroyOption func(*destroyOptions)

// KeepData leaves the database claim and the namespace holding it in place.
func KeepData() DestroyOption {
	return func(o *destroyOptions) {
		o.keepData = true
	}
}

// Destroy deletes every object of g, dependents first.
func Destroy(ctx context.Context, engine Engine, g *ResourceGraph, hook Hook, opts ...DestroyOption) error {
	if g == nil || g.DAG == nil {
		return intctrlutil.NewError(intctrlutil.ErrorTypeInvalidGraph, "empty resource graph")
	}
	options := &destroyOptions{}
	for _, opt := range opts {
		opt(options)
	}
	graphCli := model.NewGraphClient(nil)
	for _, obj := range graphCli.FindAll(g.DAG, nil, &model.HaveDifferentTypeWithOption{}) {
		graphCli.Delete(g.DAG, obj)
	}
	if options.keepData {
		// deleting the namespace would take the claim with it
		for _, obj := range graphCli.FindAll(g.DAG, &corev1.PersistentVolumeClaim{}) {
			graphCli.Noop(g.DAG, obj)
		}
		for _, obj := range graphCli.FindAll(g.DAG, &corev1.Namespace{}) {
			graphCli.Noop(g.DAG, obj)
		}
	}
	e := &executor{ctx: ctx, engine: engine, hook: hook}
	return g.DAG.WalkTopoOrder(e.walk, model.DefaultLess)
}
