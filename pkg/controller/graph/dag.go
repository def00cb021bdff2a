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

package graph

import (
	"errors"
	"fmt"
	"sort"
)

type DAG struct {
	vertices map[Vertex]Vertex
	edges    map[Edge]Edge
}

type Vertex interface{}

// Edge points from a vertex to one of its dependencies.
type Edge interface {
	From() Vertex
	To() Vertex
}

type realEdge struct {
	F, T Vertex
}

// WalkFunc defines the action should be taken when we walk through the DAG.
// the func is vertex basis
type WalkFunc func(v Vertex) error

var _ Edge = &realEdge{}

var ErrCycleFound = errors.New("cycle found")

func (r *realEdge) From() Vertex {
	return r.F
}

func (r *realEdge) To() Vertex {
	return r.T
}

// AddVertex puts 'v' into 'd'
func (d *DAG) AddVertex(v Vertex) bool {
	if v == nil {
		return false
	}
	d.vertices[v] = v
	return true
}

// HasVertex tells whether 'v' is in 'd'
func (d *DAG) HasVertex(v Vertex) bool {
	_, ok := d.vertices[v]
	return ok
}

// RemoveVertex deletes 'v' from 'd'
// the in&out edges are also deleted
func (d *DAG) RemoveVertex(v Vertex) bool {
	if v == nil {
		return true
	}
	for k := range d.edges {
		if k.From() == v || k.To() == v {
			delete(d.edges, k)
		}
	}
	delete(d.vertices, v)
	return true
}

// Vertices returns all vertices in 'd'
func (d *DAG) Vertices() []Vertex {
	vertices := make([]Vertex, 0, len(d.vertices))
	for v := range d.vertices {
		vertices = append(vertices, v)
	}
	return vertices
}

// Edges returns all edges in 'd'
func (d *DAG) Edges() []Edge {
	edges := make([]Edge, 0, len(d.edges))
	for e := range d.edges {
		edges = append(edges, e)
	}
	return edges
}

// AddEdge puts edge 'e' into 'd'
func (d *DAG) AddEdge(e Edge) bool {
	if e.From() == nil || e.To() == nil {
		return false
	}
	for k := range d.edges {
		if k.From() == e.From() && k.To() == e.To() {
			return true
		}
	}
	d.edges[e] = e
	return true
}

// RemoveEdge deletes edge 'e'
func (d *DAG) RemoveEdge(e Edge) bool {
	for k := range d.edges {
		if k.From() == e.From() && k.To() == e.To() {
			delete(d.edges, k)
		}
	}
	return true
}

// Connect vertex 'from' to 'to' by a new edge if not exist
func (d *DAG) Connect(from, to Vertex) bool {
	if from == nil || to == nil {
		return false
	}
	for k := range d.edges {
		if k.From() == from && k.To() == to {
			return true
		}
	}
	edge := RealEdge(from, to)
	d.edges[edge] = edge
	return true
}

// AddConnect add 'to' to the DAG 'd' and connect 'from' to 'to'
func (d *DAG) AddConnect(from, to Vertex) bool {
	if !d.AddVertex(to) {
		return false
	}
	return d.Connect(from, to)
}

// WalkTopoOrder walks the DAG 'd' in topology order, a vertex is visited before all vertices it points to.
func (d *DAG) WalkTopoOrder(walkFunc WalkFunc, less func(v1, v2 Vertex) bool) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for _, v := range d.topologicalOrder(false, less) {
		if err := walkFunc(v); err != nil {
			return err
		}
	}
	return nil
}

// WalkReverseTopoOrder walks the DAG 'd' in reverse topology order, a vertex is visited after all vertices it points to.
func (d *DAG) WalkReverseTopoOrder(walkFunc WalkFunc, less func(v1, v2 Vertex) bool) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for _, v := range d.topologicalOrder(true, less) {
		if err := walkFunc(v); err != nil {
			return err
		}
	}
	return nil
}

// OutAdj returns all vertices that 'v' points to.
func (d *DAG) OutAdj(v Vertex) []Vertex {
	return d.outAdj(v)
}

// String returns a string representation of the DAG in reverse topology order
func (d *DAG) String() string {
	str := "|"
	walkFunc := func(v Vertex) error {
		str += fmt.Sprintf("->%v", v)
		return nil
	}
	if err := d.WalkReverseTopoOrder(walkFunc, nil); err != nil {
		return "->err"
	}
	return str
}

// Validate checks 'd' has no dangling edges and no cycles.
func (d *DAG) Validate() error {
	for e := range d.edges {
		if !d.HasVertex(e.From()) {
			return fmt.Errorf("edge from undefined vertex: %v -> %v", e.From(), e.To())
		}
		if !d.HasVertex(e.To()) {
			return fmt.Errorf("edge to undefined vertex: %v -> %v", e.From(), e.To())
		}
	}

	// self-cycle validation
	for e := range d.edges {
		if e.From() == e.To() {
			return fmt.Errorf("self-cycle found: %v", e.From())
		}
	}

	// cycle validation
	// use a DFS func to find cycles
	walked := make(map[Vertex]bool)
	marked := make(map[Vertex]bool)
	var walk func(v Vertex) error
	walk = func(v Vertex) error {
		if walked[v] {
			return nil
		}
		if marked[v] {
			return fmt.Errorf("%w: %v", ErrCycleFound, v)
		}

		marked[v] = true
		adjacent := d.outAdj(v)
		for _, vertex := range adjacent {
			if err := walk(vertex); err != nil {
				return err
			}
		}
		marked[v] = false
		walked[v] = true
		return nil
	}
	for v := range d.vertices {
		if err := walk(v); err != nil {
			return err
		}
	}
	return nil
}

// topologicalOrder returns a vertex list that is in topology order
// 'd' MUST be a legal DAG
func (d *DAG) topologicalOrder(reverse bool, less func(v1, v2 Vertex) bool) []Vertex {
	// orders is what we want, a (reverse) topological order of this DAG
	orders := make([]Vertex, 0)

	// walked marks vertex has been walked, to stop recursive func call
	walked := make(map[Vertex]bool)

	// walk is a DFS func
	var walk func(v Vertex)
	walk = func(v Vertex) {
		if walked[v] {
			return
		}
		var adjacent []Vertex
		if reverse {
			adjacent = d.outAdj(v)
		} else {
			adjacent = d.inAdj(v)
		}
		if less != nil {
			sort.SliceStable(adjacent, func(i, j int) bool {
				return less(adjacent[i], adjacent[j])
			})
		}
		for _, vertex := range adjacent {
			walk(vertex)
		}
		walked[v] = true
		orders = append(orders, v)
	}
	vertexLst := d.Vertices()
	if less != nil {
		sort.SliceStable(vertexLst, func(i, j int) bool {
			return less(vertexLst[i], vertexLst[j])
		})
	}
	for _, v := range vertexLst {
		walk(v)
	}
	return orders
}

// outAdj returns all adjacent vertices that v points to
func (d *DAG) outAdj(v Vertex) []Vertex {
	vertices := make([]Vertex, 0)
	for e := range d.edges {
		if e.From() == v {
			vertices = append(vertices, e.To())
		}
	}
	return vertices
}

// inAdj returns all adjacent vertices that point to v
func (d *DAG) inAdj(v Vertex) []Vertex {
	vertices := make([]Vertex, 0)
	for e := range d.edges {
		if e.To() == v {
			vertices = append(vertices, e.From())
		}
	}
	return vertices
}

// NewDAG news an empty DAG
func NewDAG() *DAG {
	dag := &DAG{
		vertices: make(map[Vertex]Vertex),
		edges:    make(map[Edge]Edge),
	}
	return dag
}

func RealEdge(from, to Vertex) Edge {
	return &realEdge{F: from, T: to}
}
