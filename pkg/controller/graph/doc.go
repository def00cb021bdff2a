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

/*
Package graph models a set of objects and the order they must be written in.

A vertex is one object. An edge goes from an object to one of its dependencies,
so walking the DAG in reverse topology order visits every dependency before the
objects that need it, which is the order objects are applied to the cluster.
Walking in topology order gives the deletion order.

Every walk validates the DAG first: edges must connect existing vertices and
no cycle is allowed.
*/
package graph
