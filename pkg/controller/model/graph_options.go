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

type GraphOptions struct {
	haveDifferentTypeWith bool
}

type GraphOption interface {
	ApplyTo(*GraphOptions)
}

// HaveDifferentTypeWithOption is used in FindAll method to find all objects have different type with the given one.
type HaveDifferentTypeWithOption struct{}

var _ GraphOption = &HaveDifferentTypeWithOption{}

func (o *HaveDifferentTypeWithOption) ApplyTo(opts *GraphOptions) {
	opts.haveDifferentTypeWith = true
}
