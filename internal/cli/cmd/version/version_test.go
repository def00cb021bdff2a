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

package version

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("version", func() {
	It("version", func() {
		out := &bytes.Buffer{}
		By("testing version command")
		cmd := NewVersionCmd(out, nil, nil)
		Expect(cmd).ShouldNot(BeNil())

		By("testing run with a cluster")
		o := &versionOptions{
			out:     out,
			verbose: true,
			serverVersion: func() (string, error) {
				return "v1.26.1", nil
			},
		}
		o.Run()
		Expect(out.String()).Should(ContainSubstring("Kubernetes: v1.26.1\n"))
		Expect(out.String()).Should(ContainSubstring("tubctl: "))
		Expect(out.String()).Should(ContainSubstring("GoVersion: "))

		By("testing run without a cluster")
		out.Reset()
		o = &versionOptions{
			out: out,
			serverVersion: func() (string, error) {
				return "", errors.New("connection refused")
			},
		}
		o.Run()
		Expect(out.String()).ShouldNot(ContainSubstring("Kubernetes"))
		Expect(out.String()).Should(HavePrefix("tubctl: "))
	})
})
