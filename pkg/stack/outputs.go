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

// Outputs are the named values a stack exports after it has been submitted.
type Outputs struct {
	NamespaceName    string `json:"namespaceName"`
	PostgresPassword string `json:"postgresPasswordOutput"`
	ScraperAuthKey   string `json:"scraperAuthKeyOutput"`
	AppServiceName   string `json:"appServiceName"`
	IngressHostname  string `json:"ingressHostname"`
	IngressURL       string `json:"ingressUrl"`
	TLSSecret        string `json:"tlsSecret"`
	DatabaseURL      string `json:"databaseUrl"`
}

// OutputEntry is a single named output.
type OutputEntry struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Secret bool   `json:"secret"`
}

const MaskedValue = "[secret]"

// Entries lists the outputs in a stable order.
func (o Outputs) Entries() []OutputEntry {
	return []OutputEntry{
		{Name: "namespaceName", Value: o.NamespaceName},
		{Name: "postgresPasswordOutput", Value: o.PostgresPassword, Secret: true},
		{Name: "scraperAuthKeyOutput", Value: o.ScraperAuthKey, Secret: true},
		{Name: "appServiceName", Value: o.AppServiceName},
		{Name: "ingressHostname", Value: o.IngressHostname},
		{Name: "ingressUrl", Value: o.IngressURL},
		{Name: "tlsSecret", Value: o.TLSSecret},
		{Name: "databaseUrl", Value: o.DatabaseURL, Secret: true},
	}
}

// Masked returns a copy of entries with the values of secret entries hidden.
func Masked(entries []OutputEntry) []OutputEntry {
	masked := make([]OutputEntry, len(entries))
	for i, e := range entries {
		masked[i] = e
		if e.Secret {
			masked[i].Value = MaskedValue
		}
	}
	return masked
}
