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

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/zortax/tub-modules/deployment/pkg/constant"
	"github.com/zortax/tub-modules/deployment/pkg/controller/graph"
	"github.com/zortax/tub-modules/deployment/pkg/controller/model"
	intctrlutil "github.com/zortax/tub-modules/deployment/pkg/controllerutil"
)

// ResourceGraph is the validated set of objects of one stack and their dependencies.
type ResourceGraph struct {
	RunID            string
	Config           Config
	DAG              *graph.DAG
	PostgresPassword GeneratedSecret
	ScraperAuthKey   GeneratedSecret
}

type buildOptions struct {
	generator PasswordGenerator
	reader    client.Reader
	runID     string
	logger    logr.Logger
}

type BuildOption func(*buildOptions)

// WithPasswordGenerator replaces the go-password generator.
func WithPasswordGenerator(gen PasswordGenerator) BuildOption {
	return func(o *buildOptions) {
		o.generator = gen
	}
}

// WithExistingSecrets reads the live app secret through reader and keeps its values.
func WithExistingSecrets(reader client.Reader) BuildOption {
	return func(o *buildOptions) {
		o.reader = reader
	}
}

func WithRunID(runID string) BuildOption {
	return func(o *buildOptions) {
		o.runID = runID
	}
}

func WithLogger(logger logr.Logger) BuildOption {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// Build resolves cfg and declares every object of the stack together with its dependencies.
// Nothing is written to the cluster.
func Build(ctx context.Context, cfg Config, opts ...BuildOption) (*ResourceGraph, error) {
	options := &buildOptions{logger: logr.Discard()}
	for _, opt := range opts {
		opt(options)
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	if options.runID == "" {
		options.runID = uuid.New().String()
	}
	if options.generator == nil {
		if options.generator, err = newDefaultPasswordGenerator(); err != nil {
			return nil, err
		}
	}
	logger := options.logger.WithValues("runID", options.runID)

	graphCli := model.NewGraphClient(options.reader)
	var existing map[string]string
	if options.reader != nil {
		if existing, err = existingSecretValues(ctx, graphCli); err != nil {
			return nil, err
		}
	}
	postgresPassword, err := resolveSecret(options.generator, existing, constant.DatabasePasswordKey,
		constant.PostgresPasswordName, postgresPasswordPolicy)
	if err != nil {
		return nil, err
	}
	scraperAuthKey, err := resolveSecret(options.generator, existing, constant.ScraperAuthKeyKey,
		constant.ScraperAuthKeyName, scraperAuthKeyPolicy)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("secrets resolved",
		"postgresPasswordReused", postgresPassword.Reused, "scraperAuthKeyReused", scraperAuthKey.Reused)

	dag, err := buildDAG(graphCli, options.runID, resolved, postgresPassword, scraperAuthKey)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("resource graph built", "graph", dag.String())
	return &ResourceGraph{
		RunID:            options.runID,
		Config:           resolved,
		DAG:              dag,
		PostgresPassword: postgresPassword,
		ScraperAuthKey:   scraperAuthKey,
	}, nil
}

func buildDAG(graphCli model.GraphClient, runID string, cfg Config,
	postgresPassword, scraperAuthKey GeneratedSecret) (*graph.DAG, error) {
	var (
		dag = graph.NewDAG()

		namespace       = buildNamespace(runID)
		appConfig       = buildAppConfigMap(runID)
		appSecret       = buildAppSecret(runID, postgresPassword, scraperAuthKey)
		postgresPVC     = buildPostgresPVC(runID)
		postgres        = buildPostgresDeployment(runID)
		postgresService = buildPostgresService(runID)
		app             = buildAppDeployment(runID, cfg)
		appService      = buildAppService(runID)
		appIngress      = buildAppIngress(runID, cfg)
		dependencies    = []struct {
			object       client.Object
			dependencies []client.Object
		}{
			{appConfig, []client.Object{namespace}},
			{appSecret, []client.Object{namespace}},
			{postgresPVC, []client.Object{namespace}},
			{postgres, []client.Object{namespace, appSecret, postgresPVC}},
			{postgresService, []client.Object{namespace, postgres}},
			{app, []client.Object{namespace, appConfig, appSecret, postgresService}},
			{appService, []client.Object{namespace, app}},
			{appIngress, []client.Object{namespace, appService}},
		}
	)

	graphCli.Apply(dag, namespace)
	for _, d := range dependencies {
		graphCli.Apply(dag, d.object)
	}
	for _, d := range dependencies {
		if err := graphCli.DependOn(dag, d.object, d.dependencies...); err != nil {
			return nil, err
		}
	}
	if err := dag.Validate(); err != nil {
		return nil, intctrlutil.WrapError(err, intctrlutil.ErrorTypeInvalidGraph, "invalid resource graph")
	}
	return dag, nil
}

// Objects returns the objects of the graph in the order they have to be realized.
func (g *ResourceGraph) Objects() ([]client.Object, error) {
	objects := make([]client.Object, 0, len(g.DAG.Vertices()))
	err := g.DAG.WalkReverseTopoOrder(func(v graph.Vertex) error {
		ov, ok := v.(*model.ObjectVertex)
		if !ok {
			return intctrlutil.NewErrorf(intctrlutil.ErrorTypeInvalidGraph, "unexpected vertex %v", v)
		}
		objects = append(objects, ov.Obj)
		return nil
	}, model.DefaultLess)
	if err != nil {
		return nil, err
	}
	return objects, nil
}

// Outputs returns the named values exported by the stack.
func (g *ResourceGraph) Outputs() Outputs {
	return Outputs{
		NamespaceName:    constant.NamespaceName,
		PostgresPassword: g.PostgresPassword.Value,
		ScraperAuthKey:   g.ScraperAuthKey.Value,
		AppServiceName:   constant.AppSvcName,
		IngressHostname:  g.Config.IngressHost,
		IngressURL:       g.Config.IngressURL(),
		TLSSecret:        g.Config.TLSSecretName,
		DatabaseURL:      DatabaseURL(g.PostgresPassword.Value),
	}
}
