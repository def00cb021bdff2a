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
	"fmt"
	"net/url"
	"strconv"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/zortax/tub-modules/deployment/pkg/constant"
	"github.com/zortax/tub-modules/deployment/pkg/controller/builder"
)

// DatabaseURL returns the connection string of the stack database for password.
func DatabaseURL(password string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(constant.PostgresUser, password),
		Host:   fmt.Sprintf("%s:%d", constant.PostgresSvcName, constant.PostgresPort),
		Path:   "/" + constant.PostgresDatabase,
	}
	return u.String()
}

func objectAnnotations(runID string) map[string]string {
	if runID == "" {
		return nil
	}
	return map[string]string{constant.RunIDAnnotationKey: runID}
}

func buildNamespace(runID string) *corev1.Namespace {
	return builder.NewNamespaceBuilder(constant.NamespaceName).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotationsInMap(objectAnnotations(runID)).
		GetObject()
}

func buildAppConfigMap(runID string) *corev1.ConfigMap {
	return builder.NewConfigMapBuilder(constant.NamespaceName, constant.AppConfigMapName).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotationsInMap(objectAnnotations(runID)).
		SetData(map[string]string{
			"DATABASE_HOST":            constant.PostgresSvcName,
			"DATABASE_PORT":            strconv.Itoa(constant.PostgresPort),
			"DATABASE_USER":            constant.PostgresUser,
			"DATABASE_NAME":            constant.PostgresDatabase,
			"DATABASE_MAX_CONNECTIONS": "5",
			"LEPTOS_SITE_ADDR":         fmt.Sprintf("0.0.0.0:%d", constant.AppPort),
			"RUST_LOG":                 "info",
		}).
		GetObject()
}

func buildAppSecret(runID string, postgresPassword, scraperAuthKey GeneratedSecret) *corev1.Secret {
	return builder.NewSecretBuilder(constant.NamespaceName, constant.AppSecretName).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotationsInMap(objectAnnotations(runID)).
		SetType(corev1.SecretTypeOpaque).
		PutStringData(constant.DatabasePasswordKey, postgresPassword.Value).
		PutStringData(constant.DatabaseURLKey, DatabaseURL(postgresPassword.Value)).
		PutStringData(constant.ScraperAuthKeyKey, scraperAuthKey.Value).
		GetObject()
}

func buildPostgresPVC(runID string) *corev1.PersistentVolumeClaim {
	return builder.NewPVCBuilder(constant.NamespaceName, constant.PostgresPVCName).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotationsInMap(objectAnnotations(runID)).
		SetAccessModes(corev1.ReadWriteOnce).
		SetStorageRequest(resource.MustParse(constant.PostgresStorageSize)).
		GetObject()
}

func resourceRequirements(requestCPU, requestMemory, limitCPU, limitMemory string) corev1.ResourceRequirements {
	return corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(requestCPU),
			corev1.ResourceMemory: resource.MustParse(requestMemory),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse(limitCPU),
			corev1.ResourceMemory: resource.MustParse(limitMemory),
		},
	}
}

func buildPostgresDeployment(runID string) *appsv1.Deployment {
	container := builder.NewContainerBuilder(constant.PostgresName).
		SetImage(constant.PostgresImage).
		AddPorts(corev1.ContainerPort{
			Name:          constant.PostgresPortName,
			ContainerPort: constant.PostgresPort,
		}).
		AddEnv(
			corev1.EnvVar{Name: "POSTGRES_DB", Value: constant.PostgresDatabase},
			corev1.EnvVar{Name: "POSTGRES_USER", Value: constant.PostgresUser},
		).
		AddEnvFromSecretKey("POSTGRES_PASSWORD", constant.AppSecretName, constant.DatabasePasswordKey).
		AddEnv(corev1.EnvVar{Name: "PGDATA", Value: constant.PostgresDataDir}).
		AddVolumeMounts(corev1.VolumeMount{
			Name:      constant.PostgresVolumeName,
			MountPath: constant.PostgresMountPath,
		}).
		SetResources(resourceRequirements("100m", "256Mi", "500m", "512Mi")).
		GetObject()

	template := builder.NewPodTemplateBuilder().
		AddLabels(constant.AppLabelKey, constant.PostgresAppLabelValue).
		AddContainer(*container).
		AddVolumes(corev1.Volume{
			Name: constant.PostgresVolumeName,
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
					ClaimName: constant.PostgresPVCName,
				},
			},
		}).
		GetObject()

	return builder.NewDeploymentBuilder(constant.NamespaceName, constant.PostgresName).
		AddLabels(constant.AppLabelKey, constant.PostgresAppLabelValue).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotationsInMap(objectAnnotations(runID)).
		SetReplicas(1).
		AddMatchLabel(constant.AppLabelKey, constant.PostgresAppLabelValue).
		SetTemplate(*template).
		GetObject()
}

func buildPostgresService(runID string) *corev1.Service {
	return builder.NewServiceBuilder(constant.NamespaceName, constant.PostgresSvcName).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotationsInMap(objectAnnotations(runID)).
		SetType(corev1.ServiceTypeClusterIP).
		AddSelector(constant.AppLabelKey, constant.PostgresAppLabelValue).
		AddPorts(corev1.ServicePort{
			Port:       constant.PostgresPort,
			TargetPort: intstr.FromInt(constant.PostgresPort),
			Protocol:   corev1.ProtocolTCP,
		}).
		GetObject()
}

func httpGetProbe(initialDelay, period int32) corev1.Probe {
	return corev1.Probe{
		ProbeHandler: corev1.ProbeHandler{
			HTTPGet: &corev1.HTTPGetAction{
				Path: "/",
				Port: intstr.FromInt(constant.AppPort),
			},
		},
		InitialDelaySeconds: initialDelay,
		PeriodSeconds:       period,
	}
}

func buildAppDeployment(runID string, cfg Config) *appsv1.Deployment {
	container := builder.NewContainerBuilder(constant.AppContainerName).
		SetImage(cfg.Image()).
		AddPorts(corev1.ContainerPort{
			Name:          constant.AppPortName,
			ContainerPort: constant.AppPort,
		}).
		AddEnvFromConfigMap(constant.AppConfigMapName).
		AddEnvFromSecret(constant.AppSecretName).
		SetResources(resourceRequirements("100m", "128Mi", "1000m", "512Mi")).
		SetLivenessProbe(httpGetProbe(30, 10)).
		SetReadinessProbe(httpGetProbe(10, 5)).
		GetObject()

	template := builder.NewPodTemplateBuilder().
		AddLabels(constant.AppLabelKey, constant.AppLabelValue).
		AddContainer(*container).
		GetObject()

	return builder.NewDeploymentBuilder(constant.NamespaceName, constant.AppName).
		AddLabels(constant.AppLabelKey, constant.AppLabelValue).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotationsInMap(objectAnnotations(runID)).
		SetReplicas(cfg.AppReplicas).
		AddMatchLabel(constant.AppLabelKey, constant.AppLabelValue).
		SetTemplate(*template).
		GetObject()
}

func buildAppService(runID string) *corev1.Service {
	return builder.NewServiceBuilder(constant.NamespaceName, constant.AppSvcName).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotationsInMap(objectAnnotations(runID)).
		SetType(corev1.ServiceTypeClusterIP).
		AddSelector(constant.AppLabelKey, constant.AppLabelValue).
		AddPorts(corev1.ServicePort{
			Port:       constant.AppSvcPort,
			TargetPort: intstr.FromInt(constant.AppPort),
			Protocol:   corev1.ProtocolTCP,
		}).
		GetObject()
}

func buildAppIngress(runID string, cfg Config) *networkingv1.Ingress {
	return builder.NewIngressBuilder(constant.NamespaceName, constant.AppIngressName).
		AddLabelsInMap(constant.GetStackWellKnownLabels()).
		AddAnnotations(constant.CertManagerClusterIssuerAnnotationKey, cfg.CertManagerIssuer).
		AddAnnotationsInMap(objectAnnotations(runID)).
		SetIngressClassName(constant.IngressClassName).
		AddTLS(cfg.TLSSecretName, cfg.IngressHost).
		AddServiceRule(cfg.IngressHost, "/", networkingv1.PathTypePrefix, constant.AppSvcName, constant.AppSvcPort).
		GetObject()
}
