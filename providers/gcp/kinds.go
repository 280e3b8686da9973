package gcp

import (
	"github.com/mmikkola/kirja/collector"
)

// Kinds returns the per-kind listing capabilities the provider supports, in
// the order they are collected. Kinds with a Service are only queried when
// that API is enabled for the project.
func Kinds(p *Provider) []collector.Kind {
	return []collector.Kind{
		{Label: "compute_instances", List: p.ListComputeInstances},
		{Label: "gke_clusters", Service: ServiceContainer, List: p.ListGKEClusters},
		{Label: "cloud_functions", Service: ServiceCloudFunctions, List: p.ListCloudFunctions},
		{Label: "sql_instances", Service: ServiceSQLAdmin, List: p.ListSQLInstances},
		{Label: "storage_buckets", List: p.ListStorageBuckets},
	}
}
