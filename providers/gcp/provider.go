// Package gcp binds the collector to the Google Cloud listing APIs.
package gcp

import (
	"context"
	"fmt"

	"google.golang.org/api/cloudasset/v1"
	"google.golang.org/api/cloudfunctions/v2"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/container/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/serviceusage/v1"
	sqladmin "google.golang.org/api/sqladmin/v1"
	gcs "google.golang.org/api/storage/v1"
)

// Service names gating the per-kind listers. Compute and storage listing do
// not need a check: those APIs are enabled on effectively every project.
const (
	ServiceContainer      = "container.googleapis.com"
	ServiceCloudFunctions = "cloudfunctions.googleapis.com"
	ServiceSQLAdmin       = "sqladmin.googleapis.com"
)

// Provider holds the Google API clients the collector needs. All clients
// share the same credential options (application default credentials unless
// overridden).
type Provider struct {
	compute   *compute.Service
	container *container.Service
	functions *cloudfunctions.Service
	sqladmin  *sqladmin.Service
	storage   *gcs.Service
	usage     *serviceusage.Service
	asset     *cloudasset.Service
}

// New builds a Provider from the given client options.
func New(ctx context.Context, opts ...option.ClientOption) (*Provider, error) {
	computeSvc, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute client: %w", err)
	}
	containerSvc, err := container.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create container client: %w", err)
	}
	functionsSvc, err := cloudfunctions.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud functions client: %w", err)
	}
	sqladminSvc, err := sqladmin.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sqladmin client: %w", err)
	}
	storageSvc, err := gcs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	usageSvc, err := serviceusage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create serviceusage client: %w", err)
	}
	assetSvc, err := cloudasset.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudasset client: %w", err)
	}

	return &Provider{
		compute:   computeSvc,
		container: containerSvc,
		functions: functionsSvc,
		sqladmin:  sqladminSvc,
		storage:   storageSvc,
		usage:     usageSvc,
		asset:     assetSvc,
	}, nil
}
