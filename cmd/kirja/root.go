package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	rootCmd = &cobra.Command{
		Use:   "kirja",
		Short: "GCP inventory workbook exporter",
		Long: `Kirja - GCP inventory workbook exporter

Kirja enumerates the resources in one or more Google Cloud projects,
writes them into a multi-sheet Excel workbook (one sheet per resource
kind), and optionally uploads the workbook to a Cloud Storage bucket.

Resources are collected either per kind (compute instances, GKE
clusters, Cloud Functions, Cloud SQL instances, storage buckets) or in
one pass through the Cloud Asset inventory.`,
		Version: version,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`Kirja {{.Version}} - GCP inventory workbook exporter
`)
}
