// Kirja - GCP inventory workbook exporter
package main

func main() {
	Execute()
}
