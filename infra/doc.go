// Package infra contains technical adapters such as the telemetry CSV
// loader, the MQTT collector and the metrics exporters. These packages
// should depend only on the interfaces defined in the core packages.
package infra
