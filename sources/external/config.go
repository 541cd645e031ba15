package external

import (
	"autotable/sources/configuration"
	"autotable/sources/platform"
)

type OutsidersConfig struct {
	StartupPort            int
	SystemMetricsPort      int
	ApplicationMetricsPort int
}

// NewOutsidersConfig takes ports from the configuration file; the
// OUTSIDERS_* variables override them.
func NewOutsidersConfig(config *configuration.Config) *OutsidersConfig {
	return &OutsidersConfig{
		StartupPort:            platform.GetAsInt("OUTSIDERS_STARTUP_PORT", config.Service.StartupPort),
		SystemMetricsPort:      platform.GetAsInt("OUTSIDERS_SYSTEM_METRICS_PORT", config.Service.SystemMetricsPort),
		ApplicationMetricsPort: platform.GetAsInt("OUTSIDERS_METRICS_PORT", config.Service.ApplicationMetricsPort),
	}
}
