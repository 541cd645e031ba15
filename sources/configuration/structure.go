package configuration

type Config struct {
	Service ServiceConfig `yaml:"service"`
	Titles  TitlesConfig  `yaml:"titles"`
}

type ServiceConfig struct {
	StartupPort            int `yaml:"startup_port"`
	SystemMetricsPort      int `yaml:"system_metrics_port"`
	ApplicationMetricsPort int `yaml:"application_metrics_port"`
}

type TitlesConfig struct {
	StrictMixedSeparators bool `yaml:"strict_mixed_separators"`
	MaxLoggedTitle        int  `yaml:"max_logged_title"`
}

// Source points at the yaml file to read.
type Source struct {
	Path string
}

func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			StartupPort:            10000,
			SystemMetricsPort:      10001,
			ApplicationMetricsPort: 10002,
		},
		Titles: TitlesConfig{
			StrictMixedSeparators: false,
			MaxLoggedTitle:        128,
		},
	}
}
