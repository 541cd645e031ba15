package expansion

import (
	"autotable/sources/configuration"
	"autotable/sources/texting/titles"
)

type ExpanderConfig struct {
	Options        titles.Options
	MaxLoggedTitle int
}

func NewExpanderConfig(config *configuration.Config) *ExpanderConfig {
	return &ExpanderConfig{
		Options: titles.Options{
			StrictMixedSeparators: config.Titles.StrictMixedSeparators,
		},
		MaxLoggedTitle: config.Titles.MaxLoggedTitle,
	}
}
