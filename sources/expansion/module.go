package expansion

import "go.uber.org/fx"

var Module = fx.Module("expansion",
	fx.Provide(
		NewExpanderConfig,
		NewExpander,
	),
)
