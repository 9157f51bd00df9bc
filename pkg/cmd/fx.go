package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(load, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(validate, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(schemaCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(mappingCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
