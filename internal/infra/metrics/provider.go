package metrics

import (
	"agrimatch/internal/domain/service"

	"go.uber.org/fx"
)

// Module provides the Recorder and binds it as service.MatchMetrics.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRecorder,
		func(r *Recorder) service.MatchMetrics { return r },
	),
)
