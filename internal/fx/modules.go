package fx

import (
	"faceit-stats/internal/api"
	"faceit-stats/internal/config"
	"faceit-stats/internal/logger"
	"faceit-stats/internal/server"
	"faceit-stats/internal/service"

	"go.uber.org/fx"
)

func ProvideFaceitAPI(client *api.FaceitClient) service.FaceitAPI {
	return client
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// api client
	fx.Provide(api.NewFaceitClient),
	fx.Provide(ProvideFaceitAPI),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewRatingService),
	// server
	fx.Provide(server.NewStatsServer),
)
