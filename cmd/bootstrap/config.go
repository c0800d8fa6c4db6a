package bootstrap

import (
	"log/slog"

	"bibliolights/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the settings that change admission behaviour. Secrets stay out.
func logEffectiveConfig(logger *slog.Logger, cfg config.Config) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"db_max_conns", cfg.DB.MaxConns,
		"jwt_duration", cfg.JWT.Duration,
		"release_on_reject", cfg.Admission.ReleaseOnReject,
		"log_level", cfg.Log.Level)
}
