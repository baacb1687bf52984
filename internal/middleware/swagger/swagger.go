package swagger

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/iwtcode/galilAdapter/docs"
)

// Config содержит настройки отдачи Swagger UI
type Config struct {
	Enabled bool
	Path    string
}

// Setup регистрирует маршруты Swagger UI, если документация включена
func Setup(r *gin.Engine, cfg *Config) {
	if cfg == nil || !cfg.Enabled {
		return
	}
	r.GET(cfg.Path+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
