package restapi

import (
	"embed"
	"html/template"
	"net/http"
	"net/http/pprof"

	"erc20_indexer/internal/infrastructure/configloader"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templateFS embed.FS

//go:embed assets/erc20token.svg
var defaultTokenLogo []byte

// SetupRouter настраивает и возвращает экземпляр Gin роутера.
func SetupRouter(
	cfg *configloader.Config,
	zapLogger *zap.Logger,
	balanceHandler *BalanceHandler,
	pageHandler *PageHandler,
	networkHandler *NetworkHandler,
) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowOrigins) == 0 || (len(cfg.Server.AllowOrigins) == 1 && cfg.Server.AllowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.Use(ZapLoggerMiddleware(zapLogger))
	router.Use(gin.Recovery())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/index.html")))

	// Страница
	router.GET("/", pageHandler.Show)
	router.POST("/query", pageHandler.Submit)
	router.POST("/connect", pageHandler.Connect)
	router.GET("/static/erc20token.svg", func(c *gin.Context) {
		c.Data(http.StatusOK, "image/svg+xml", defaultTokenLogo)
	})

	// Группа для API v1
	v1 := router.Group("/api/v1")
	{
		v1.POST("/balances", balanceHandler.PostBalances)
		v1.GET("/resolve/:name", balanceHandler.GetResolve)
		v1.POST("/wallet/connect", balanceHandler.PostWalletConnect)
		v1.GET("/networks", networkHandler.GetNetworks)
		v1.GET("/networks/:identifier", networkHandler.GetNetwork)
		v1.GET("/session", pageHandler.State)
	}

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Server.EnablePprof {
		pprofRouter := router.Group("/debug/pprof")
		{
			pprofRouter.GET("/", gin.WrapF(pprof.Index))
			pprofRouter.GET("/cmdline", gin.WrapF(pprof.Cmdline))
			pprofRouter.GET("/profile", gin.WrapF(pprof.Profile))
			pprofRouter.POST("/symbol", gin.WrapF(pprof.Symbol))
			pprofRouter.GET("/symbol", gin.WrapF(pprof.Symbol))
			pprofRouter.GET("/trace", gin.WrapF(pprof.Trace))
			pprofRouter.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
			pprofRouter.GET("/block", gin.WrapH(pprof.Handler("block")))
			pprofRouter.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
			pprofRouter.GET("/heap", gin.WrapH(pprof.Handler("heap")))
			pprofRouter.GET("/mutex", gin.WrapH(pprof.Handler("mutex")))
			pprofRouter.GET("/threadcreate", gin.WrapH(pprof.Handler("threadcreate")))
		}
		zapLogger.Info("Pprof endpoints enabled under /debug/pprof")
	}

	return router
}
