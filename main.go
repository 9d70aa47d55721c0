package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/gridwalk/api"
	api_i "github.com/beka-birhanu/gridwalk/api/i"
	simapi "github.com/beka-birhanu/gridwalk/api/sim"
	"github.com/beka-birhanu/gridwalk/config"
	"github.com/beka-birhanu/gridwalk/service"
	"github.com/beka-birhanu/gridwalk/web"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	appLogger     *log.Logger
	simService    *service.Sim
	simController api_i.Controller
	router        *api.Router
)

func initLogger() {
	appLogger = log.NewWithOptions(os.Stdout, log.Options{Prefix: "APP"})
	if level, err := log.ParseLevel(config.Envs.LogLevel); err == nil {
		appLogger.SetLevel(level)
	}
}

func initSimService() {
	simLogger := appLogger.WithPrefix("SIM")

	var err error
	simService, err = service.NewSim(config.Envs.MaxDimension, simLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Simulation service initialized")
}

func initSimController() {
	defaults := simapi.Defaults{
		Seed:   config.Envs.DefaultSeed,
		Width:  config.Envs.DefaultWidth,
		Height: config.Envs.DefaultHeight,
	}
	simController = simapi.NewController(simService, defaults, appLogger.WithPrefix("API"))
	appLogger.Info("Simulation controller initialized")
}

func initRouter() {
	hostPage, err := web.FS()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading host page: %v", err))
		os.Exit(1)
	}

	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.Port),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{simController},
		Static:      hostPage,
	})
	appLogger.Info("Router initialized")
}

func main() {
	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	initLogger()
	initSimService()
	initSimController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
