package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/wso2/identity-consent-state-service/internal/system/client"
	"github.com/wso2/identity-consent-state-service/internal/system/config"
	"github.com/wso2/identity-consent-state-service/internal/system/constants"
	syscontext "github.com/wso2/identity-consent-state-service/internal/system/context"
	"github.com/wso2/identity-consent-state-service/internal/system/log"
	"github.com/wso2/identity-consent-state-service/internal/system/managers"
	"github.com/wso2/identity-consent-state-service/internal/system/schedulers"
)

const configFile = "repository/conf/deployment.yaml"

const defaultSyncIntervalMinutes = 60 * 24

func main() {
	cssHome := getCSSHome()

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	// Load the configuration file
	cssConfig, err := config.LoadConfig(cssHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeCSSRuntime(cssHome, cssConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	// Initialize logger
	logLevel := cssConfig.Log.LogLevel
	if logLevel == "" {
		logLevel = "INFO"
	}
	if err := log.Init(logLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	// Start the consent update-check scheduler when an endpoint is configured.
	if cssConfig.UpdateCheck.URL != "" {
		intervalMinutes := cssConfig.UpdateCheck.IntervalMinutes
		if intervalMinutes <= 0 {
			intervalMinutes = defaultSyncIntervalMinutes
		}
		updateClient := client.NewConsentUpdateClient(*cssConfig)
		go schedulers.StartConsentSyncScheduler(updateClient, time.Duration(intervalMinutes)*time.Minute)
	}

	serverAddr := fmt.Sprintf("%s:%d", cssConfig.Addr.Host, cssConfig.Addr.Port)
	mux := enableCORS(withTraceID(initMultiplexer()))
	logger.Info("Consent state service starting on: " + serverAddr)

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err))
	}

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

// withTraceID attaches a trace id to every request, honoring an incoming
// X-Request-ID header, and echoes it back so callers can correlate errors.
func withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Request-ID")
		if traceID == "" {
			traceID = syscontext.GenerateTraceID()
		}
		w.Header().Set("X-Trace-ID", traceID)
		next.ServeHTTP(w, r.WithContext(syscontext.WithTraceID(r.Context(), traceID)))
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getCSSHome() string {

	// Parse the service home directory from command line arguments.
	projectHome := ""
	projectHomeFlag := flag.String("cssHome", "", "Path to consent state service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			stdlog.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}

	return projectHome
}
