package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cryda/reconciler/internal/pkg/logger"
)

// Checker verifies that a single dependency is reachable.
type Checker func(ctx context.Context) error

// Service runs registered dependency checks for the readiness endpoint.
type Service struct {
	logger   *logger.ZapLogger
	checkers map[string]Checker
}

// NewService creates a health service
func NewService(zapLogger *logger.ZapLogger) *Service {
	return &Service{
		logger:   zapLogger,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency check
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs all registered checkers and returns per-dependency status.
func (s *Service) Check(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := checker(checkCtx)
		cancel()

		if err != nil {
			results[name] = err.Error()
			healthy = false
			s.logger.Warn("health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		} else {
			results[name] = "ok"
		}
	}

	return results, healthy
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// RegisterEndpoints registers liveness and readiness endpoints.
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		results, healthy := svc.Check(c.Request().Context())
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, results)
	})
}
