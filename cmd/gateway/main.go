package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manzanit0/neshry/pkg/env"
	"github.com/manzanit0/neshry/pkg/logger"
	"github.com/manzanit0/neshry/pkg/middleware"
	"github.com/manzanit0/neshry/pkg/neshan"
)

const ServiceName = "gateway"

func init() {
	logger.InitGlobalSlog(ServiceName)
}

func main() {
	env.Load()

	apiKey, err := env.NeshanAPIKey()
	if err != nil {
		panic(err)
	}

	client, err := neshan.New(apiKey)
	if err != nil {
		panic(fmt.Errorf("unable to build neshan client: %w", err))
	}

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.TraceID(), middleware.Logger(false))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/directions", func(c *gin.Context) {
		origin, err := parsePoint(c.Query("origin"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Errorf("invalid origin: %w", err).Error()})
			return
		}

		destination, err := parsePoint(c.Query("destination"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Errorf("invalid destination: %w", err).Error()})
			return
		}

		vehicle, err := parseVehicle(c.DefaultQuery("type", string(neshan.VehicleTypeCar)))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		routes, err := client.Route(c.Request.Context(), vehicle, origin, destination,
			c.Query("avoid_traffic_zone") == "true",
			c.Query("avoid_odd_even_zone") == "true",
			c.Query("alternative") == "true")
		if err != nil {
			respondUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, routes)
	})

	r.GET("/reverse", func(c *gin.Context) {
		point, err := parseLatLng(c.Query("lat"), c.Query("lng"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		address, err := client.ReverseGeocode(c.Request.Context(), point)
		if err != nil {
			respondUpstreamError(c, err)
			return
		}

		c.JSON(http.StatusOK, address)
	})

	port := env.Port()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: fmt.Sprintf(":%s", port), Handler: r}
	go func() {
		slog.Info(fmt.Sprintf("serving HTTP on :%s", port))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error(fmt.Sprintf("server ended abruptly: %s", err.Error()))
		} else {
			slog.Info("server ended gracefully")
		}

		stop()
	}()

	// Listen for OS interrupt
	<-ctx.Done()
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error(fmt.Sprintf("server forced to shutdown: %s", err.Error()))
	}

	slog.Info("server exited")
}

// respondUpstreamError keeps the remote {code, message} payload visible
// to the caller; everything else becomes a bad gateway.
func respondUpstreamError(c *gin.Context, err error) {
	var svcErr *neshan.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(http.StatusBadGateway, gin.H{"code": svcErr.Code, "message": svcErr.Message})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
