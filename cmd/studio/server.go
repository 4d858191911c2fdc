// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorstudio/internal/config"
	"github.com/thatcatcamp/colorstudio/internal/handlers"
	"github.com/thatcatcamp/colorstudio/internal/live"
	"github.com/thatcatcamp/colorstudio/internal/middleware"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the Color Studio HTTP server (preview page, JSON API and live feed)",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := mustOpenStudio(ctx)
		defer s.Close()

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = config.GetString("server.http_port")
		}

		stopBackups := startBackupScheduler(s)
		defer stopBackups()

		fmt.Printf("Starting HTTP server on http://localhost:%s\n", port)
		if err := serve(ctx, s, ":"+port); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

// newRouter wires the handlers, middleware and live feed around the studio state
func newRouter(s *studio) (*gin.Engine, func()) {
	r := gin.Default()
	// Without trusted proxies ClientIP is always the TCP peer
	if err := r.SetTrustedProxies(config.GetStringSlice("server.trusted_proxies")); err != nil {
		log.Printf("Ignoring invalid server.trusted_proxies: %v", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("server.allowed_ips")))

	// PNG renders are the only expensive endpoint
	perMinute := config.GetInt("export.rate_limit")
	if perMinute <= 0 {
		perMinute = 10
	}
	limiter := middleware.NewRateLimiter(perMinute, time.Minute)
	r.Use(middleware.RateLimitMiddleware(limiter, "/api/export/png"))

	hub := live.NewHub(s.state.Snapshot)
	s.state.Subscribe(hub)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"clients": hub.ClientCount(),
		})
	})

	handlers.NewHandler(s.state, s.store, hub, exportOptions()).Register(r)

	return r, limiter.Stop
}

// serve runs the HTTP server until ctx is cancelled
func serve(ctx context.Context, s *studio, addr string) error {
	r, cleanup := newRouter(s)
	defer cleanup()

	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Server shutdown error: %v\n", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve on %s: %w", addr, err)
	}
	return nil
}

func init() {
	serverStartCmd.Flags().String("port", "", "Port to listen on (default from server.http_port)")

	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
