package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"educonnect/config"
	"educonnect/database"
	"educonnect/fixtures"
	"educonnect/handlers"
	"educonnect/middleware"
	"educonnect/routes"
	"educonnect/store"
	"educonnect/websocket"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the EduConnect API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Println("starting EduConnect server...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := database.Connect(cfg.DataFile); err != nil {
		return err
	}
	defer database.Disconnect()
	log.Println("document store ready")

	// Session-scoped collections, seeded from the static fixtures. State
	// here lives for the process lifetime only.
	st := store.New()
	st.SeedPosts(fixtures.Posts())
	log.Printf("seeded %d posts, %d courses, %d achievements",
		st.Len(store.Posts), len(fixtures.Courses()), len(fixtures.Achievements()))

	api := handlers.New(st, cfg)
	router := routes.SetupRouter(api, cfg)

	wsManager := websocket.NewManager(st, cfg.Debounce)
	go wsManager.Start()

	router.GET("/ws/feed", middleware.JWTAuth(cfg.JWTSecret), func(c *gin.Context) {
		wsManager.Serve(c.Writer, c.Request, c.GetString("userId"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("forced shutdown:", err)
	}

	log.Println("server stopped")
	return nil
}
