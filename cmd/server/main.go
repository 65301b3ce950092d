package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmlink_front_end/internal/backend"
	"farmlink_front_end/internal/cache"
	"farmlink_front_end/internal/cart"
	"farmlink_front_end/internal/catalog"
	"farmlink_front_end/internal/config"
	"farmlink_front_end/internal/handlers"
	"farmlink_front_end/internal/handlers/admin"
	"farmlink_front_end/internal/handlers/farmer"
	"farmlink_front_end/internal/handlers/ws"
	"farmlink_front_end/internal/routes"
	"farmlink_front_end/internal/session"
	"farmlink_front_end/internal/token"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	tokens := token.NewStore(config.TokenFile())
	client := backend.New(config.BackendURL(), tokens)
	log.Println("✅ Client backend initialisé sur", config.BackendURL())

	// Cache Redis optionnel pour le catalogue public
	if os.Getenv("REDIS_HOST") != "" {
		if err := cache.InitRedis(); err != nil {
			log.Printf("⚠️ Cache désactivé: %v", err)
		}
	} else {
		log.Println("⚠️ REDIS_HOST absent — cache catalogue désactivé")
	}

	resolver := session.NewResolver(client, tokens)

	// Réhydratation de la session au démarrage : token stocké validé
	// contre le backend, fail-closed en cas de doute
	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	resolved := resolver.Resolve(startupCtx)
	cancel()
	log.Println("🔐 Session au démarrage:", resolved.Status)

	reconciler := cart.NewReconciler(client)
	query := catalog.NewQuery(cache.NewCachedCatalog(client))

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	routes.RegisterRoutes(r, resolver, routes.Handlers{
		Auth:            handlers.NewAuthHandler(client, tokens, resolver),
		Catalog:         handlers.NewCatalogHandler(query),
		Cart:            handlers.NewCartHandler(reconciler),
		AdminCategories: admin.NewCategoryHandler(client),
		AdminProducts:   admin.NewProductHandler(client),
		AdminUsers:      admin.NewUserHandler(client),
		FarmerProducts:  farmer.NewProductHandler(client),
		CartSocket:      ws.NewCartSocket(reconciler, resolver),
	})

	server := &http.Server{
		Addr:         ":" + config.Port(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("🚀 Frontend FarmLink lancé sur le port", config.Port())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Impossible de démarrer le serveur: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Arrêt du serveur...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Arrêt forcé: %v", err)
	}
	if err := cache.CloseRedis(); err != nil {
		log.Printf("⚠️ Erreur fermeture Redis: %v", err)
	}

	log.Println("✅ Serveur arrêté proprement")
}
