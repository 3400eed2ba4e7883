// /cmd/web/main.go
package main

import (
	"encoding/gob"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rjdoces/rj-doces/internal/cart"
	"github.com/rjdoces/rj-doces/internal/config"
	"github.com/rjdoces/rj-doces/internal/handler"
	"github.com/rjdoces/rj-doces/internal/middleware"
	"github.com/rjdoces/rj-doces/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("arquivo .env não encontrado, usando variáveis do ambiente")
	}
	cfg := config.Load()

	// O carrinho viaja na sessão; o gob precisa conhecer o tipo.
	gob.Register(cart.Carrinho{})

	// O store em memória é o modo mock e também o reserva local quando o
	// banco está configurado mas indisponível.
	memoria := store.NewMemory()
	var catalogo store.CatalogStore = memoria
	var pedidos store.OrderStore = memoria

	if cfg.DatabaseURL != "" {
		banco, err := store.NewGorm(cfg.DatabaseURL)
		if err != nil {
			slog.Error("falha ao conectar ao banco de dados", "erro", err)
			os.Exit(1)
		}
		catalogo = banco
		pedidos = store.NewComFallback(banco, memoria)
		slog.Info("usando banco de dados", "fallback", "memória local")
	} else {
		slog.Info("DATABASE_URL vazio, usando store em memória")
	}

	if err := store.SeedProdutos(catalogo); err != nil {
		slog.Error("falha ao popular o catálogo inicial", "erro", err)
		os.Exit(1)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"

	vitrineHandler := &handler.VitrineHandler{Catalogo: catalogo}
	cartHandler := &handler.CartHandler{Store: sessionStore, Catalogo: catalogo}
	checkoutHandler := &handler.CheckoutHandler{
		Store:        sessionStore,
		Pedidos:      pedidos,
		TelefoneLoja: cfg.TelefoneLoja,
	}
	adminHandler := &handler.AdminHandler{
		Catalogo:  catalogo,
		Pedidos:   pedidos,
		UploadDir: cfg.UploadDir,
	}

	router := gin.Default()
	router.Use(middleware.Prometheus())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/produtos", vitrineHandler.ShowProdutos)

		api.GET("/carrinho", cartHandler.ShowCart)
		api.POST("/carrinho/adicionar/:id", cartHandler.AddToCart)
		api.POST("/carrinho/quantidade/:id", cartHandler.UpdateQuantidade)
		api.DELETE("/carrinho/remover/:id", cartHandler.RemoveFromCart)
		api.DELETE("/carrinho", cartHandler.ClearCart)

		api.POST("/checkout", checkoutHandler.Checkout)
	}

	admin := router.Group("/api/admin")
	admin.Use(handler.AdminToken(cfg.AdminToken))
	{
		admin.GET("/pedidos", adminHandler.ShowPedidos)
		admin.PUT("/pedidos/:id/status", adminHandler.UpdateStatus)
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.POST("/produtos", adminHandler.SaveProduto)
		admin.DELETE("/produtos/:id", adminHandler.DeleteProduto)
	}

	slog.Info("servidor rodando", "porta", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("falha ao iniciar o servidor", "erro", err)
		os.Exit(1)
	}
}
