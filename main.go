package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/viper"

	"dores/internal/models"
	"dores/internal/repositories"
	"dores/internal/services"
	"dores/pkg/apiclient"
	"dores/pkg/storage"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("DORES_API_URL", "https://dores.cruznegradev.com/api")
	viper.SetDefault("DORES_STORAGE_PATH", "dores.db")
	viper.SetDefault("DORES_HTTP_TIMEOUT", "30s")
	viper.AutomaticEnv()

	apiURL := viper.GetString("DORES_API_URL")
	storagePath := viper.GetString("DORES_STORAGE_PATH")
	timeout := viper.GetDuration("DORES_HTTP_TIMEOUT")

	// --- Initialize local storage ---
	// Tokens and the cart live in a small SQLite database so they survive
	// restarts, mirroring what a device key-value store provides.
	store, err := storage.NewSQLiteStore(storagePath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- Initialize API clients ---
	client, err := apiclient.NewClient(apiclient.Config{BaseURL: apiURL, Timeout: timeout})
	if err != nil {
		log.Fatalf("Failed to initialize API client: %v", err)
	}

	// The auth service supplies tokens to the authenticated client; the
	// public auth endpoints it calls only need the plain client, so the
	// wiring stays acyclic.
	authRepo := repositories.NewAPIAuthRepository(client)
	authService := services.NewAuthService(authRepo, store)
	authClient := apiclient.NewAuthClient(client, authService)

	// --- Initialize repositories ---
	userRepo := repositories.NewAPIUserRepository(authClient)
	orderRepo := repositories.NewAPIOrderRepository(authClient)
	commerceRepo := repositories.NewAPICommerceRepository(client, authClient)
	menuRepo := repositories.NewAPIMenuRepository(client, authClient)
	addressRepo := repositories.NewAPIAddressRepository(authClient)
	notificationRepo := repositories.NewAPINotificationRepository(authClient)

	// --- Initialize services ---
	userService := services.NewUserService(userRepo, store)
	commerceService := services.NewCommerceService(commerceRepo, store)
	menuService := services.NewMenuService(menuRepo, store)
	addressService := services.NewAddressService(addressRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	cartService := services.NewCartService(store, orderRepo)
	checkoutService := services.NewCheckoutService(cartService, orderRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Restore the persisted cart and its draft order, if any.
	if err := cartService.Load(ctx); err != nil {
		log.Printf("Could not restore cart: %v", err)
	}
	if orderID := cartService.OrderID(); orderID != 0 {
		log.Printf("Restored cart with %d item(s), open order %d", len(cartService.Items()), orderID)
	}

	// --- Demo flow ---
	// With credentials in the environment the demo logs in and walks the
	// browsing surface; without them it only exercises the public endpoints.
	email := viper.GetString("DORES_EMAIL")
	password := viper.GetString("DORES_PASSWORD")

	if email != "" && password != "" {
		login := models.LoginData{Email: email, Password: password}
		if _, err := authService.Login(ctx, login); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		log.Printf("Logged in as %s", email)

		user, err := userService.GetCurrentUser(ctx)
		if err != nil {
			log.Fatalf("Failed to fetch profile: %v", err)
		}
		log.Printf("Hello %s %s (balance %.2f)", user.FirstName, user.LastName, user.PositiveBalance)

		commerces, err := commerceService.GetAllCommerces(ctx)
		if err != nil {
			log.Fatalf("Failed to list commerces: %v", err)
		}
		for _, commerce := range commerces {
			log.Printf("Commerce %d: %s (%.1f km)", commerce.ID, commerce.BusinessName, commerce.Distance)
		}

		if addr, err := addressService.DefaultAddress(ctx); err == nil && addr != nil {
			log.Printf("Default delivery address: %s, %s", addr.Title, addr.Streets)
		}

		if page, err := notificationService.GetNotifications(ctx, 0, 5); err == nil {
			log.Printf("You have %d notification page(s)", page.TotalPages)
		}

		log.Printf("Cart total: %.2f (order total %.2f)", cartService.Total(), checkoutService.Total())
	} else {
		log.Println("DORES_EMAIL/DORES_PASSWORD not set; browsing public endpoints only")

		categories, err := menuService.GetAllCategories(ctx)
		if err != nil {
			log.Fatalf("Failed to list categories: %v", err)
		}
		for _, category := range categories {
			log.Printf("Category %d: %s", category.ID, category.Name)
		}
	}
}
