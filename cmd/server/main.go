package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sutrapos/internal/billing"
	"sutrapos/internal/cart"
	"sutrapos/internal/handlers"
	"sutrapos/internal/invoice"
	"sutrapos/internal/store"
)

const shopName = "SutraPOS - Maheshwari Edition"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	inventoryPath := envOr("INVENTORY_CSV", "./data/inventory.csv")
	transactionsPath := envOr("TRANSACTIONS_CSV", "./data/transactions.csv")
	invoiceDir := envOr("INVOICE_DIR", "./invoices")

	for _, p := range []string{inventoryPath, transactionsPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			log.Fatal("Failed to create data directory:", err)
		}
	}

	catalog, err := store.LoadCatalog(inventoryPath)
	if err != nil {
		log.Fatal("Failed to load inventory table:", err)
	}
	txLog, err := store.LoadTransactions(transactionsPath)
	if err != nil {
		log.Fatal("Failed to load transactions table:", err)
	}
	log.Printf("Loaded %d catalog items, %d transactions", len(catalog.Items()), txLog.Len())

	renderer, err := invoice.NewPDFRenderer(invoiceDir, shopName)
	if err != nil {
		log.Fatal("Failed to prepare invoice directory:", err)
	}

	policy := billing.ParsePolicy(os.Getenv("OVERSELL_POLICY"))
	log.Printf("Over-sell policy: %s", policy)

	sessionCart := cart.New()
	workflow := &billing.Checkout{
		Catalog:  catalog,
		Log:      txLog,
		Renderer: renderer,
		Policy:   policy,
	}

	catalogHandler := &handlers.CatalogHandler{Catalog: catalog}
	cartHandler := &handlers.CartHandler{Catalog: catalog, Cart: sessionCart}
	checkoutHandler := &handlers.CheckoutHandler{Workflow: workflow, Cart: sessionCart}
	recommendHandler := &handlers.RecommendHandler{Catalog: catalog}
	reportHandler := &handlers.ReportHandler{Log: txLog}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{envOr("UI_ORIGIN", "http://localhost:5173")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })

	// Rendered invoice PDFs and catalog images are served as-is.
	r.Static("/invoices", invoiceDir)
	r.Static("/uploads", "./uploads")

	api := r.Group("/api")
	{
		api.GET("/catalog", catalogHandler.List)
		api.POST("/inventory", catalogHandler.AddItem)

		api.GET("/cart", cartHandler.Show)
		api.POST("/cart/items", cartHandler.AddItem)
		api.DELETE("/cart", cartHandler.Clear)

		api.POST("/checkout", checkoutHandler.Checkout)
		api.GET("/recommend", recommendHandler.Suggest)
		api.GET("/reports", reportHandler.GetSalesReport)
	}

	addr := ":" + envOr("PORT", "8080")
	log.Println("Server starting on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
