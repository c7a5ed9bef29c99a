package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/vastramart/vastramart-api/controllers"
	"github.com/vastramart/vastramart-api/identity"
	"github.com/vastramart/vastramart-api/initializers"
	"github.com/vastramart/vastramart-api/payments"
	"github.com/vastramart/vastramart-api/routes"
	"github.com/vastramart/vastramart-api/services"
	"github.com/vastramart/vastramart-api/stores"
	"github.com/vastramart/vastramart-api/utils"
)

func main() {
	initializers.LoadEnv()

	db, err := initializers.ConnectToDB()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatalf("db: migrate: %v", err)
	}

	var cache *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:         addr,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	}

	cartService := services.NewCartService(stores.NewCartStore(db))
	orderService := services.NewOrderService(stores.NewOrderStore(db))

	identityClient := identity.NewClient(
		os.Getenv("IDENTITY_API_URL"),
		os.Getenv("IDENTITY_API_KEY"),
		5*time.Second,
	)
	notifier := services.NewNotificationService(identityClient, utils.SMTPMailer{}, "templates/order_confirmation.html")

	razorpayBaseURL := os.Getenv("RAZORPAY_BASE_URL")
	if razorpayBaseURL == "" {
		razorpayBaseURL = "https://api.razorpay.com"
	}
	issuer := payments.NewRazorpayClient(
		razorpayBaseURL,
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
	)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://www.vastramart.in"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, controllers.NewProductController(db, cache))
	routes.CarouselRoutes(server, controllers.NewCarouselController(db))
	routes.AnnouncementRoutes(server, controllers.NewAnnouncementController(db))
	routes.CartRoutes(server, controllers.NewCartController(cartService))
	routes.OrderRoutes(server, controllers.NewOrderController(orderService, notifier))
	routes.PaymentRoutes(server, controllers.NewPaymentController(orderService, issuer))

	server.Run()
}
