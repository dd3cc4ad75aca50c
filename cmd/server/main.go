package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/gorilla/mux"

	httpapi "stayhub-backend/internal/api/http"
	"stayhub-backend/internal/config"
	"stayhub-backend/internal/events"
	"stayhub-backend/internal/identity"
	"stayhub-backend/internal/logger"
	"stayhub-backend/internal/repository/dynamo"
	"stayhub-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting StayHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Record store configuration", "listings", cfg.Tables.Listings, "orders", cfg.Tables.Orders, "users", cfg.Tables.Users)
	logger.Info("Identity configuration", "provider", cfg.Identity.Provider)

	awsConfig, err := loadAWSConfig(cfg)
	if err != nil {
		logger.Error("Failed to load AWS configuration", "error", err)
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	dynamoClient := dynamodb.NewFromConfig(awsConfig, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})
	eventBridgeClient := eventbridge.NewFromConfig(awsConfig, func(o *eventbridge.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})

	// Initialize Identity Provider
	var provider identity.Provider
	switch cfg.Identity.Provider {
	case "local":
		logger.Info("Using local identity provider (in-memory accounts)")
		provider = identity.NewLocalProvider(cfg.Identity.Secret)
	default:
		cognitoClient := cognitoidentityprovider.NewFromConfig(awsConfig, func(o *cognitoidentityprovider.Options) {
			if cfg.AWS.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
			}
		})
		provider = identity.NewCognitoProvider(cognitoClient, cfg.Identity.UserPoolID, cfg.Identity.ClientID)
	}

	// Initialize Repositories
	store := dynamo.NewStore(dynamoClient, dynamo.Tables{
		Listings: cfg.Tables.Listings,
		Orders:   cfg.Tables.Orders,
		Users:    cfg.Tables.Users,
	})

	// Initialize Event Publisher
	publisher := events.NewEventBridgePublisher(eventBridgeClient, cfg.Events.BusName, cfg.Events.Source)

	// Initialize Services
	listingSvc := service.NewListingService(store.ListingRepository, provider)
	orderSvc := service.NewOrderService(store.OrderRepository, provider)
	userSvc := service.NewUserService(store.UserRepository, provider, publisher)

	// Initialize HTTP handlers
	listingHandler := httpapi.NewListingHandler(listingSvc)
	orderHandler := httpapi.NewOrderHandler(orderSvc)
	userHandler := httpapi.NewUserHandler(userSvc)

	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, listingHandler, orderHandler, userHandler)

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}

func loadAWSConfig(cfg *config.Config) (aws.Config, error) {
	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.AWS.Region),
	}
	// Static credentials (required for localstack-style endpoints)
	if cfg.AWS.Key != "" && cfg.AWS.Secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.Key, cfg.AWS.Secret, ""),
		))
	}
	return awscfg.LoadDefaultConfig(context.Background(), opts...)
}
