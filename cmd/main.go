package main

import (
	"context"
	"log"

	"golftrip-service/config"
	"golftrip-service/internal/module/booking/handler"
	"golftrip-service/internal/module/booking/repositories"
	"golftrip-service/internal/module/booking/usecases"
	"golftrip-service/internal/pkg/database"
	"golftrip-service/internal/pkg/http"
	"golftrip-service/internal/pkg/httpclient"
	log_internal "golftrip-service/internal/pkg/log"
	"golftrip-service/internal/pkg/messagestream"
	"golftrip-service/internal/pkg/middleware"
	"golftrip-service/internal/pkg/redis"
	router "golftrip-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init distributed lock
	rs := redsync.New(goredis.NewPool(redisClient))
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	bookingRepo := repositories.New(db, logZap, httpClient, redisClient, rs, &cfg.UserService, &cfg.Xendit)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher, &cfg.Xendit, usecases.EqualSplit)
	middleware := middleware.Middleware{
		Log:       logZap,
		Repo:      bookingRepo,
		CfgXendit: &cfg.Xendit,
	}

	validator := validator.New()
	bookingHandler := handler.BookingHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	consumeNotificationRouter, err := messagestream.NewRouter(publisher, "notification_poisoned", "notification_handler", usecases.TopicNotification, subscriber, bookingHandler.ConsumeNotificationQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_notification_queue router", err)
	}

	messageRouters = append(messageRouters, consumeNotificationRouter)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &middleware)

	return r, messageRouters

}
