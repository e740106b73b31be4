package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"job-tracker-backend/config"
	apiv1 "job-tracker-backend/controllers/v1"
	"job-tracker-backend/fiberlog"
	"job-tracker-backend/initializers"
	"job-tracker-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	//api
	api := fiber.New()
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api", api)
	api.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, X-User-Id, X-Org-Id",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	api.Use(middleware.Identity())
	apiv1.InitApplicationApiRouters(api)
	apiv1.InitAttachmentApiRouters(api)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
