package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"klinikku_backend/internals/configs"
	database "klinikku_backend/internals/databases"
	"klinikku_backend/internals/features/attendance/audit"
	billingservice "klinikku_backend/internals/features/finance/billing/service"
	helper "klinikku_backend/internals/helpers"
	"klinikku_backend/internals/middlewares"
	"klinikku_backend/internals/route"
	"klinikku_backend/internals/scheduler"
)

func main() {
	configs.LoadEnv()

	database.ConnectDB()
	database.TunePool()
	database.AutoMigrate()
	database.WarmUpQueries()

	app := fiber.New(fiber.Config{
		AppName:     "klinikku_backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	middlewares.SetupMiddlewares(app)

	billingservice.InitMidtrans()

	// Audit trail absensi ke Mongo (opsional, aktif kalau MONGO_URI diset)
	var auditSink *audit.MongoSink
	if configs.MongoURI != "" {
		sink, err := audit.NewMongoSink(configs.MongoURI)
		if err != nil {
			log.Println("⚠️ Audit trail nonaktif:", err)
		} else {
			auditSink = sink
			log.Println("✅ Audit trail Mongo aktif")
		}
	}
	if auditSink != nil {
		route.SetupRoutes(app, database.DB, auditSink)
	} else {
		route.SetupRoutes(app, database.DB, nil)
	}

	cronRunner := scheduler.Start(database.DB)

	// Graceful shutdown: tunggu request aktif dan hentikan cron
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutdown signal diterima...")
		cronRunner.Stop()
		if err := app.Shutdown(); err != nil {
			log.Println("❌ Gagal shutdown:", err)
		}
	}()

	port := configs.GetEnvOr("PORT", "8080")
	log.Println("🚀 klinikku_backend listen di port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("❌ Server berhenti:", err)
	}
}
