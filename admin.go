package main

import (
	"html/template"
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storeadmin.GO/api"
	_ "storeadmin.GO/api/create"
	_ "storeadmin.GO/api/dashboard"
	_ "storeadmin.GO/api/listing"
	_ "storeadmin.GO/api/views"
	"storeadmin.GO/config"
	"storeadmin.GO/core/auth"
	_ "storeadmin.GO/cron/jobs"
	_ "storeadmin.GO/custom"
	html "storeadmin.GO/html"
	entity "storeadmin.GO/model/entity"
	"storeadmin.GO/upstream"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, dashboard snapshots stay in-process."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, snapshot mirroring disabled."
		}
	}
	log.Println(redisStatus)

	deps := api.Deps{Client: upstream.NewFromEnv()}

	db, err := config.NewDB()
	if err != nil {
		log.Printf("local store unavailable, saved views and audit log disabled: %v", err)
	} else {
		if err := db.AutoMigrate(&entity.SavedView{}, &entity.AuditEntry{}); err != nil {
			log.Fatalf("migrate local store: %v", err)
		}
		deps.DB = db
		log.Println("Local store connection successful.")
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	// Register the template renderer
	t := &html.Template{
		Templates: template.Must(template.ParseGlob("html/**/*.html")),
	}
	e.Renderer = t

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, deps)
	api.ApplyRoutes(e, deps)

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Admin console running on :%s (upstream %s)", port, config.AppConfig.UpstreamURL)
	e.Logger.Fatal(e.Start(":" + port))
}
