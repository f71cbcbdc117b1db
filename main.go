package main

import (
	"campusconnect/config"
	"campusconnect/database"
	adminRoutes "campusconnect/routers/adminRoutes"
	authRoutes "campusconnect/routers/authRoutes"
	courseRoutes "campusconnect/routers/courseRoutes"
	teacherRoutes "campusconnect/routers/teacherRoutes"
	"campusconnect/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded assignment files
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Nightly progress reconciliation
	utils.InitializeProgressScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
