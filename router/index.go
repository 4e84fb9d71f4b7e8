package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)

	user := v1.Group("/users", logger.New())
	user.Get("/", middleware.Protected(), handler.GetUsers)
	user.Post("/", middleware.Protected(), validate.CreateUser(), handler.CreateUser)
	user.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	user.Put("/:userId", middleware.Protected(), validate.UpdateUser("userId"), handler.UpdateUser)
	user.Patch("/:userId/active", middleware.Protected(), validate.GetById("userId"), handler.ToggleActiveUser)
	user.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteUser)

	table := v1.Group("/tables", logger.New())
	table.Get("/board/live", middleware.Protected(), websocket.New(handler.TableBoardConnection))
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Get("/:tableId", middleware.Protected(), validate.GetById("tableId"), handler.GetTableById)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Put("/:tableId", middleware.Protected(), validate.UpdateTable("tableId"), handler.UpdateTable)
	table.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTable)

	category := v1.Group("/categories", logger.New())
	category.Get("/", middleware.Protected(), handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.UpdateCategory("categoryId"), handler.UpdateCategory)
	category.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCategory)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
	dish := v1.Group("/dishes", logger.New())
	dish.Get("/", middleware.Protected(), handler.GetDishes)
	dish.Get("/:dishId", middleware.Protected(), validate.GetById("dishId"), handler.GetDishById)
	dish.Post("/", middleware.Protected(), validate.CreateDish(), handler.CreateDish)
	dish.Put("/:dishId", middleware.Protected(), validate.UpdateDish("dishId"), handler.UpdateDish)
	dish.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteDish)

	order := v1.Group("/orders", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	order.Get("/:orderId/receipt", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderReceipt)
	order.Post("/:orderId/items", middleware.Protected(), validate.AddOrderItem("orderId"), handler.AddOrderItem)
	order.Delete("/:orderId/items/:itemId", middleware.Protected(), handler.RemoveOrderItem)
	order.Patch("/:orderId/close", middleware.Protected(), validate.CloseOrder("orderId"), handler.CloseOrder)
	order.Get("/:orderId/payments", middleware.Protected(), validate.GetById("orderId"), handler.GetPayments)
	order.Post("/:orderId/payments", middleware.Protected(), validate.CreatePayment("orderId"), handler.CreatePayment)
	order.Post("/:orderId/payments/pix-qr", middleware.Protected(), validate.PixQR("orderId"), handler.GeneratePixQR)

	admin := v1.Group("/admin", logger.New())
	admin.Post("/cleanup", middleware.Protected(), validate.Cleanup(), handler.Cleanup)
	admin.Get("/dashboard", middleware.Protected(), handler.GetAdminDashboard)

	report := v1.Group("/reports", logger.New())
	report.Get("/data", middleware.Protected(), handler.SalesReport)
	report.Get("/csv", middleware.Protected(), handler.ExportReportCSV)
	report.Get("/pdf", middleware.Protected(), handler.ExportReportPDF)

	waiter := v1.Group("/waiter", logger.New())
	waiter.Get("/dashboard", middleware.Protected(), handler.GetWaiterDashboard)
	waiter.Get("/sales", middleware.Protected(), handler.GetWaiterSales)
}
