package http

import (
	"github.com/gin-gonic/gin"

	"workdeck/internal/adapter/http/handlers"
	"workdeck/internal/adapter/http/middleware"
	"workdeck/internal/auth"
)

// Handlers bundles every route handler so RegisterRoutes stays a single
// call site in main.
type Handlers struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Clients       *handlers.ClientHandler
	Projects      *handlers.ProjectHandler
	Applications  *handlers.ApplicationHandler
	Tasks         *handlers.TaskHandler
	Comments      *handlers.CommentHandler
	TimeEntries   *handlers.TimeEntryHandler
	Activities    *handlers.ActivityHandler
	Notifications *handlers.NotificationHandler
	Users         *handlers.UserHandler
	Products      *handlers.ProductHandler
	Subscriptions *handlers.SubscriptionHandler
}

func RegisterRoutes(r *gin.Engine, tokens *auth.TokenManager, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/auth/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(tokens))
	{
		authed.GET("/auth/me", h.Auth.CurrentUser)

		authed.GET("/clients", h.Clients.ListClients)
		authed.POST("/clients", h.Clients.CreateClient)
		authed.GET("/clients/:id", h.Clients.GetClient)
		authed.PATCH("/clients/:id", h.Clients.UpdateClient)
		authed.DELETE("/clients/:id", h.Clients.DeleteClient)

		authed.GET("/projects", h.Projects.ListProjects)
		authed.POST("/projects", h.Projects.CreateProject)
		authed.GET("/projects/:id", h.Projects.GetProject)
		authed.PATCH("/projects/:id", h.Projects.UpdateProject)
		authed.DELETE("/projects/:id", h.Projects.DeleteProject)
		authed.GET("/projects/:id/applications", h.Projects.ListProjectApplications)
		authed.POST("/projects/:id/applications/:applicationId", h.Projects.LinkApplication)
		authed.DELETE("/projects/:id/applications/:applicationId", h.Projects.UnlinkApplication)

		authed.GET("/applications", h.Applications.ListApplications)
		authed.POST("/applications", h.Applications.CreateApplication)
		authed.GET("/applications/:id", h.Applications.GetApplication)
		authed.PATCH("/applications/:id", h.Applications.UpdateApplication)
		authed.DELETE("/applications/:id", h.Applications.DeleteApplication)

		authed.GET("/tasks", h.Tasks.ListTasks)
		authed.POST("/tasks", h.Tasks.CreateTask)
		authed.GET("/tasks/:id", h.Tasks.GetTask)
		authed.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		authed.PATCH("/tasks/:id/status", h.Tasks.UpdateTaskStatus)
		authed.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		authed.GET("/tasks/:id/comments", h.Comments.ListComments)
		authed.POST("/tasks/:id/comments", h.Comments.CreateComment)
		authed.GET("/tasks/:id/time-entries", h.TimeEntries.ListTimeEntries)
		authed.POST("/tasks/:id/time-entries", h.TimeEntries.CreateTimeEntry)
		authed.DELETE("/time-entries/:id", h.TimeEntries.DeleteTimeEntry)

		authed.GET("/activities", h.Activities.ListActivities)

		authed.GET("/notifications", h.Notifications.ListNotifications)
		authed.PATCH("/notifications/:id/read", h.Notifications.MarkRead)
		authed.POST("/notifications/read-all", h.Notifications.MarkAllRead)

		authed.GET("/users", h.Users.ListUsers)
		authed.POST("/users", h.Users.CreateUser)
		authed.GET("/users/:id", h.Users.GetUser)
		authed.PATCH("/users/:id", h.Users.UpdateUser)
		authed.DELETE("/users/:id", h.Users.DeleteUser)
		authed.GET("/users/:id/permissions", h.Users.ListUserPermissions)
		authed.PUT("/users/:id/permissions/clients/:clientId", h.Users.AssignClientPermission)
		authed.PUT("/users/:id/permissions/projects/:projectId", h.Users.AssignProjectPermission)

		authed.GET("/products", h.Products.ListProducts)
		authed.POST("/products", h.Products.CreateProduct)
		authed.GET("/products/:id", h.Products.GetProduct)
		authed.PATCH("/products/:id", h.Products.UpdateProduct)
		authed.DELETE("/products/:id", h.Products.DeleteProduct)

		authed.GET("/subscriptions", h.Subscriptions.ListSubscriptions)
		authed.POST("/subscriptions", h.Subscriptions.CreateSubscription)
		authed.GET("/subscriptions/:id", h.Subscriptions.GetSubscription)
		authed.PATCH("/subscriptions/:id", h.Subscriptions.UpdateSubscription)
		authed.DELETE("/subscriptions/:id", h.Subscriptions.DeleteSubscription)
	}
}
