package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymflow/gymflow-golang/internal/handlers"
)

// CORSMiddleware tells the browser the local dashboard frontend may talk to
// us. The dashboard is single-tenant and served from the Vite dev port.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every endpoint of the dashboard API.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes ---
		v1.POST("/auth/register", h.Register)
		v1.POST("/auth/login", h.Login)
		v1.POST("/auth/logout", h.Logout)
		v1.GET("/auth/me", h.Me)

		// --- Student Routes ---
		v1.GET("/students", h.ListStudents)
		v1.POST("/students", h.CreateStudent)
		v1.PUT("/students/:id", h.UpdateStudent)
		v1.PATCH("/students/:id/status", h.UpdateStudentStatus)
		v1.DELETE("/students/:id", h.DeleteStudent)

		// --- Transaction Routes ---
		v1.GET("/transactions", h.ListTransactions)
		v1.GET("/transactions/categories", h.Categories)
		v1.POST("/transactions", h.CreateTransaction)
		v1.DELETE("/transactions/:id", h.DeleteTransaction)

		// --- Dashboard ---
		v1.GET("/dashboard/stats", h.GetDashboardStats)

		// --- AI Assistant ---
		v1.GET("/assistant/messages", h.GetMessages)
		v1.POST("/assistant/chat", h.ChatAssistant)
		v1.POST("/assistant/clear", h.ClearChat)

		// --- View Router ---
		v1.GET("/view", h.GetView)
		v1.PUT("/view", h.SetView)
	}

	return router
}
