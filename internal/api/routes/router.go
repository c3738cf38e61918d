package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/opstrack/forms-go/internal/api/handlers"
	"github.com/opstrack/forms-go/internal/api/middleware"
	"github.com/opstrack/forms-go/internal/application"
	"github.com/opstrack/forms-go/internal/repository"
	"github.com/opstrack/forms-go/internal/storage"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	// init
	repos_instance := repository.NewRepositories(db)
	services_instance := application.New(repos_instance, storage.NewMinioStore())
	handlers_instance := handlers.New(services_instance, r)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		forms := auth.Group("/forms")
		{
			forms.GET("", handlers_instance.Form.GetForms)
			forms.GET("/:id", handlers_instance.Form.GetFormByID)
			forms.GET("/:id/schema", handlers_instance.Form.GetValidationSchema)
			forms.GET("/:id/report", handlers_instance.Report.GetReport)

			forms.POST("", middleware.Admin(), handlers_instance.Form.CreateForm)
			forms.PUT("/:id", middleware.Admin(), handlers_instance.Form.UpdateForm)
			forms.DELETE("/:id", middleware.Admin(), handlers_instance.Form.DeleteForm)
			forms.POST("/:id/fields", middleware.Admin(), handlers_instance.Form.AddField)

			forms.POST("/:id/responses", handlers_instance.Response.CreateResponse)
			forms.GET("/:id/responses", handlers_instance.Response.ListResponses)
		}

		fields := auth.Group("/fields")
		{
			fields.PUT("/:id", middleware.Admin(), handlers_instance.Form.UpdateField)
			fields.DELETE("/:id", middleware.Admin(), handlers_instance.Form.DeactivateField)
		}

		responses := auth.Group("/responses")
		{
			responses.GET("/:id", handlers_instance.Response.GetResponse)
			responses.PUT("/:id", handlers_instance.Response.UpdateResponse)
			responses.DELETE("/:id", handlers_instance.Response.DeleteResponse)
			responses.PUT("/:id/review", middleware.Admin(), handlers_instance.Response.ReviewResponse)
		}
	}
}
