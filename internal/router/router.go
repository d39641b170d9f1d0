package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/weiwangfds/notestore/config"
	_ "github.com/weiwangfds/notestore/docs" // swagger docs
	"github.com/weiwangfds/notestore/internal/handler"
	"github.com/weiwangfds/notestore/internal/middleware"
	noteservice "github.com/weiwangfds/notestore/internal/service/note"
)

// Router 路由配置
type Router struct {
	engine *gin.Engine
}

// NewRouter 创建路由实例
// 参数:
//   - cfg: 应用配置（只读）
//   - noteService: 笔记服务
func NewRouter(cfg *config.Config, noteService noteservice.NoteService) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	loggerMiddleware := middleware.NewLoggerMiddleware()
	noteHandler := handler.NewNoteHandler(noteService)

	engine.Use(gin.Recovery())
	engine.Use(loggerMiddleware.RequestID())
	engine.Use(loggerMiddleware.Logger())
	engine.Use(middleware.RequestLogger())

	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept-Language", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader, "X-Error-Code"},
		MaxAge:          86400,
	}))

	if cfg.Docs.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 健康检查
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Service is running",
		})
	})

	engine.GET("/UploadForm.html", handler.UploadForm)

	notes := engine.Group("/notes")
	{
		notes.GET("", noteHandler.ListNotes)
		notes.GET("/:name", noteHandler.GetNote)
		notes.PUT("/:name", noteHandler.UpdateNote)
		notes.DELETE("/:name", noteHandler.DeleteNote)
	}

	engine.POST("/write", noteHandler.CreateNote)

	return &Router{
		engine: engine,
	}
}

// GetEngine 获取Gin引擎
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
