package router

import (
	"time"

	"github.com/JavierVixer/OCCHIAPP/internal/config"
	"github.com/JavierVixer/OCCHIAPP/internal/handler"
	"github.com/JavierVixer/OCCHIAPP/internal/infra"
	"github.com/JavierVixer/OCCHIAPP/internal/middleware"
	"github.com/JavierVixer/OCCHIAPP/internal/repository"
	"github.com/JavierVixer/OCCHIAPP/internal/service"
	"github.com/JavierVixer/OCCHIAPP/internal/storage"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store
func New(cfg *config.Config, store storage.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(300, time.Minute)) // generous for one front desk

	// ── Repositories ─────────────────────────────────────────────────────────
	pacienteRepo := repository.NewPacienteRepository(store)
	agendaRepo := repository.NewAgendaRepository(store)
	productoRepo := repository.NewProductoRepository(store)
	usuarioRepo := repository.NewUsuarioRepository(store)

	// ── Services ─────────────────────────────────────────────────────────────
	expedienteSvc := service.NewExpedienteService(pacienteRepo)
	agendaSvc := service.NewAgendaService(agendaRepo)
	vistaSvc := service.NewVistaService(pacienteRepo, agendaSvc)
	inventarioSvc := service.NewInventarioService(productoRepo, infra.NewCatalogoPDF())
	authSvc := service.NewAuthService(usuarioRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	expedientesH := handler.NewExpedientesHandler(expedienteSvc, vistaSvc, agendaSvc)
	agendaH := handler.NewAgendaHandler(agendaSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(store))

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	// Auth
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", jwtMW, authH.Logout)
	}

	// Protected routes
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/session", authH.Sesion)

		pacientes := v1.Group("/pacientes")
		{
			pacientes.POST("", expedientesH.Crear)
			pacientes.GET("", expedientesH.Listar)
			pacientes.GET("/:id", expedientesH.Obtener)
			pacientes.PUT("/:id", expedientesH.Actualizar)
			pacientes.DELETE("/:id", expedientesH.Eliminar)

			pacientes.GET("/:id/vista", expedientesH.Vista)
			pacientes.GET("/:id/proxima-cita", expedientesH.ProximaCita)

			pacientes.POST("/:id/consultas", expedientesH.AgregarConsulta)
			pacientes.PUT("/:id/consultas/:idx", expedientesH.ActualizarConsulta)
			pacientes.DELETE("/:id/consultas/:idx", expedientesH.EliminarConsulta)

			pacientes.POST("/:id/finanzas", expedientesH.AgregarMovimiento)
		}

		agenda := v1.Group("/agenda")
		{
			agenda.POST("", agendaH.Crear)
			agenda.GET("", agendaH.Listar)
			agenda.PUT("/:idCita", agendaH.Actualizar)
			agenda.DELETE("/:idCita", agendaH.Eliminar)

			agenda.GET("/proximas", agendaH.Proximas)
			agenda.GET("/dia/:fecha", agendaH.DelDia)
			agenda.GET("/mes/:anio/:mes", agendaH.ConteoMes)
		}

		inventario := v1.Group("/inventario")
		{
			inventario.POST("", inventarioH.Crear)
			inventario.GET("", inventarioH.Listar)
			inventario.GET("/export.pdf", inventarioH.ExportarPDF)
			inventario.GET("/:id", inventarioH.Obtener)
			inventario.PUT("/:id", inventarioH.Actualizar)
			inventario.DELETE("/:id", inventarioH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
