package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof on http.DefaultServeMux

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kv-base-hack/coin-whatif/storage"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server to serve the service.
type Server struct {
	s           *gin.Engine
	bindAddr    string
	log         *zap.SugaredLogger
	storage     *storage.Storage
	defaultCoin string
}

// NewServer returns a new server.
func NewServer(bindAddr string, storage *storage.Storage, defaultCoin string) *Server {
	engine := gin.New()

	engine.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}

	engine.Use(cors.New(config))
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	s := &Server{
		s:           engine,
		log:         zap.S(),
		bindAddr:    bindAddr,
		storage:     storage,
		defaultCoin: defaultCoin,
	}

	s.register()

	return s
}

// Run runs server.
func (s *Server) Run() error {
	s.log.Debugw("run in ", "s.bindAddr", s.bindAddr)
	if err := s.s.Run(s.bindAddr); err != nil {
		return fmt.Errorf("run server: %w", err)
	}
	return nil
}

func (s *Server) Handler() http.Handler {
	return s.s
}

func (s *Server) register() {
	s.s.GET("/debug/pprof/*all", gin.WrapH(http.DefaultServeMux))
	s.s.GET("/healthz", s.health)

	s.s.GET("/", s.index)
	s.s.GET("/coins/:coinId", s.coinPage)

	v1 := s.s.Group("/v1")
	v1.GET("/coins", s.listCoins)
	v1.GET("/coins/:coinId", s.getCoin)
	v1.GET("/projection", s.getProjection)
}

func (s *Server) health(c *gin.Context) {
	res := gin.H{
		"status": s.storage.Status(),
	}
	if snapshotAt := s.storage.SnapshotAt(); !snapshotAt.IsZero() {
		res["snapshot_at"] = snapshotAt
	}
	c.JSON(http.StatusOK, res)
}
