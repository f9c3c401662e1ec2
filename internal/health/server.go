package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActiveCounter reports how many downloads are in flight, included in the
// status payload for quick operational checks.
type ActiveCounter interface {
	ActiveCount() int
}

// Server is the minimal liveness responder hosting platforms probe. It
// carries no domain logic.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer builds the liveness server on the given port. counter may be
// nil. A nil logger disables logging.
func NewServer(port string, counter ActiveCounter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      newRouter(counter),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func newRouter(counter ActiveCounter) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		payload := gin.H{"status": "Bot is running"}
		if counter != nil {
			payload["active_downloads"] = counter.ActiveCount()
		}
		c.JSON(http.StatusOK, payload)
	})
	return router
}

// Run serves until the listener fails or Shutdown is called. Blocks.
func (s *Server) Run() error {
	s.logger.Info("liveness endpoint listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
