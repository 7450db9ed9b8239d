package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelflow/auth"
	"travelflow/ayush"
	"travelflow/bajaj"
)

// Server wires the domain services to the inbound routes.
type Server struct {
	ayush  *ayush.Service
	bajaj  *bajaj.Service
	auth   *auth.Service
	log    *slog.Logger
	router *gin.Engine
}

func NewServer(ayushSvc *ayush.Service, bajajSvc *bajaj.Service, authSvc *auth.Service, apiToken string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(log))

	s := &Server{
		ayush:  ayushSvc,
		bajaj:  bajajSvc,
		auth:   authSvc,
		log:    log,
		router: router,
	}

	api := router.Group("/api", TokenGate(apiToken))
	{
		api.POST("/login", s.handleLogin)

		api.POST("/ayush/check-duplicate", s.handleAyushCheckDuplicate)
		api.POST("/ayush/create-proposal", s.handleAyushCreateProposal)
		api.POST("/ayush/wallet-update", s.handleAyushWalletUpdate)
		api.POST("/ayush/premium", s.handleAyushPremium)

		api.POST("/bajaj/calc", s.handleBajajCalc)
		api.POST("/bajaj/issue", s.handleBajajIssue)
	}

	return s
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
