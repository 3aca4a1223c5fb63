package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type selectionRequest struct {
	Path []string `json:"path" binding:"required,min=1,dive,required"`
}

type createLedgerRequest struct {
	Name  string   `json:"name" binding:"required"`
	Under []string `json:"under" binding:"required,min=1,dive,required"`
}

// respond wraps data in the standard envelope, flagging the empty state
// when the hierarchy could not be loaded.
func (s *Server) respond(c *gin.Context, status int, data any) {
	body := gin.H{"data": data}
	if !s.ws.Available() {
		body["hierarchy_available"] = false
	}
	c.JSON(status, body)
}

func (s *Server) Options(c *gin.Context) {
	s.respond(c, http.StatusOK, s.ws.Options())
}

func (s *Server) Tree(c *gin.Context) {
	s.respond(c, http.StatusOK, s.ws.Tree())
}

func (s *Server) Selection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sel, err := s.ws.Select(req.Path...)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.respond(c, http.StatusOK, sel)
}

func (s *Server) Refresh(c *gin.Context) {
	if err := s.ws.Refresh(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}
	s.respond(c, http.StatusOK, gin.H{"built_at": s.ws.BuiltAt()})
}

func (s *Server) CreateLedger(c *gin.Context) {
	var req createLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.ws.CreateLedger(c.Request.Context(), req.Under, req.Name)
	if err != nil && created.ID == 0 {
		AbortWithError(c, err)
		return
	}
	if err != nil {
		// Created, but the rebuild that should show it failed.
		s.log.Warn("ledger created without refresh", zap.Int64("ledger_id", created.ID), zap.Error(err))
	}
	s.respond(c, http.StatusCreated, created)
}
