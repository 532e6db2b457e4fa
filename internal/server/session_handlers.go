package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mychits/customer-core/internal/models"
)

// Session handler functions. The session is a single in-memory slot: the auth
// flow writes it here and every other handler reads it.

func (s *Server) login(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := s.sessions.Login(req.UserID); err != nil {
		log.Printf("Error logging in: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.resetPager()

	c.JSON(http.StatusOK, models.SessionView{UserID: req.UserID, Active: true})
}

func (s *Server) getSession(c *gin.Context) {
	userID, err := s.sessions.Current()
	if err != nil {
		c.JSON(http.StatusOK, models.SessionView{Active: false})
		return
	}
	c.JSON(http.StatusOK, models.SessionView{UserID: userID, Active: true})
}

func (s *Server) logout(c *gin.Context) {
	s.sessions.Logout()
	s.resetPager()
	c.JSON(http.StatusOK, models.SessionView{Active: false})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentUser resolves the logged-in user or replies 401 and returns false.
func (s *Server) currentUser(c *gin.Context) (string, bool) {
	userID, err := s.sessions.Current()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return "", false
	}
	return userID, true
}
