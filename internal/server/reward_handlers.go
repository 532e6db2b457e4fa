package server

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mychits/customer-core/internal/format"
	"github.com/mychits/customer-core/pkg/upi"
)

func (s *Server) getRewards(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	balance, err := s.client.GetRewardBalance(userID)
	if err != nil {
		log.Printf("Error fetching reward balance for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching reward balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance_points": balance,
		"display":        format.Amount(balance),
	})
}

func (s *Server) redeemRewards(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Points  decimal.Decimal `json:"points"`
		Remarks string          `json:"remarks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !req.Points.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points must be positive"})
		return
	}

	if err := s.client.RedeemRewardPoints(userID, req.Points, req.Remarks); err != nil {
		log.Printf("Error redeeming %s points for user %s: %v", req.Points, userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error redeeming points"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// initiatePayment builds a UPI collection link and QR image for the given
// amount. The actual payment happens on the user's UPI app; the backend
// records it through its own webhook, outside this surface.
func (s *Server) initiatePayment(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}

	var req struct {
		Amount decimal.Decimal `json:"amount"`
		Note   string          `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	uri := upi.BuildURI(s.cfg.UPI.PayeeVPA, s.cfg.UPI.PayeeName, req.Amount, req.Note)
	filename, err := upi.Generate(s.cfg.UPI.PayeeVPA, s.cfg.UPI.PayeeName, req.Amount, req.Note)
	if err != nil {
		log.Printf("Error generating payment QR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating payment QR"})
		return
	}

	imgBytes, err := os.ReadFile(filename)
	if removeErr := upi.Remove(filename); removeErr != nil {
		log.Printf("Error removing payment QR file %s: %v", filename, removeErr)
	}
	if err != nil {
		log.Printf("Error reading payment QR file %s: %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating payment QR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upi_uri": uri,
		"qr_image": fmt.Sprintf("data:image/jpeg;base64,%s",
			base64.StdEncoding.EncodeToString(imgBytes)),
		"amount": format.Amount(req.Amount),
	})
}
