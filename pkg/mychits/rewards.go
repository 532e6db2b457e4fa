package mychits

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// GetRewardBalance fetches the user's reward point balance.
func (c *Client) GetRewardBalance(userID string) (decimal.Decimal, error) {
	var result struct {
		Success bool                `json:"success"`
		Balance decimal.NullDecimal `json:"balance_points"`
	}
	path := fmt.Sprintf("/customer-rewards/customer-reward-points/%s", url.PathEscape(userID))
	if err := c.getJSON(path, &result); err != nil {
		return decimal.Zero, fmt.Errorf("GetRewardBalance: %w", err)
	}
	if !result.Success {
		return decimal.Zero, fmt.Errorf("GetRewardBalance: upstream reported failure")
	}
	if !result.Balance.Valid {
		return decimal.Zero, nil
	}
	return result.Balance.Decimal, nil
}

// RedeemRewardPoints redeems points from the user's reward balance.
func (c *Client) RedeemRewardPoints(userID string, points decimal.Decimal, remarks string) error {
	payload := map[string]interface{}{
		"user_id": userID,
		"points":  points,
		"remarks": remarks,
	}
	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.postJSON("/customer-rewards/customer-reward-points/redeem", payload, &result); err != nil {
		return fmt.Errorf("RedeemRewardPoints: %w", err)
	}
	if !result.Success {
		if result.Message != "" {
			return fmt.Errorf("RedeemRewardPoints: %s", result.Message)
		}
		return fmt.Errorf("RedeemRewardPoints: upstream reported failure")
	}
	return nil
}
