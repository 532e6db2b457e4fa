package mychits

import (
	"fmt"
	"net/url"
)

// GetPigmyAccounts fetches every pigmy (daily deposit) account held by the user.
func (c *Client) GetPigmyAccounts(userID string) ([]PigmyAccount, error) {
	var accounts []PigmyAccount
	path := fmt.Sprintf("/pigme/get-pigme-customer-by-user-id/%s", url.PathEscape(userID))
	if err := c.getJSON(path, &accounts); err != nil {
		return nil, fmt.Errorf("GetPigmyAccounts: %w", err)
	}
	return accounts, nil
}
