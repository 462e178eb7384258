package request

import "strings"

type LoginRequest struct {
	ShopID string `json:"shop_id" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

func (r LoginRequest) Credentials() (string, string) {
	return strings.TrimSpace(r.ShopID), strings.TrimSpace(r.Secret)
}
