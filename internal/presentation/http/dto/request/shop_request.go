package request

// UpdateShopRequest represents a shop profile update request
type UpdateShopRequest struct {
	Name        *string `json:"name"`
	LogoURL     *string `json:"logoUrl"`
	BannerURL   *string `json:"bannerUrl"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}
