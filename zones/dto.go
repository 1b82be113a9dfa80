package zones

// CreateZoneRequest is the payload for POST /zones.
type CreateZoneRequest struct {
	Name     string `json:"name" example:"Cozinha"`
	RealtyID *uint  `json:"realtyId,omitempty" example:"1"`
}
