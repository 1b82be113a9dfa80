package waterpoints

// CreateWaterpointRequest is the payload for POST /waterpoints.
type CreateWaterpointRequest struct {
	Name   string `json:"name" example:"Torneira da cozinha"`
	ZoneID *uint  `json:"zoneId,omitempty" example:"1"`
}
