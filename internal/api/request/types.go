package request

// RevealRequest is the request body for revealing a tile
type RevealRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
