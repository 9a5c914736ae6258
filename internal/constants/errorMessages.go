package constants

const (
	ErrMsgUnauthorized      = "Unauthorized"
	ErrMsgInvalidAPIKey     = "Unauthorized. Invalid API Key"
	ErrMsgInactiveAPIKey    = "Unauthorized. Inactive API Key"
	ErrMsgAircraftNotFound  = "Aircraft not found"
	ErrMsgRouteNotFound     = "Flight route not found"
	ErrMsgInvalidChunkHours = "chunk_hours must be 6, 12 or 24"
	ErrMsgInvalidDateRange  = "Invalid date range"
	ErrMsgArrivalBeforeDep  = "Arrival must be after departure"
	ErrMsgDuplicateTailRegn = "Registration already in fleet"
)
