package constants

type (
	RequestSource string
	APIStatus     string
	CachePrefix   string
)

const (
	RequestSourceAPIKey  RequestSource = "API_KEY"
	RequestSourceSession RequestSource = "SESSION"

	APIStatusSuccess APIStatus = "success"
	APIStatusError   APIStatus = "error"

	CachePrefixFleetList   CachePrefix = "FLEET_LIST_"
	CachePrefixTimelineDoc CachePrefix = "TIMELINE_"
	CachePrefixUsedToken   CachePrefix = "USED_TOKEN_"
)
