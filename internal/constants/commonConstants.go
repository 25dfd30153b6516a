package constants

type (
	RequestSource string
	APIStatus     string
	CachePrefix   string
)

const (
	RequestSourceAPI       RequestSource = "API"
	RequestSourceWebClient RequestSource = "WEB_CLIENT"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixTireMap     CachePrefix = "TIREMAP_"
	CachePrefixConsumption CachePrefix = "CONSUMPTION_"
	CachePrefixStockSearch CachePrefix = "STOCK_"
)
