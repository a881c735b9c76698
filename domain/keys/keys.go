package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxMarketplace is used for prefixing marketplace config storage
	PfxMarketplace = "marketplace"
	// PfxListing is used for prefixing listing storage
	PfxListing = "listing"
	// PfxOffer is used for prefixing offer storage
	PfxOffer = "offer"
	// PfxAuthNonce is used for prefixing signing nonce storage
	PfxAuthNonce = "auth:nonce"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the metric prefix from a redis key
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return key
}
