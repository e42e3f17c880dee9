package constants

import "time"

// Redis key prefixes for cached chain reads
const (
	KeyTokenBalance   = "chain:balance:token:"
	KeyNativeBalance  = "chain:balance:native:"
	KeyPendingRewards = "chain:rewards:"
	KeyChainRide      = "chain:ride:"
	KeyChainBooking   = "chain:booking:"
)

// Cache TTLs. Chain reads are cheap but rate-limited on public RPC endpoints;
// a short TTL keeps balances fresh without hammering the node.
const (
	BalanceCacheTTL = 30 * time.Second
	ViewCacheTTL    = 15 * time.Second
)
