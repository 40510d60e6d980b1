package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Marketplace constants
	PALLET_CONTRACT_ADDRESS = "sei152u2u0lqc27428cuf8dx48k8saua74m6nql5kgvsu4rfeqm547rsnhy4y9"
	PALLET_API_URL          = "https://api.pallet.exchange/api"
	DENOM_USEI              = "usei"

	// LOYALTY_POINT_DIVISOR converts a price in the base denom into loyalty points
	LOYALTY_POINT_DIVISOR = 1_000_000
)
