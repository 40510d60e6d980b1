package schema

// Models lists every table model in dependency order
func Models() []interface{} {
	return []interface{}{
		&Collection{},
		&NFT{},
		&NFTTrait{},
		&ListingNFT{},
		&NFTActivity{},
		&SaleTransaction{},
		&UserLoyaltyPoint{},
		&StreamTx{},
		&KeyValueStore{},
	}
}
