package types

// StoreSetResponse is the response to a store value write.
type StoreSetResponse struct {
	*Response
}

// StoreRemoveResponse is the response to a store key removal.
type StoreRemoveResponse struct {
	*Response
}

// StoreKeysResponse is the response to a store key listing.
type StoreKeysResponse struct {
	*Response
	Keys []string `json:"keys"`
}

// StoreClearResponse is the response to a store wipe.
type StoreClearResponse struct {
	*Response
}
