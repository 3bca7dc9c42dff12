package collection

import "errors"

var (
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrCollectionHasProducts = errors.New("cannot delete collection because it still has products assigned")
)
