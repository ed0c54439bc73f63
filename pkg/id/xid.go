package id

import "github.com/rs/xid"

// GetXid generates a short sortable unique id.
func GetXid() string {
	return xid.New().String()
}
