package catalog

import "errors"

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrImageNotFound = errors.New("image not found")
	ErrNotOwner      = errors.New("not the owner of this hotel")
	ErrNotVendor     = errors.New("account is not a vendor")
	ErrValidation    = errors.New("validation error")
)
