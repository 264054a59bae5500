// Package storex holds the pagination types shared by list endpoints and the
// conversion of a paginated result into a PartialList of another element type.
//
//	page := storex.Paginate(users, storex.PaginationOptions{Page: 2, PageSize: 10})
//
//	// element converters come from the registry
//	dtos, err := storex.ConvertPage[User, UserDTO](registry, page)
//
// PageConverter wraps ConvertPage into a convx.Converter so that whole pages
// can be routed through a registry like any other value.
package storex
