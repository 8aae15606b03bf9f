// Package service provides the laundry service catalog aggregate.
// A Service names an offering and prices its catalog items; orders snapshot
// these prices into their own lines at creation time so later catalog edits
// never reprice a placed order.
package service
