package services

import "fmt"

// NotFoundError reports that a referenced record does not exist. ID may be
// empty when the lookup was not by id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InvalidRequestError reports a request that can never succeed as given,
// such as an order with no items.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

// ConflictError reports a request that lost against the current state of the
// data: a duplicate review, or an order exceeding the available stock.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}
