package service

// AuthorizeOwner is the ownership guard: given the recorded creator of a
// resource and the authenticated requester, it decides whether a mutation
// is permitted.
//
// It is a pure decision function — no I/O, no side effects. The caller is
// responsible for translating a deny into a 403 response and for not
// touching the store afterwards.
//
// Returns nil iff createdBy == requesterID, otherwise [ErrNotOwner].
func AuthorizeOwner(createdBy, requesterID int64) error {
	if createdBy != requesterID {
		return ErrNotOwner
	}

	return nil
}
