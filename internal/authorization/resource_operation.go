package authorization

// Operation is the action requested against a resource.
type Operation int

const (
	OperationCreate Operation = iota
	OperationRead
	OperationUpdate
	OperationDelete
)

func (o Operation) String() string {
	switch o {
	case OperationCreate:
		return "create"
	case OperationRead:
		return "read"
	case OperationUpdate:
		return "update"
	case OperationDelete:
		return "delete"
	}
	return "unknown"
}

// Resource is anything with a single creating user.
type Resource interface {
	CreatorID() int64
}

// ResourceOperation decides whether p may perform op on r.
//
// Reads are open to everyone. Creates need an authenticated caller; which roles may
// create is decided by the route. Updates and deletes need the privileged role or
// ownership, and a principal without an id never passes.
func ResourceOperation(p Principal, r Resource, op Operation) bool {
	switch op {
	case OperationRead:
		return true
	case OperationCreate:
		return !p.IsAnonymous()
	case OperationUpdate, OperationDelete:
		if p.IsAnonymous() {
			return false
		}
		if p.IsPrivileged() {
			return true
		}
		return r != nil && r.CreatorID() == p.ID
	}
	return false
}

// Authorize is ResourceOperation returning ErrForbidden on deny.
func Authorize(p Principal, r Resource, op Operation) error {
	if !ResourceOperation(p, r, op) {
		return ErrForbidden
	}
	return nil
}
