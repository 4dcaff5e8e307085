package linkedlist

type listError string

var _ error = listError("")

func (err listError) Error() string {
	return string(err)
}

const (
	ErrEmpty         = listError("linked list is empty")
	ErrValueNotFound = listError("value not found in linked list")
)
