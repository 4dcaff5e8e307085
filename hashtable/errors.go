package hashtable

type tableError string

var _ error = tableError("")

func (err tableError) Error() string {
	return string(err)
}

const (
	ErrKeyNotFound     = tableError("key not found")
	ErrInvalidArgument = tableError("invalid argument")
)
