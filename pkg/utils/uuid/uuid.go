package uuid

import (
	gouuid "github.com/nu7hatch/gouuid"
)

// New returns new random uuid as string in XXXXXXXX-XXXX- ... format.
func New() string {
	id, err := gouuid.NewV4()
	if err != nil {
		panic("cannot generate uuid using rand")
	}
	return id.String()
}
