package entity

type ResourceKind string

const (
	KindClassroom ResourceKind = "classroom"
	KindLab       ResourceKind = "lab"
)

func (k ResourceKind) Valid() bool {
	return k == KindClassroom || k == KindLab
}

// Resource is a bookable physical space. Static reference data; the
// booking core never mutates it.
type Resource struct {
	Name  string       `db:"name"`
	Kind  ResourceKind `db:"-"`
	Floor string       `db:"floor"`
}
