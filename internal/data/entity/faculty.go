package entity

// Faculty is a registered teacher or admin account. Students have no
// stored credentials and use the read-only dashboard anonymously.
type Faculty struct {
	BaseNoDelete
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
}
