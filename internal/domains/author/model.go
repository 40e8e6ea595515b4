package author

// Author is the domain entity backing the authors table. ID is assigned by
// the store and immutable afterwards; Name is unique at the storage layer.
type Author struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	BirthYear *int   `json:"birthYear" db:"birth_year"`
}
