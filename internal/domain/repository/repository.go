package repository

// Entity is a record addressed by an unsigned identifier.
type Entity interface {
	Key() uint64
}

// Repository defines keyed access to a collection of records.
// Implementations are free to treat a zero key as "allocate one on save".
type Repository[T Entity] interface {
	FindByID(id uint64) (T, bool) // Retrieve a copy of the record stored under id
	Save(item T) error            // Insert or overwrite the record
	Delete(id uint64) bool        // Remove the record, reporting whether one existed
}
