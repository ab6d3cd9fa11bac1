package services

// Kelas error yang dipetakan controller ke status HTTP:
// ValidationError, ConflictError, BadReferenceError -> 400;
// NotFoundError (resource utama endpoint tidak ada) -> 404.
// Error lain dianggap tak terduga dan dibalas 500 generik.

type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type NotFoundError string

func (e NotFoundError) Error() string { return string(e) }

type ConflictError string

func (e ConflictError) Error() string { return string(e) }

// BadReferenceError: payload tulis menunjuk entitas lain yang tidak ada
// (kategori_id menu, user_id order, menu_id item).
type BadReferenceError string

func (e BadReferenceError) Error() string { return string(e) }

func fieldRequired(name string) error {
	return ValidationError("Field " + name + " wajib diisi")
}
