package resources

// Target says what a submit does: create a new record, or update the
// record the dialog was opened on.
type Target[R any] struct {
	editing bool
	record  R
}

func CreateTarget[R any]() Target[R] { return Target[R]{} }

func EditTarget[R any](record R) Target[R] {
	return Target[R]{editing: true, record: record}
}

func (t Target[R]) IsEdit() bool { return t.editing }

// Record returns the record under edit; ok is false in create mode.
func (t Target[R]) Record() (record R, ok bool) {
	return t.record, t.editing
}
