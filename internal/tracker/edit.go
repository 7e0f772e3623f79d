package tracker

// EditMode is either Idle or Editing. At most one task is being edited.
type EditMode interface {
	isEditMode()
}

type Idle struct{}

type Editing struct {
	TaskID string
}

func (Idle) isEditMode()    {}
func (Editing) isEditMode() {}

// EditingID returns the task under edit, if any.
func EditingID(mode EditMode) (string, bool) {
	switch m := mode.(type) {
	case Editing:
		return m.TaskID, true
	default:
		return "", false
	}
}
