package history

import (
	"image"

	"github.com/google/uuid"
)

// DefaultLimit is the number of commands kept when no limit is configured.
const DefaultLimit = 100

// Command is one undoable edit: the surface before and after it. Snapshots
// are owned by the history and must not be modified by callers.
type Command struct {
	ID     string
	Before *image.RGBA
	After  *image.RGBA
}

// History is a bounded undo/redo log. Entries before the cursor can be undone,
// entries from the cursor on can be redone.
type History struct {
	entries []Command
	cursor  int
	limit   int
}

// New returns an empty history holding at most limit commands.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Push records an edit. Redoable entries are discarded and the oldest entry is
// dropped once the limit is exceeded. Both snapshots are copied.
func (h *History) Push(before, after *image.RGBA) Command {
	for i := h.cursor; i < len(h.entries); i++ {
		h.entries[i] = Command{}
	}
	h.entries = h.entries[:h.cursor]
	cmd := Command{ID: uuid.NewString(), Before: clone(before), After: clone(after)}
	h.entries = append(h.entries, cmd)
	if over := len(h.entries) - h.limit; over > 0 {
		for i := 0; i < over; i++ {
			h.entries[i] = Command{}
		}
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.cursor = len(h.entries)
	return cmd
}

// Undo steps the cursor back and returns the snapshot to restore.
func (h *History) Undo() (*image.RGBA, bool) {
	if h.cursor == 0 {
		return nil, false
	}
	h.cursor--
	return h.entries[h.cursor].Before, true
}

// Redo steps the cursor forward and returns the snapshot to restore.
func (h *History) Redo() (*image.RGBA, bool) {
	if h.cursor >= len(h.entries) {
		return nil, false
	}
	cmd := h.entries[h.cursor]
	h.cursor++
	return cmd.After, true
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool { return h.cursor < len(h.entries) }

// Len is the number of recorded commands.
func (h *History) Len() int { return len(h.entries) }

// Cursor is the number of commands that can be undone.
func (h *History) Cursor() int { return h.cursor }

// Limit is the capacity of the history.
func (h *History) Limit() int { return h.limit }

// Clear forgets every command.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = 0
}

func clone(img *image.RGBA) *image.RGBA {
	if img == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	out := image.NewRGBA(img.Bounds())
	if img.Stride == out.Stride {
		copy(out.Pix, img.Pix)
		return out
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		copy(out.Pix[out.PixOffset(b.Min.X, y):out.PixOffset(b.Max.X, y)], img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)])
	}
	return out
}
